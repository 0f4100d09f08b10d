package handler

import (
	"log/slog"

	"cambaeats/internal/delivery/api/response"
	deliverycontext "cambaeats/internal/delivery/context"
	domainerrors "cambaeats/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// handleBackendError renders application errors as they are and reports any
// other failure, which comes from the backend, as fallback.
func handleBackendError(c echo.Context, logger *slog.Logger, err error, fallback domainerrors.AppError, msg string) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.AppError(c, appErr)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), logger).Warn(msg, slog.Any("error", err))

	return response.AppError(c, fallback)
}

// handleReadError renders a failed backend read as BACKEND_REQUEST_FAILED,
// naming the operation in the details.
func handleReadError(c echo.Context, logger *slog.Logger, err error, operation string) error {
	return handleBackendError(c, logger, err, domainerrors.NewBackendError(err, operation), "Backend request failed")
}
