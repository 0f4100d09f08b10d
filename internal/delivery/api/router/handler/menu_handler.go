package handler

import (
	"log/slog"
	"net/http"

	"cambaeats/internal/delivery/api/response"
	"cambaeats/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
	Logger *slog.Logger
}

// MenuHandler serves the product catalog.
type MenuHandler struct {
	menuUC usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{
		menuUC: params.MenuUC,
		logger: params.Logger,
	}
}

// ListProducts returns the active products.
func (h *MenuHandler) ListProducts(c echo.Context) error {
	products, err := h.menuUC.ListProducts(c.Request().Context())
	if err != nil {
		return handleReadError(c, h.logger, err, "list products")
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct returns one product by id.
func (h *MenuHandler) GetProduct(c echo.Context) error {
	product, err := h.menuUC.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleReadError(c, h.logger, err, "get product")
	}

	return response.Success(c, http.StatusOK, product)
}

// ListCategories returns the active categories.
func (h *MenuHandler) ListCategories(c echo.Context) error {
	categories, err := h.menuUC.ListCategories(c.Request().Context())
	if err != nil {
		return handleReadError(c, h.logger, err, "list categories")
	}

	return response.Success(c, http.StatusOK, categories)
}
