package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"cambaeats/internal/delivery/api/response"
	deliverycontext "cambaeats/internal/delivery/context"
	domainerrors "cambaeats/internal/domain/errors"
	"cambaeats/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckoutHandlerParams holds dependencies for CheckoutHandler, injected by Fx.
type CheckoutHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUsecase
	Logger     *slog.Logger
}

// CheckoutHandler drives the checkout steps of the caller's session.
type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUsecase
	logger     *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler
func NewCheckoutHandler(params CheckoutHandlerParams) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// SetAddressRequest represents the request body for the address step
type SetAddressRequest struct {
	Address string `json:"address" validate:"required"`
}

// ConfirmPaymentRequest carries the customer's "I have paid" confirmation
type ConfirmPaymentRequest struct {
	Paid bool `json:"paid"`
}

// PlaceOrderRequest represents the request body for placing the order
type PlaceOrderRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// Start begins a checkout from the current cart.
func (h *CheckoutHandler) Start(c echo.Context) error {
	checkout, err := h.checkoutUC.Start(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkout)
}

// Get returns the current checkout.
func (h *CheckoutHandler) Get(c echo.Context) error {
	checkout, err := h.checkoutUC.Get(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkout)
}

// SetAddress records the delivery address.
func (h *CheckoutHandler) SetAddress(c echo.Context) error {
	var req SetAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	req.Address = strings.TrimSpace(req.Address)
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	checkout, err := h.checkoutUC.SetAddress(c.Request().Context(), deliverycontext.GetSessionID(c), req.Address)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkout)
}

// Back returns to the address step.
func (h *CheckoutHandler) Back(c echo.Context) error {
	checkout, err := h.checkoutUC.Back(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkout)
}

// PaymentQR returns the payment QR code as a PNG image.
func (h *CheckoutHandler) PaymentQR(c echo.Context) error {
	png, err := h.checkoutUC.PaymentQR(c.Request().Context(), deliverycontext.GetSessionID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ConfirmPayment moves to the summary step.
func (h *CheckoutHandler) ConfirmPayment(c echo.Context) error {
	var req ConfirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	checkout, err := h.checkoutUC.ConfirmPayment(c.Request().Context(), deliverycontext.GetSessionID(c), req.Paid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, checkout)
}

// PlaceOrder creates the order. Repeated calls return the first outcome.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	req.UserID = strings.TrimSpace(req.UserID)
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	checkout, err := h.checkoutUC.PlaceOrder(c.Request().Context(), deliverycontext.GetSessionID(c), req.UserID)
	if err != nil {
		return handleBackendError(c, h.logger, err, domainerrors.ErrOrderCreationFailed, "Order placement failed")
	}

	return response.Success(c, http.StatusCreated, checkout)
}
