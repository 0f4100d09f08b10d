package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"cambaeats/internal/delivery/api/response"
	"cambaeats/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the order and sales history.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// ListOrders handles GET /orders?userId=
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context(), strings.TrimSpace(c.QueryParam("userId")))
	if err != nil {
		return handleReadError(c, h.logger, err, "list orders")
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUC.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleReadError(c, h.logger, err, "get order")
	}

	return response.Success(c, http.StatusOK, order)
}

// ListSales handles GET /sales?userId=
func (h *OrderHandler) ListSales(c echo.Context) error {
	sales, err := h.orderUC.ListSales(c.Request().Context(), strings.TrimSpace(c.QueryParam("userId")))
	if err != nil {
		return handleReadError(c, h.logger, err, "list sales")
	}

	return response.Success(c, http.StatusOK, sales)
}

// GetSale handles GET /sales/:id
func (h *OrderHandler) GetSale(c echo.Context) error {
	sale, err := h.orderUC.GetSale(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleReadError(c, h.logger, err, "get sale")
	}

	return response.Success(c, http.StatusOK, sale)
}
