package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cambaeats/internal/delivery/api/response"
	deliverycontext "cambaeats/internal/delivery/context"
	"cambaeats/internal/domain/entity"
	domainerrors "cambaeats/internal/domain/errors"
	"cambaeats/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const eventsHeartbeat = 15 * time.Second

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	Carts  usecase.CartSessions
	MenuUC usecase.MenuUsecase
	Logger *slog.Logger
}

// CartHandler exposes the cart of the caller's session.
type CartHandler struct {
	carts  usecase.CartSessions
	menuUC usecase.MenuUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		carts:  params.Carts,
		menuUC: params.MenuUC,
		logger: params.Logger,
	}
}

// InitCartRequest represents the request body for initializing a cart
type InitCartRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// AddItemRequest represents the request body for adding a product to the cart.
// Quantity defaults to 1. Product is the menu entry as the client last saw it,
// used when the backend cannot be reached.
type AddItemRequest struct {
	ProductID string           `json:"productId" validate:"required"`
	Quantity  *int             `json:"quantity" validate:"required,min=1"`
	Product   *ProductSnapshot `json:"product,omitempty"`
}

// ProductSnapshot is a client-held copy of a menu product.
type ProductSnapshot struct {
	ID          string          `json:"id"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio"`
}

// toProduct returns nil when the snapshot is absent or describes another product.
func (s *ProductSnapshot) toProduct(productID string) *entity.Product {
	if s == nil || (s.ID != "" && s.ID != productID) || s.Price.IsNegative() {
		return nil
	}

	return &entity.Product{
		ID:          productID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		IsActive:    true,
	}
}

// SetQuantityRequest represents the request body for changing a line quantity.
// Zero or negative removes the line.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

func (h *CartHandler) cart(c echo.Context) usecase.CartUsecase {
	return h.carts.Get(deliverycontext.GetSessionID(c))
}

// Init resumes or creates the session cart for a user.
func (h *CartHandler) Init(c echo.Context) error {
	var req InitCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	req.UserID = strings.TrimSpace(req.UserID)
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart := h.cart(c)
	cart.Initialize(c.Request().Context(), req.UserID)

	return response.Success(c, http.StatusOK, cart.Snapshot())
}

// Get returns the current cart snapshot.
func (h *CartHandler) Get(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.cart(c).Snapshot())
}

// AddItem adds a product to the cart, merging with an existing line.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	if req.Quantity == nil {
		one := 1
		req.Quantity = &one
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	cart := h.cart(c)

	product, err := h.resolveProduct(c, cart, &req)
	if err != nil {
		return handleReadError(c, h.logger, err, "get product")
	}

	if err := cart.AddItem(ctx, product, *req.Quantity); err != nil {
		return h.handleCartError(c, err)
	}

	return response.Success(c, http.StatusCreated, cart.Snapshot())
}

// resolveProduct looks the product up on the backend. A local-fallback cart
// uses the request snapshot directly, and a remote cart falls back to it when
// the lookup fails for a reason other than an application error.
func (h *CartHandler) resolveProduct(c echo.Context, cart usecase.CartUsecase, req *AddItemRequest) (*entity.Product, error) {
	snapshot := req.Product.toProduct(req.ProductID)
	if snapshot != nil && cart.Ref().IsLocal() {
		return snapshot, nil
	}

	ctx := c.Request().Context()
	product, err := h.menuUC.GetProduct(ctx, req.ProductID)
	if err != nil {
		var appErr domainerrors.AppError
		if snapshot == nil || errors.As(err, &appErr) {
			return nil, err
		}
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Product lookup failed, using client snapshot",
			slog.String("product_id", req.ProductID),
			slog.Any("error", err),
		)

		return snapshot, nil
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound.WithDetails(req.ProductID)
	}

	return product, nil
}

// SetQuantity changes the quantity of a line item.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	var req SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart := h.cart(c)
	if err := cart.SetQuantity(c.Request().Context(), c.Param("id"), *req.Quantity); err != nil {
		return h.handleCartError(c, err)
	}

	return response.Success(c, http.StatusOK, cart.Snapshot())
}

// RemoveItem drops a line item. Unknown ids succeed without changes.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	cart := h.cart(c)
	if err := cart.RemoveItem(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleCartError(c, err)
	}

	return response.Success(c, http.StatusOK, cart.Snapshot())
}

// Clear forgets the cart of the session.
func (h *CartHandler) Clear(c echo.Context) error {
	cart := h.cart(c)
	cart.ClearCart(c.Request().Context())

	return response.Success(c, http.StatusOK, cart.Snapshot())
}

// Toggle flips the cart panel visibility.
func (h *CartHandler) Toggle(c echo.Context) error {
	isOpen := h.cart(c).ToggleOpen()

	return response.Success(c, http.StatusOK, map[string]bool{"is_open": isOpen})
}

// Events streams cart snapshots as Server-Sent Events until the client leaves.
func (h *CartHandler) Events(c echo.Context) error {
	cart := h.cart(c)
	updates, cancel := cart.Subscribe()
	defer cancel()

	// SSE responses outlive the server write timeout.
	_ = http.NewResponseController(c.Response().Writer).SetWriteDeadline(time.Time{})

	header := c.Response().Header()
	header.Set(echo.HeaderContentType, "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	if err := writeCartEvent(c, cart.Snapshot()); err != nil {
		return nil
	}

	ticker := time.NewTicker(eventsHeartbeat)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case state, ok := <-updates:
			if !ok {
				return nil
			}
			if err := writeCartEvent(c, state); err != nil {
				deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("Cart event stream closed", slog.Any("error", err))

				return nil
			}
		case <-ticker.C:
			if _, err := fmt.Fprint(c.Response(), ": ping\n\n"); err != nil {
				return nil
			}
			c.Response().Flush()
		}
	}
}

func writeCartEvent(c echo.Context, state entity.CartState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := fmt.Fprintf(c.Response(), "event: cart\ndata: %s\n\n", payload); err != nil {
		return errors.WithStack(err)
	}
	c.Response().Flush()

	return nil
}

func (h *CartHandler) handleCartError(c echo.Context, err error) error {
	return handleBackendError(c, h.logger, err, domainerrors.ErrCartSyncFailed, "Cart mutation failed")
}
