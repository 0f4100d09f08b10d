package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"cambaeats/config"
	deliverycontext "cambaeats/internal/delivery/context"
	"cambaeats/internal/domain/entity"
	domainerrors "cambaeats/internal/domain/errors"
	"cambaeats/internal/domain/service"
	"cambaeats/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CheckoutServiceParams holds the dependencies of the checkout flow.
type CheckoutServiceParams struct {
	fx.In

	Config    *config.Config
	Carts     usecase.CartSessions
	Orders    service.OrderGateway
	QRCode    service.PaymentQRService
	ClientLog service.ClientLogger
	Logger    *slog.Logger
}

// checkoutSession guards the checkout of one session. mu is held across
// CreateOrder so that an order is placed at most once.
type checkoutSession struct {
	mu       sync.Mutex
	checkout entity.Checkout
}

type checkoutService struct {
	carts          usecase.CartSessions
	orders         service.OrderGateway
	qrcode         service.PaymentQRService
	clientLog      service.ClientLogger
	logger         *slog.Logger
	shipping       decimal.Decimal
	clearOnFailure bool
	now            func() time.Time

	mu       sync.Mutex
	sessions map[string]*checkoutSession
}

// NewCheckoutService creates the checkout flow service.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	s := &checkoutService{
		carts:          params.Carts,
		orders:         params.Orders,
		qrcode:         params.QRCode,
		clientLog:      params.ClientLog,
		logger:         params.Logger,
		shipping:       params.Config.Checkout.ShippingFeeDecimal(),
		clearOnFailure: params.Config.Checkout.ClearCartOnFailure,
		now:            time.Now,
		sessions:       make(map[string]*checkoutSession),
	}
	params.Carts.OnDrop(s.forget)

	return s
}

// forget discards the checkout of a session whose cart was dropped.
func (s *checkoutService) forget(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
}

func (s *checkoutService) loggerFrom(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *checkoutService) session(sessionID string, create bool) *checkoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	cs, ok := s.sessions[sessionID]
	if !ok && create {
		cs = &checkoutSession{}
		s.sessions[sessionID] = cs
	}

	return cs
}

// Start begins a checkout for the session's cart.
func (s *checkoutService) Start(ctx context.Context, sessionID string) (*entity.Checkout, error) {
	cart := s.carts.Get(sessionID)
	if cart.ItemCount() == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	cs := s.session(sessionID, true)
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.checkout = entity.Checkout{
		Step:     entity.CheckoutStepAddress,
		Items:    []entity.LineItem{},
		Shipping: s.shipping,
	}
	s.priceCheckout(&cs.checkout, cart.Items())

	s.loggerFrom(ctx).Debug("Checkout started", slog.String("cart_id", cart.Ref().ID))

	return cloneCheckout(&cs.checkout), nil
}

// Get returns the current checkout of the session.
func (s *checkoutService) Get(_ context.Context, sessionID string) (*entity.Checkout, error) {
	cs := s.session(sessionID, false)
	if cs == nil {
		return nil, domainerrors.ErrCheckoutNotStarted
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.checkout.Step == "" {
		return nil, domainerrors.ErrCheckoutNotStarted
	}

	return cloneCheckout(&cs.checkout), nil
}

// SetAddress records the delivery address and saves the cart contents shown in the summary.
func (s *checkoutService) SetAddress(ctx context.Context, sessionID, address string) (*entity.Checkout, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, domainerrors.ErrAddressRequired
	}

	return s.transition(sessionID, entity.CheckoutStepAddress, func(c *entity.Checkout) error {
		items := s.carts.Get(sessionID).Items()
		if len(items) == 0 {
			return domainerrors.ErrEmptyCart
		}

		c.Address = address
		c.Step = entity.CheckoutStepPayment
		s.priceCheckout(c, items)
		s.loggerFrom(ctx).Debug("Checkout address set", slog.Int("items", len(items)))

		return nil
	})
}

// Back returns from the payment step to the address step.
func (s *checkoutService) Back(_ context.Context, sessionID string) (*entity.Checkout, error) {
	return s.transition(sessionID, entity.CheckoutStepPayment, func(c *entity.Checkout) error {
		c.Step = entity.CheckoutStepAddress
		c.Paid = false

		return nil
	})
}

// PaymentQR renders the QR code paying the grand total.
func (s *checkoutService) PaymentQR(ctx context.Context, sessionID string) ([]byte, error) {
	checkout, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if checkout.Step != entity.CheckoutStepPayment {
		return nil, domainerrors.ErrCheckoutStep.WithDetails("payment QR is only available on the payment step")
	}

	png, err := s.qrcode.GeneratePaymentQR(checkout.Total, s.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR")
	}

	return png, nil
}

// ConfirmPayment moves to the summary once the customer confirms having paid.
func (s *checkoutService) ConfirmPayment(_ context.Context, sessionID string, paid bool) (*entity.Checkout, error) {
	if !paid {
		return nil, domainerrors.ErrPaymentNotConfirmed
	}

	return s.transition(sessionID, entity.CheckoutStepPayment, func(c *entity.Checkout) error {
		c.Paid = true
		c.Step = entity.CheckoutStepSummary

		return nil
	})
}

// PlaceOrder creates the order of the checkout. A placed order is returned
// again by later calls without contacting the backend.
func (s *checkoutService) PlaceOrder(ctx context.Context, sessionID, userID string) (*entity.Checkout, error) {
	cs := s.session(sessionID, false)
	if cs == nil {
		return nil, domainerrors.ErrCheckoutNotStarted
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	c := &cs.checkout
	if c.Step == "" {
		return nil, domainerrors.ErrCheckoutNotStarted
	}
	if c.Placed() {
		return cloneCheckout(c), nil
	}
	if c.Step != entity.CheckoutStepSummary {
		return nil, domainerrors.ErrCheckoutStep.WithDetails("order can only be placed from the summary step")
	}
	if c.OrderError != "" && s.clearOnFailure {
		// The cart is already gone: the failed attempt is the final outcome.
		return cloneCheckout(c), nil
	}

	cart := s.carts.Get(sessionID)
	logger := s.loggerFrom(ctx).With(
		slog.String("user_id", userID),
		slog.String("cart_id", cart.Ref().ID),
	)

	if cart.Ref().IsLocal() {
		logger.Warn("Order rejected for local fallback cart")

		return nil, domainerrors.ErrBackendUnavailable.WithDetails("cart is not synchronized with the backend")
	}

	placed, err := s.orders.CreateOrder(ctx, userID, c.Address)
	if err != nil {
		c.OrderError = err.Error()
		logger.Error("Failed to place order", slog.Any("error", err))
		s.clientLog.Log(ctx, service.ClientLogEntry{
			Level:     service.LogLevelError,
			Message:   "order creation failed",
			Data:      map[string]any{"user_id": userID, "error": err.Error()},
			SessionID: sessionID,
			RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		})
		if s.clearOnFailure {
			cart.ClearCart(ctx)
		}

		return nil, errors.Wrap(err, "failed to create order")
	}

	c.Order = placed
	c.OrderError = ""
	cart.ClearCart(ctx)

	logger.Info("Order placed",
		slog.String("order_id", placed.OrderID),
		slog.String("total", placed.Total.StringFixed(2)),
	)

	return cloneCheckout(c), nil
}

// transition runs fn on the session's checkout when it is at step from.
func (s *checkoutService) transition(sessionID string, from entity.CheckoutStep, fn func(*entity.Checkout) error) (*entity.Checkout, error) {
	cs := s.session(sessionID, false)
	if cs == nil {
		return nil, domainerrors.ErrCheckoutNotStarted
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.checkout.Step == "" {
		return nil, domainerrors.ErrCheckoutNotStarted
	}
	if cs.checkout.Step != from {
		return nil, domainerrors.ErrCheckoutStep.WithDetails(
			"expected step " + string(from) + ", checkout is at " + string(cs.checkout.Step),
		)
	}

	if err := fn(&cs.checkout); err != nil {
		return nil, err
	}

	return cloneCheckout(&cs.checkout), nil
}

func (s *checkoutService) priceCheckout(c *entity.Checkout, items []entity.LineItem) {
	c.Items = items
	c.Subtotal = entity.SumTotal(items)
	c.Shipping = s.shipping
	c.Total = c.Subtotal.Add(s.shipping)
}

func cloneCheckout(c *entity.Checkout) *entity.Checkout {
	clone := *c
	clone.Items = slices.Clone(c.Items)
	if c.Order != nil {
		order := *c.Order
		clone.Order = &order
	}

	return &clone
}
