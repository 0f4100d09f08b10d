package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cambaeats/config"
	"cambaeats/internal/domain/entity"
	domainerrors "cambaeats/internal/domain/errors"
	mockSvc "cambaeats/internal/mocks/service"
	mockUsecase "cambaeats/internal/mocks/usecase"
	"cambaeats/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	service   usecase.CheckoutUsecase
	sessions  *mockUsecase.MockCartSessions
	cart      *mockUsecase.MockCartUsecase
	orders    *mockSvc.MockOrderGateway
	qrcode    *mockSvc.MockPaymentQRService
	clientLog *mockSvc.MockClientLogger
	onDrop    func(sessionID string)
}

func createTestCheckoutService(t *testing.T, checkoutCfg config.CheckoutConfig) *checkoutFixture {
	t.Helper()

	sessions := mockUsecase.NewMockCartSessions(t)
	cart := mockUsecase.NewMockCartUsecase(t)
	orders := mockSvc.NewMockOrderGateway(t)
	qr := mockSvc.NewMockPaymentQRService(t)
	clientLog := mockSvc.NewMockClientLogger(t)

	sessions.EXPECT().Get("s-1").Return(cart).Maybe()
	var onDrop func(string)
	sessions.EXPECT().OnDrop(mock.Anything).Run(func(fn func(string)) {
		onDrop = fn
	}).Return().Once()

	svc := NewCheckoutService(CheckoutServiceParams{
		Config:    &config.Config{Checkout: checkoutCfg},
		Carts:     sessions,
		Orders:    orders,
		QRCode:    qr,
		ClientLog: clientLog,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &checkoutFixture{
		service:   svc,
		sessions:  sessions,
		cart:      cart,
		orders:    orders,
		qrcode:    qr,
		clientLog: clientLog,
		onDrop:    onDrop,
	}
}

func cartLines() []entity.LineItem {
	return []entity.LineItem{
		{ID: "li-1", ProductID: "p1", Product: *product("p1", 10), Quantity: 2, IsActive: true},
		{ID: "li-2", ProductID: "p2", Product: *product("p2", 15), Quantity: 1, IsActive: true},
	}
}

// toSummary walks the checkout of session s-1 up to the summary step.
func (f *checkoutFixture) toSummary(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	f.cart.EXPECT().ItemCount().Return(3).Maybe()
	f.cart.EXPECT().Items().Return(cartLines()).Maybe()
	f.cart.EXPECT().Ref().Return(entity.RemoteCart("cart-1")).Maybe()

	_, err := f.service.Start(ctx, "s-1")
	require.NoError(t, err)
	_, err = f.service.SetAddress(ctx, "s-1", "Av. Monseñor Rivero 123")
	require.NoError(t, err)
	checkout, err := f.service.ConfirmPayment(ctx, "s-1", true)
	require.NoError(t, err)
	require.Equal(t, entity.CheckoutStepSummary, checkout.Step)
}

func TestCheckoutService_Start_EmptyCart(t *testing.T) {
	f := createTestCheckoutService(t, config.CheckoutConfig{ShippingFee: "5"})
	f.cart.EXPECT().ItemCount().Return(0)

	_, err := f.service.Start(context.Background(), "s-1")

	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestCheckoutService_Get_NotStarted(t *testing.T) {
	f := createTestCheckoutService(t, config.CheckoutConfig{})

	_, err := f.service.Get(context.Background(), "s-1")

	assert.ErrorIs(t, err, domainerrors.ErrCheckoutNotStarted)
}

func TestCheckoutService_DroppedCartForgetsCheckout(t *testing.T) {
	f := createTestCheckoutService(t, config.CheckoutConfig{ShippingFee: "5"})
	ctx := context.Background()
	f.toSummary(t)
	require.NotNil(t, f.onDrop)

	f.onDrop("other")
	_, err := f.service.Get(ctx, "s-1")
	require.NoError(t, err)

	f.onDrop("s-1")
	_, err = f.service.Get(ctx, "s-1")
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutNotStarted)
}

func TestCheckoutService_Steps(t *testing.T) {
	f := createTestCheckoutService(t, config.CheckoutConfig{ShippingFee: "5"})
	ctx := context.Background()
	f.cart.EXPECT().ItemCount().Return(3)
	f.cart.EXPECT().Items().Return(cartLines())
	f.cart.EXPECT().Ref().Return(entity.RemoteCart("cart-1")).Maybe()

	checkout, err := f.service.Start(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepAddress, checkout.Step)

	_, err = f.service.SetAddress(ctx, "s-1", "   ")
	assert.ErrorIs(t, err, domainerrors.ErrAddressRequired)

	_, err = f.service.ConfirmPayment(ctx, "s-1", true)
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutStep)

	checkout, err = f.service.SetAddress(ctx, "s-1", "Calle Sucre 45")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepPayment, checkout.Step)
	assert.Equal(t, "Calle Sucre 45", checkout.Address)
	assert.Len(t, checkout.Items, 2)
	assert.True(t, decimal.NewFromInt(35).Equal(checkout.Subtotal))
	assert.True(t, decimal.NewFromInt(5).Equal(checkout.Shipping))
	assert.True(t, decimal.NewFromInt(40).Equal(checkout.Total))

	checkout, err = f.service.Back(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepAddress, checkout.Step)

	_, err = f.service.SetAddress(ctx, "s-1", "Calle Sucre 45")
	require.NoError(t, err)

	_, err = f.service.ConfirmPayment(ctx, "s-1", false)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotConfirmed)

	checkout, err = f.service.ConfirmPayment(ctx, "s-1", true)
	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepSummary, checkout.Step)
	assert.True(t, checkout.Paid)
}

func TestCheckoutService_PaymentQR(t *testing.T) {
	f := createTestCheckoutService(t, config.CheckoutConfig{ShippingFee: "5"})
	ctx := context.Background()
	f.cart.EXPECT().ItemCount().Return(3)
	f.cart.EXPECT().Items().Return(cartLines())
	f.cart.EXPECT().Ref().Return(entity.RemoteCart("cart-1")).Maybe()

	_, err := f.service.Start(ctx, "s-1")
	require.NoError(t, err)

	_, err = f.service.PaymentQR(ctx, "s-1")
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutStep)

	_, err = f.service.SetAddress(ctx, "s-1", "Calle Sucre 45")
	require.NoError(t, err)

	f.qrcode.EXPECT().
		GeneratePaymentQR(mock.MatchedBy(func(amount decimal.Decimal) bool {
			return amount.Equal(decimal.NewFromInt(40))
		}), mock.AnythingOfType("time.Time")).
		Return([]byte("png"), nil)

	png, err := f.service.PaymentQR(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestCheckoutService_PlaceOrder_Success_IsIdempotent(t *testing.T) {
	f := createTestCheckoutService(t, config.CheckoutConfig{ShippingFee: "5"})
	f.toSummary(t)
	ctx := context.Background()

	f.orders.EXPECT().CreateOrder(mock.Anything, "user-1", "Av. Monseñor Rivero 123").
		Return(&entity.PlacedOrder{OrderID: "ped-1", Total: decimal.NewFromInt(40)}, nil).
		Once()
	f.cart.EXPECT().ClearCart(mock.Anything).Once()

	first, err := f.service.PlaceOrder(ctx, "s-1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, first.Order)
	assert.Equal(t, "ped-1", first.Order.OrderID)

	second, err := f.service.PlaceOrder(ctx, "s-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCheckoutService_PlaceOrder_OnlyFromSummary(t *testing.T) {
	f := createTestCheckoutService(t, config.CheckoutConfig{})
	f.cart.EXPECT().ItemCount().Return(1)
	f.cart.EXPECT().Items().Return(cartLines()).Maybe()
	f.cart.EXPECT().Ref().Return(entity.RemoteCart("cart-1")).Maybe()

	_, err := f.service.Start(context.Background(), "s-1")
	require.NoError(t, err)

	_, err = f.service.PlaceOrder(context.Background(), "s-1", "user-1")

	assert.ErrorIs(t, err, domainerrors.ErrCheckoutStep)
}

func TestCheckoutService_PlaceOrder_FailureKeepsCart(t *testing.T) {
	f := createTestCheckoutService(t, config.CheckoutConfig{ShippingFee: "5"})
	f.toSummary(t)
	ctx := context.Background()
	backendErr := errors.New("stock insuficiente")

	f.orders.EXPECT().CreateOrder(mock.Anything, "user-1", mock.Anything).Return(nil, backendErr).Once()
	f.clientLog.EXPECT().Log(mock.Anything, mock.Anything).Once()

	_, err := f.service.PlaceOrder(ctx, "s-1", "user-1")
	assert.ErrorIs(t, err, backendErr)
	f.cart.AssertNotCalled(t, "ClearCart", mock.Anything)

	checkout, err := f.service.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Contains(t, checkout.OrderError, "stock insuficiente")

	f.orders.EXPECT().CreateOrder(mock.Anything, "user-1", mock.Anything).
		Return(&entity.PlacedOrder{OrderID: "ped-2", Total: decimal.NewFromInt(40)}, nil).Once()
	f.cart.EXPECT().ClearCart(mock.Anything).Once()

	checkout, err = f.service.PlaceOrder(ctx, "s-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "ped-2", checkout.Order.OrderID)
	assert.Empty(t, checkout.OrderError)
}

func TestCheckoutService_PlaceOrder_FailureClearsCartWhenConfigured(t *testing.T) {
	f := createTestCheckoutService(t, config.CheckoutConfig{ShippingFee: "5", ClearCartOnFailure: true})
	f.toSummary(t)
	ctx := context.Background()

	f.orders.EXPECT().CreateOrder(mock.Anything, "user-1", mock.Anything).Return(nil, errors.New("boom")).Once()
	f.clientLog.EXPECT().Log(mock.Anything, mock.Anything).Once()
	f.cart.EXPECT().ClearCart(mock.Anything).Once()

	_, err := f.service.PlaceOrder(ctx, "s-1", "user-1")
	require.Error(t, err)

	checkout, err := f.service.PlaceOrder(ctx, "s-1", "user-1")
	require.NoError(t, err)
	assert.Nil(t, checkout.Order)
	assert.Equal(t, "boom", checkout.OrderError)
}

func TestCheckoutService_PlaceOrder_LocalCartRejected(t *testing.T) {
	f := createTestCheckoutService(t, config.CheckoutConfig{ShippingFee: "5"})
	f.cart.EXPECT().Ref().Return(entity.LocalFallbackCart("temp-1"))
	f.cart.EXPECT().ItemCount().Return(3)
	f.cart.EXPECT().Items().Return(cartLines())
	ctx := context.Background()

	_, err := f.service.Start(ctx, "s-1")
	require.NoError(t, err)
	_, err = f.service.SetAddress(ctx, "s-1", "Calle Sucre 45")
	require.NoError(t, err)
	_, err = f.service.ConfirmPayment(ctx, "s-1", true)
	require.NoError(t, err)

	_, err = f.service.PlaceOrder(ctx, "s-1", "user-1")

	assert.ErrorIs(t, err, domainerrors.ErrBackendUnavailable)
	f.orders.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckoutService_Start_ResetsPreviousCheckout(t *testing.T) {
	f := createTestCheckoutService(t, config.CheckoutConfig{ShippingFee: "5"})
	f.toSummary(t)

	checkout, err := f.service.Start(context.Background(), "s-1")

	require.NoError(t, err)
	assert.Equal(t, entity.CheckoutStepAddress, checkout.Step)
	assert.Empty(t, checkout.Address)
	assert.False(t, checkout.Paid)
}
