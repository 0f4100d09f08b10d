package handler

import (
	"net/http"
	"testing"

	"cambaeats/internal/domain/entity"
	domainerrors "cambaeats/internal/domain/errors"
	mockUsecase "cambaeats/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCheckoutHandler(t *testing.T) (*CheckoutHandler, *mockUsecase.MockCheckoutUsecase) {
	checkoutUC := mockUsecase.NewMockCheckoutUsecase(t)

	return NewCheckoutHandler(CheckoutHandlerParams{
		CheckoutUC: checkoutUC,
		Logger:     testLogger(),
	}), checkoutUC
}

func TestCheckoutHandler_Start_EmptyCart(t *testing.T) {
	h, checkoutUC := createTestCheckoutHandler(t)
	checkoutUC.EXPECT().Start(mock.Anything, testSessionID).Return(nil, domainerrors.ErrEmptyCart)

	c, rec := newTestContext(http.MethodPost, "/api/v1/checkout/start", "")

	require.NoError(t, h.Start(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "EMPTY_CART", decodeError(t, rec).Error.Code)
}

func TestCheckoutHandler_SetAddress(t *testing.T) {
	t.Run("blank address never reaches the flow", func(t *testing.T) {
		h, _ := createTestCheckoutHandler(t)
		c, rec := newTestContext(http.MethodPut, "/api/v1/checkout/address", `{"address":"  "}`)

		require.NoError(t, h.SetAddress(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("moves to payment", func(t *testing.T) {
		h, checkoutUC := createTestCheckoutHandler(t)
		checkoutUC.EXPECT().SetAddress(mock.Anything, testSessionID, "Av. Banzer 123").
			Return(&entity.Checkout{Step: entity.CheckoutStepPayment, Address: "Av. Banzer 123"}, nil)

		c, rec := newTestContext(http.MethodPut, "/api/v1/checkout/address", `{"address":"Av. Banzer 123 "}`)

		require.NoError(t, h.SetAddress(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var checkout entity.Checkout
		decodeData(t, rec, &checkout)
		assert.Equal(t, entity.CheckoutStepPayment, checkout.Step)
	})
}

func TestCheckoutHandler_PaymentQR(t *testing.T) {
	h, checkoutUC := createTestCheckoutHandler(t)
	png := []byte{0x89, 'P', 'N', 'G'}
	checkoutUC.EXPECT().PaymentQR(mock.Anything, testSessionID).Return(png, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/checkout/qr", "")

	require.NoError(t, h.PaymentQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestCheckoutHandler_ConfirmPayment(t *testing.T) {
	h, checkoutUC := createTestCheckoutHandler(t)
	checkoutUC.EXPECT().ConfirmPayment(mock.Anything, testSessionID, false).Return(nil, domainerrors.ErrPaymentNotConfirmed)

	c, rec := newTestContext(http.MethodPost, "/api/v1/checkout/payment", `{"paid":false}`)

	require.NoError(t, h.ConfirmPayment(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PAYMENT_NOT_CONFIRMED", decodeError(t, rec).Error.Code)
}

func TestCheckoutHandler_PlaceOrder(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, checkoutUC := createTestCheckoutHandler(t)
		checkoutUC.EXPECT().PlaceOrder(mock.Anything, testSessionID, "u1").Return(&entity.Checkout{
			Step:  entity.CheckoutStepSummary,
			Paid:  true,
			Order: &entity.PlacedOrder{OrderID: "ped-1", Total: decimal.NewFromInt(55)},
		}, nil)

		c, rec := newTestContext(http.MethodPost, "/api/v1/checkout/order", `{"userId":"u1"}`)

		require.NoError(t, h.PlaceOrder(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var checkout entity.Checkout
		decodeData(t, rec, &checkout)
		require.NotNil(t, checkout.Order)
		assert.Equal(t, "ped-1", checkout.Order.OrderID)
	})

	t.Run("backend failure", func(t *testing.T) {
		h, checkoutUC := createTestCheckoutHandler(t)
		checkoutUC.EXPECT().PlaceOrder(mock.Anything, testSessionID, "u1").
			Return(nil, errors.Wrap(errors.New("stock insuficiente"), "failed to create order"))

		c, rec := newTestContext(http.MethodPost, "/api/v1/checkout/order", `{"userId":"u1"}`)

		require.NoError(t, h.PlaceOrder(c))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Equal(t, "ORDER_CREATION_FAILED", decodeError(t, rec).Error.Code)
	})

	t.Run("missing user", func(t *testing.T) {
		h, _ := createTestCheckoutHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/v1/checkout/order", `{}`)

		require.NoError(t, h.PlaceOrder(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
