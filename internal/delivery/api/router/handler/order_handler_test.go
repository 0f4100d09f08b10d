package handler

import (
	"net/http"
	"testing"

	"cambaeats/internal/domain/entity"
	domainerrors "cambaeats/internal/domain/errors"
	mockUsecase "cambaeats/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_ListOrders(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: testLogger()})

	orderUC.EXPECT().ListOrders(mock.Anything, "u1").Return([]*entity.Order{
		{ID: "o1", UserID: "u1", Status: entity.OrderStatusOnTheWay, StatusLabel: "En camino"},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/orders?userId=%20u1", "")
	require.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var orders []entity.Order
	decodeData(t, rec, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, "En camino", orders[0].StatusLabel)
}

func TestOrderHandler_ListOrders_MissingUser(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: testLogger()})

	orderUC.EXPECT().ListOrders(mock.Anything, "").Return(nil, domainerrors.ErrValidationFailed.WithDetails("userId is required"))

	c, rec := newTestContext(http.MethodGet, "/api/v1/orders", "")
	require.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderHandler_Sales(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: testLogger()})

	orderUC.EXPECT().ListSales(mock.Anything, "u1").Return([]*entity.Sale{{ID: "v1", UserID: "u1"}}, nil)
	orderUC.EXPECT().GetSale(mock.Anything, "v404").Return(nil, domainerrors.ErrOrderNotFound)

	c, rec := newTestContext(http.MethodGet, "/api/v1/sales?userId=u1", "")
	require.NoError(t, h.ListSales(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(http.MethodGet, "/api/v1/sales/v404", "")
	c.SetParamNames("id")
	c.SetParamValues("v404")
	require.NoError(t, h.GetSale(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ORDER_NOT_FOUND", decodeError(t, rec).Error.Code)
}

func TestOrderHandler_GetOrder_BackendFailure(t *testing.T) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: testLogger()})

	orderUC.EXPECT().GetOrder(mock.Anything, "o1").Return(nil, errors.New("unexpected status 503"))

	c, rec := newTestContext(http.MethodGet, "/api/v1/orders/o1", "")
	c.SetParamNames("id")
	c.SetParamValues("o1")
	require.NoError(t, h.GetOrder(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	body := decodeError(t, rec)
	assert.Equal(t, "BACKEND_REQUEST_FAILED", body.Error.Code)
	assert.Equal(t, "get order", body.Error.Details)
}
