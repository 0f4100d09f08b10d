package service

import (
	"context"

	"cambaeats/internal/domain/entity"
)

// OrderGateway is the backend endpoint set for purchases, orders and sales.
type OrderGateway interface {
	// CreateOrder commits the user's backend cart into an order delivered to address.
	CreateOrder(ctx context.Context, userID, address string) (*entity.PlacedOrder, error)

	// ListOrders returns the orders of userID.
	ListOrders(ctx context.Context, userID string) ([]*entity.Order, error)

	// GetOrder returns one order. Fails with ErrNotFound when unknown.
	GetOrder(ctx context.Context, orderID string) (*entity.Order, error)

	// ListSales returns every sale visible to the client.
	ListSales(ctx context.Context) ([]*entity.Sale, error)

	// GetSale returns one sale. Fails with ErrNotFound when unknown.
	GetSale(ctx context.Context, saleID string) (*entity.Sale, error)
}
