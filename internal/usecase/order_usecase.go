package usecase

import (
	"context"

	"cambaeats/internal/domain/entity"
)

// OrderUsecase exposes the order history of a user.
type OrderUsecase interface {
	ListOrders(ctx context.Context, userID string) ([]*entity.Order, error)
	GetOrder(ctx context.Context, orderID string) (*entity.Order, error)

	// ListSales returns the sales of userID, newest first.
	ListSales(ctx context.Context, userID string) ([]*entity.Sale, error)
	GetSale(ctx context.Context, saleID string) (*entity.Sale, error)
}
