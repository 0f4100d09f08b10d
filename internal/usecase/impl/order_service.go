package impl

import (
	"context"
	"slices"

	"cambaeats/internal/domain/entity"
	domainerrors "cambaeats/internal/domain/errors"
	"cambaeats/internal/domain/service"
	"cambaeats/internal/usecase"

	"github.com/pkg/errors"
)

type orderService struct {
	orders service.OrderGateway
}

// NewOrderService creates the order history service
func NewOrderService(orders service.OrderGateway) usecase.OrderUsecase {
	return &orderService{orders: orders}
}

func (s *orderService) ListOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	if userID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}

	orders, err := s.orders.ListOrders(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	for _, order := range orders {
		order.StatusLabel = order.Status.Label()
	}

	return orders, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if errors.Is(err, service.ErrNotFound) || (err == nil && order == nil) {
		return nil, domainerrors.ErrOrderNotFound.WithDetails(orderID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	order.StatusLabel = order.Status.Label()

	return order, nil
}

// ListSales returns the sales of userID, newest first. The backend lists every
// sale so the filtering happens here.
func (s *orderService) ListSales(ctx context.Context, userID string) ([]*entity.Sale, error) {
	if userID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("userId is required")
	}

	sales, err := s.orders.ListSales(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sales")
	}

	mine := make([]*entity.Sale, 0, len(sales))
	for _, sale := range sales {
		if sale == nil || sale.UserID != userID {
			continue
		}
		sale.StatusLabel = sale.Status.Label()
		mine = append(mine, sale)
	}

	slices.SortStableFunc(mine, func(a, b *entity.Sale) int {
		return b.SoldAt.Compare(a.SoldAt)
	})

	return mine, nil
}

func (s *orderService) GetSale(ctx context.Context, saleID string) (*entity.Sale, error) {
	sale, err := s.orders.GetSale(ctx, saleID)
	if errors.Is(err, service.ErrNotFound) || (err == nil && sale == nil) {
		return nil, domainerrors.ErrOrderNotFound.WithDetails(saleID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sale")
	}

	sale.StatusLabel = sale.Status.Label()

	return sale, nil
}
