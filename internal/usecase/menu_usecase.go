package usecase

import (
	"context"

	"cambaeats/internal/domain/entity"
)

// MenuUsecase serves the browsable menu.
type MenuUsecase interface {
	// ListProducts returns the active products.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns one product, active or not.
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)

	// ListCategories returns the active categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
