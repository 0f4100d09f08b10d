package impl

import (
	"context"

	"cambaeats/internal/domain/entity"
	domainerrors "cambaeats/internal/domain/errors"
	"cambaeats/internal/domain/service"
	"cambaeats/internal/usecase"

	"github.com/pkg/errors"
)

type menuService struct {
	catalog service.ProductCatalog
}

// NewMenuService creates the menu service
func NewMenuService(catalog service.ProductCatalog) usecase.MenuUsecase {
	return &menuService{catalog: catalog}
}

func (s *menuService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return entity.ActiveProducts(products), nil
}

func (s *menuService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := s.catalog.GetProduct(ctx, productID)
	if errors.Is(err, service.ErrNotFound) || (err == nil && product == nil) {
		return nil, domainerrors.ErrProductNotFound.WithDetails(productID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

func (s *menuService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return entity.ActiveCategories(categories), nil
}
