package impl

import (
	"context"
	"testing"

	"cambaeats/internal/domain/entity"
	domainerrors "cambaeats/internal/domain/errors"
	"cambaeats/internal/domain/service"
	mockSvc "cambaeats/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuService_ListProducts_ActiveOnly(t *testing.T) {
	catalog := mockSvc.NewMockProductCatalog(t)
	svc := NewMenuService(catalog)
	ctx := context.Background()

	inactive := product("p2", 8)
	inactive.IsActive = false
	catalog.EXPECT().ListProducts(ctx).Return([]*entity.Product{product("p1", 10), inactive, product("p3", 4)}, nil)

	products, err := svc.ListProducts(ctx)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p3", products[1].ID)
}

func TestMenuService_ListCategories_ActiveOnly(t *testing.T) {
	catalog := mockSvc.NewMockProductCatalog(t)
	svc := NewMenuService(catalog)
	ctx := context.Background()

	catalog.EXPECT().ListCategories(ctx).Return([]*entity.Category{
		{ID: "c1", Name: "Platos", IsActive: true},
		{ID: "c2", Name: "Postres", IsActive: false},
	}, nil)

	categories, err := svc.ListCategories(ctx)

	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "c1", categories[0].ID)
}

func TestMenuService_GetProduct_NotFound(t *testing.T) {
	catalog := mockSvc.NewMockProductCatalog(t)
	svc := NewMenuService(catalog)
	ctx := context.Background()

	catalog.EXPECT().GetProduct(ctx, "p9").Return(nil, service.ErrNotFound)

	_, err := svc.GetProduct(ctx, "p9")

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
