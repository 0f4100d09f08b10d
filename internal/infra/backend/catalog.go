package backend

import (
	"context"
	"net/http"
	"net/url"

	"cambaeats/internal/domain/entity"
)

// GetProduct returns one product
func (c *Client) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	var dto productoDTO
	if err := c.do(ctx, http.MethodGet, "/productos/"+url.PathEscape(productID), nil, &dto); err != nil {
		return nil, err
	}

	return dto.toEntity(), nil
}

// ListProducts returns every product, active or not
func (c *Client) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var dtos []productoDTO
	if err := c.do(ctx, http.MethodGet, "/productos", nil, &dtos); err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(dtos))
	for i := range dtos {
		products = append(products, dtos[i].toEntity())
	}

	return products, nil
}

// ListCategories returns every category, active or not
func (c *Client) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var dtos []categoriaDTO
	if err := c.do(ctx, http.MethodGet, "/categorias", nil, &dtos); err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, 0, len(dtos))
	for i := range dtos {
		categories = append(categories, dtos[i].toEntity())
	}

	return categories, nil
}
