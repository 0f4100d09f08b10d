package service

import (
	"context"

	"cambaeats/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by backend ports when the requested resource does not exist.
var ErrNotFound = errors.New("resource not found")

// CartGateway is the backend owning cart and line item resources.
type CartGateway interface {
	// FindOrCreateCart returns the open cart of userID, creating it when absent.
	// Repeated calls for the same user return the same cart.
	FindOrCreateCart(ctx context.Context, userID string) (*entity.Cart, error)

	// CreateCart explicitly creates a cart for userID.
	CreateCart(ctx context.Context, userID string) (*entity.Cart, error)

	// GetCart fetches a cart by ID. Fails with ErrNotFound when it no longer exists.
	GetCart(ctx context.Context, cartID string) (*entity.Cart, error)

	// CreateLineItem adds a product line to a cart.
	CreateLineItem(ctx context.Context, input entity.LineItemInput) (*entity.LineItem, error)

	// UpdateLineItem sets the quantity of a line item.
	UpdateLineItem(ctx context.Context, lineItemID string, quantity int) (*entity.LineItem, error)

	// DeleteLineItem removes a line item.
	DeleteLineItem(ctx context.Context, lineItemID string) error
}

// ProductCatalog resolves products of the menu.
type ProductCatalog interface {
	// GetProduct fails with ErrNotFound when the product was deleted or deactivated.
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)

	// ListProducts returns every product, active or not.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// ListCategories returns every category, active or not.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
