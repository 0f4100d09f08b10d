package backend

import (
	"context"
	"net/http"
	"net/url"

	"cambaeats/internal/domain/entity"
)

// FindOrCreateCart returns the open cart of userID, creating it when absent
func (c *Client) FindOrCreateCart(ctx context.Context, userID string) (*entity.Cart, error) {
	var dto carritoDTO
	if err := c.do(ctx, http.MethodGet, "/carritos/user/"+url.PathEscape(userID), nil, &dto); err != nil {
		return nil, err
	}

	return dto.toEntity(), nil
}

// CreateCart explicitly creates a cart for userID
func (c *Client) CreateCart(ctx context.Context, userID string) (*entity.Cart, error) {
	var dto carritoDTO
	if err := c.do(ctx, http.MethodPost, "/carritos", createCarritoRequest{UserID: userID}, &dto); err != nil {
		return nil, err
	}

	return dto.toEntity(), nil
}

// GetCart fetches a cart together with its line items
func (c *Client) GetCart(ctx context.Context, cartID string) (*entity.Cart, error) {
	var dto carritoDTO
	if err := c.do(ctx, http.MethodGet, "/carritos/"+url.PathEscape(cartID), nil, &dto); err != nil {
		return nil, err
	}

	return dto.toEntity(), nil
}

// CreateLineItem adds a product line to a cart
func (c *Client) CreateLineItem(ctx context.Context, input entity.LineItemInput) (*entity.LineItem, error) {
	req := createItemCarritoRequest{
		CarritoID:  input.CartID,
		ProductoID: input.ProductID,
		Cantidad:   input.Quantity,
	}

	var dto itemCarritoDTO
	if err := c.do(ctx, http.MethodPost, "/items-carrito", req, &dto); err != nil {
		return nil, err
	}

	return dto.toEntity(), nil
}

// UpdateLineItem sets the quantity of a line item
func (c *Client) UpdateLineItem(ctx context.Context, lineItemID string, quantity int) (*entity.LineItem, error) {
	var dto itemCarritoDTO
	path := "/items-carrito/" + url.PathEscape(lineItemID)
	if err := c.do(ctx, http.MethodPatch, path, updateItemCarritoRequest{Cantidad: quantity}, &dto); err != nil {
		return nil, err
	}

	return dto.toEntity(), nil
}

// DeleteLineItem removes a line item
func (c *Client) DeleteLineItem(ctx context.Context, lineItemID string) error {
	return c.do(ctx, http.MethodDelete, "/items-carrito/"+url.PathEscape(lineItemID), nil, nil)
}
