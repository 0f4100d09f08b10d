package backend

import (
	"context"
	"net/http"
	"net/url"

	"cambaeats/internal/domain/entity"

	"github.com/pkg/errors"
)

// CreateOrder turns the user's backend cart into an order
func (c *Client) CreateOrder(ctx context.Context, userID, address string) (*entity.PlacedOrder, error) {
	var resp compraResponse
	if err := c.do(ctx, http.MethodPost, "/compra", compraRequest{UserID: userID, Direccion: address}, &resp); err != nil {
		return nil, err
	}
	if resp.PedidoID == "" {
		return nil, errors.Wrap(ErrInvalidResponse, "POST /compra: missing pedidoId")
	}

	return &entity.PlacedOrder{OrderID: resp.PedidoID, Total: resp.Total}, nil
}

// ListOrders returns the orders of userID
func (c *Client) ListOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	var dtos []pedidoDTO
	if err := c.do(ctx, http.MethodGet, "/pedidos?userId="+url.QueryEscape(userID), nil, &dtos); err != nil {
		return nil, err
	}

	orders := make([]*entity.Order, 0, len(dtos))
	for i := range dtos {
		orders = append(orders, dtos[i].toEntity())
	}

	return orders, nil
}

// GetOrder returns one order
func (c *Client) GetOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	var dto pedidoDTO
	if err := c.do(ctx, http.MethodGet, "/pedidos/"+url.PathEscape(orderID), nil, &dto); err != nil {
		return nil, err
	}

	return dto.toEntity(), nil
}

// ListSales returns every sale
func (c *Client) ListSales(ctx context.Context) ([]*entity.Sale, error) {
	var dtos []ventaDTO
	if err := c.do(ctx, http.MethodGet, "/ventas", nil, &dtos); err != nil {
		return nil, err
	}

	sales := make([]*entity.Sale, 0, len(dtos))
	for i := range dtos {
		sales = append(sales, dtos[i].toEntity())
	}

	return sales, nil
}

// GetSale returns one sale
func (c *Client) GetSale(ctx context.Context, saleID string) (*entity.Sale, error) {
	var dto ventaDTO
	if err := c.do(ctx, http.MethodGet, "/ventas/"+url.PathEscape(saleID), nil, &dto); err != nil {
		return nil, err
	}

	return dto.toEntity(), nil
}
