package backend

import (
	"time"

	"cambaeats/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// Wire types use the backend's field names.

type productoDTO struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	IsActive    bool            `json:"isActive"`
}

func (p *productoDTO) toEntity() *entity.Product {
	return &entity.Product{
		ID:          p.ID,
		Name:        p.Nombre,
		Description: p.Descripcion,
		Price:       p.Precio,
		Stock:       p.Stock,
		IsActive:    p.IsActive,
	}
}

type categoriaDTO struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	IsActive    bool   `json:"isActive"`
}

func (c *categoriaDTO) toEntity() *entity.Category {
	return &entity.Category{
		ID:          c.ID,
		Name:        c.Nombre,
		Description: c.Descripcion,
		IsActive:    c.IsActive,
	}
}

type carritoDTO struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	IsActive bool   `json:"isActive"`
	// Nil when the backend omitted the collection.
	ItemCarrito *[]itemCarritoDTO `json:"itemCarrito"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func (c *carritoDTO) toEntity() *entity.Cart {
	cart := &entity.Cart{
		ID:        c.ID,
		UserID:    c.UserID,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.ItemCarrito != nil {
		cart.HasLineItems = true
		cart.LineItems = make([]entity.LineItem, 0, len(*c.ItemCarrito))
		for i := range *c.ItemCarrito {
			cart.LineItems = append(cart.LineItems, *(*c.ItemCarrito)[i].toEntity())
		}
	}

	return cart
}

type itemCarritoDTO struct {
	ID         string       `json:"id"`
	Cantidad   int          `json:"cantidad"`
	ProductoID string       `json:"productoId"`
	Producto   *productoDTO `json:"producto,omitempty"`
	CarritoID  string       `json:"carritoId"`
	IsActive   bool         `json:"isActive"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

func (i *itemCarritoDTO) toEntity() *entity.LineItem {
	item := &entity.LineItem{
		ID:        i.ID,
		CartID:    i.CarritoID,
		ProductID: i.ProductoID,
		Quantity:  i.Cantidad,
		IsActive:  i.IsActive,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
	if i.Producto != nil {
		item.Product = *i.Producto.toEntity()
	}

	return item
}

type createCarritoRequest struct {
	UserID string `json:"userId"`
}

type createItemCarritoRequest struct {
	CarritoID  string `json:"carritoId"`
	ProductoID string `json:"productoId"`
	Cantidad   int    `json:"cantidad"`
}

type updateItemCarritoRequest struct {
	Cantidad int `json:"cantidad"`
}

type compraRequest struct {
	UserID    string `json:"userId"`
	Direccion string `json:"direccion"`
}

type compraResponse struct {
	PedidoID string          `json:"pedidoId"`
	Total    decimal.Decimal `json:"total"`
}

type detalleProductoDTO struct {
	ID     string          `json:"id"`
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
}

type detalleDTO struct {
	ID         string             `json:"id"`
	Cantidad   int                `json:"cantidad"`
	PrecioUnit decimal.Decimal    `json:"precioUnit"`
	ProductoID string             `json:"productoId"`
	Producto   detalleProductoDTO `json:"producto"`
}

func (d *detalleDTO) toEntity() entity.OrderLine {
	return entity.OrderLine{
		ID:          d.ID,
		ProductID:   d.ProductoID,
		ProductName: d.Producto.Nombre,
		Quantity:    d.Cantidad,
		UnitPrice:   d.PrecioUnit,
	}
}

func toOrderLines(details []detalleDTO) []entity.OrderLine {
	lines := make([]entity.OrderLine, 0, len(details))
	for i := range details {
		lines = append(lines, details[i].toEntity())
	}

	return lines
}

type metodoPagoDTO struct {
	Metodo string `json:"metodo"`
}

type pagoDTO struct {
	ID         string          `json:"id"`
	Monto      decimal.Decimal `json:"monto"`
	FechaPago  time.Time       `json:"fechaPago"`
	Metodo     string          `json:"metodo"`
	Estado     string          `json:"estado"`
	MetodoPago *metodoPagoDTO  `json:"metodoPago,omitempty"`
}

func (p *pagoDTO) toEntity() *entity.Payment {
	if p == nil {
		return nil
	}

	method := p.Metodo
	if method == "" && p.MetodoPago != nil {
		method = p.MetodoPago.Metodo
	}

	return &entity.Payment{
		ID:     p.ID,
		Amount: p.Monto,
		PaidAt: p.FechaPago,
		Method: entity.PaymentMethod(method),
		Status: p.Estado,
	}
}

type pedidoDTO struct {
	ID             string          `json:"id"`
	Estado         string          `json:"estado"`
	Total          decimal.Decimal `json:"total"`
	FechaCreacion  time.Time       `json:"fechaCreacion"`
	UserID         string          `json:"userId"`
	Pago           *pagoDTO        `json:"pago,omitempty"`
	DetallesPedido []detalleDTO    `json:"detallesPedido"`
}

func (p *pedidoDTO) toEntity() *entity.Order {
	return &entity.Order{
		ID:        p.ID,
		UserID:    p.UserID,
		Status:    entity.OrderStatus(p.Estado),
		Total:     p.Total,
		CreatedAt: p.FechaCreacion,
		Payment:   p.Pago.toEntity(),
		Lines:     toOrderLines(p.DetallesPedido),
	}
}

type ventaDTO struct {
	ID            string          `json:"id"`
	Estado        string          `json:"estado"`
	Total         decimal.Decimal `json:"total"`
	FechaVenta    time.Time       `json:"fechaVenta"`
	UserID        string          `json:"userId"`
	IsActive      bool            `json:"isActive"`
	Pago          *pagoDTO        `json:"pago,omitempty"`
	DetalleVentas []detalleDTO    `json:"detalleVentas"`
}

func (v *ventaDTO) toEntity() *entity.Sale {
	return &entity.Sale{
		ID:       v.ID,
		UserID:   v.UserID,
		Status:   entity.SaleStatus(v.Estado),
		Total:    v.Total,
		SoldAt:   v.FechaVenta,
		IsActive: v.IsActive,
		Payment:  v.Pago.toEntity(),
		Lines:    toOrderLines(v.DetalleVentas),
	}
}

type clientLogRequest struct {
	Level   string         `json:"level"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}
