package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the delivery lifecycle of an order (pedido).
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDIENTE"
	OrderStatusAccepted  OrderStatus = "ACEPTADO"
	OrderStatusPickedUp  OrderStatus = "RECOGIDO"
	OrderStatusOnTheWay  OrderStatus = "EN_CAMINO"
	OrderStatusDelivered OrderStatus = "ENTREGADO"
	OrderStatusCancelled OrderStatus = "CANCELADO"
)

// Label is the customer-facing status text.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPending:
		return "Pendiente"
	case OrderStatusAccepted:
		return "En preparación"
	case OrderStatusPickedUp:
		return "Recogido"
	case OrderStatusOnTheWay:
		return "En camino"
	case OrderStatusDelivered:
		return "Entregado"
	case OrderStatusCancelled:
		return "Cancelado"
	default:
		return string(s)
	}
}

// SaleStatus is the commercial lifecycle of a sale (venta).
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "PENDIENTE"
	SaleStatusCompleted SaleStatus = "COMPLETADA"
	SaleStatusCancelled SaleStatus = "CANCELADA"
)

// Label is the customer-facing status text.
func (s SaleStatus) Label() string {
	switch s {
	case SaleStatusCompleted:
		return "Entregado"
	case SaleStatusPending:
		return "En preparación"
	case SaleStatusCancelled:
		return "Cancelado"
	default:
		return string(s)
	}
}

// PaymentMethod of a sale payment.
type PaymentMethod string

const (
	PaymentMethodDebitCard PaymentMethod = "TARJETA_DEBITO"
	PaymentMethodCash      PaymentMethod = "EFECTIVO"
	PaymentMethodQR        PaymentMethod = "QR"
)

// OrderLine is a product line frozen into an order or a sale.
type OrderLine struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Payment registered against an order or a sale.
type Payment struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	PaidAt time.Time       `json:"paid_at"`
	Method PaymentMethod   `json:"method,omitempty"`
	Status string          `json:"status,omitempty"`
}

// Order is a placed delivery order.
type Order struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Status      OrderStatus     `json:"status"`
	StatusLabel string          `json:"status_label"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
	Payment     *Payment        `json:"payment,omitempty"`
	Lines       []OrderLine     `json:"lines"`
}

// Sale is the commercial record of a purchase.
type Sale struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Status      SaleStatus      `json:"status"`
	StatusLabel string          `json:"status_label"`
	Total       decimal.Decimal `json:"total"`
	SoldAt      time.Time       `json:"sold_at"`
	IsActive    bool            `json:"is_active"`
	Payment     *Payment        `json:"payment,omitempty"`
	Lines       []OrderLine     `json:"lines"`
}

// PlacedOrder is the backend's answer to a purchase.
type PlacedOrder struct {
	OrderID string          `json:"order_id"`
	Total   decimal.Decimal `json:"total"`
}
