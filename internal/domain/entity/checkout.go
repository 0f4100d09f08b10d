package entity

import (
	"github.com/shopspring/decimal"
)

// CheckoutStep is the current screen of the checkout flow.
type CheckoutStep string

const (
	CheckoutStepAddress CheckoutStep = "address"
	CheckoutStepPayment CheckoutStep = "payment"
	CheckoutStepSummary CheckoutStep = "summary"
)

// Checkout is the per-session progress through address, payment and summary.
type Checkout struct {
	Step     CheckoutStep    `json:"step"`
	Address  string          `json:"address,omitempty"`
	Paid     bool            `json:"paid"`
	Items    []LineItem      `json:"items"` // Cart contents saved when leaving the address step.
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`

	Order      *PlacedOrder `json:"order,omitempty"`
	OrderError string       `json:"order_error,omitempty"`
}

// Placed reports whether an order was created for this checkout.
func (c *Checkout) Placed() bool {
	return c.Order != nil
}
