package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartMode tells whether the current cart is mirrored to the backend.
type CartMode int

const (
	// CartModeNone means no cart has been initialized yet.
	CartModeNone CartMode = iota
	// CartModeRemote carts are owned by the backend; every mutation is mirrored.
	CartModeRemote
	// CartModeLocalFallback carts live in memory only while the backend is unreachable.
	CartModeLocalFallback
)

// String returns the mode name used in logs and API payloads.
func (m CartMode) String() string {
	switch m {
	case CartModeRemote:
		return "remote"
	case CartModeLocalFallback:
		return "local_fallback"
	default:
		return "none"
	}
}

// MarshalText renders the mode by name.
func (m CartMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// CartRef identifies the current cart together with its mode.
type CartRef struct {
	Mode CartMode
	ID   string
}

// RemoteCart references a cart returned by the backend.
func RemoteCart(id string) CartRef {
	return CartRef{Mode: CartModeRemote, ID: id}
}

// LocalFallbackCart references a cart synthesized while offline.
func LocalFallbackCart(id string) CartRef {
	return CartRef{Mode: CartModeLocalFallback, ID: id}
}

// IsZero reports whether no cart is referenced.
func (r CartRef) IsZero() bool {
	return r.Mode == CartModeNone || r.ID == ""
}

// IsLocal reports whether the referenced cart is local-only.
func (r CartRef) IsLocal() bool {
	return r.Mode == CartModeLocalFallback
}

// Cart is the backend cart resource.
type Cart struct {
	ID        string
	UserID    string
	LineItems []LineItem
	// HasLineItems is false when the backend omitted the line item collection.
	HasLineItems bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ActiveLineItems returns the active entries of the cart, preserving order.
func (c *Cart) ActiveLineItems() []LineItem {
	active := make([]LineItem, 0, len(c.LineItems))
	for _, item := range c.LineItems {
		if item.IsActive {
			active = append(active, item)
		}
	}

	return active
}

// LineItem is one product-and-quantity entry of a cart.
type LineItem struct {
	ID        string    `json:"id"`
	CartID    string    `json:"cart_id"`
	ProductID string    `json:"product_id"`
	Product   Product   `json:"product"`
	Quantity  int       `json:"quantity"` // Always >= 1 while the item exists.
	IsActive  bool      `json:"is_active"`
	Local     bool      `json:"local"` // Created in memory, never sent to the backend.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subtotal is the unit price times the quantity.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// LineItemInput is the payload for creating a line item on the backend.
type LineItemInput struct {
	CartID    string
	ProductID string
	Quantity  int
}

// CartState is an immutable snapshot of a cart engine handed to consumers.
type CartState struct {
	CartID    string          `json:"cart_id,omitempty"`
	Mode      CartMode        `json:"mode"`
	Items     []LineItem      `json:"items"`
	IsLoading bool            `json:"is_loading"`
	IsOpen    bool            `json:"is_open"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

// SumTotal adds up price times quantity over items.
func SumTotal(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// SumQuantity adds up the quantities of items.
func SumQuantity(items []LineItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}

	return count
}
