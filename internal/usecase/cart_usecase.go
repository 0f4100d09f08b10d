package usecase

import (
	"context"

	"cambaeats/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CartUsecase is the cart of one client session. It reconciles local line
// items with the backend cart and degrades to a local-only cart when the
// backend is unreachable.
type CartUsecase interface {
	// Initialize resumes the persisted cart or obtains a fresh one for userID.
	// It never fails: when the backend is unreachable the cart switches to
	// local-fallback mode.
	Initialize(ctx context.Context, userID string)

	// AddItem adds quantity units of product, merging into an existing line.
	AddItem(ctx context.Context, product *entity.Product, quantity int) error

	// RemoveItem drops a line item. Unknown IDs are ignored.
	RemoveItem(ctx context.Context, lineItemID string) error

	// SetQuantity sets the quantity of a line item; quantity <= 0 removes it.
	SetQuantity(ctx context.Context, lineItemID string, quantity int) error

	// ClearCart forgets the current cart and its persisted identifier.
	ClearCart(ctx context.Context)

	// ToggleOpen flips the UI visibility flag and returns the new value.
	ToggleOpen() bool

	// Total is the sum of unit price times quantity over all line items.
	Total() decimal.Decimal

	// ItemCount is the sum of quantities over all line items.
	ItemCount() int

	// Items returns a copy of the current line items.
	Items() []entity.LineItem

	// Ref returns the current cart reference (zero when no cart).
	Ref() entity.CartRef

	// Snapshot returns a consistent copy of the whole cart state.
	Snapshot() entity.CartState

	// Subscribe streams a snapshot after every state change until cancel is called.
	Subscribe() (updates <-chan entity.CartState, cancel func())
}

// CartSessions owns one cart per client session.
type CartSessions interface {
	// Get returns the cart of sessionID, creating an empty one on first use.
	Get(sessionID string) CartUsecase

	// Drop discards the in-memory cart of sessionID. The persisted pointer is kept.
	Drop(sessionID string)

	// OnDrop registers fn to run after a session cart is dropped or evicted.
	OnDrop(fn func(sessionID string))
}
