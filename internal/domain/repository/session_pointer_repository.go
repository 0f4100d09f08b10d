// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
)

// SessionPointerStore persists the identifier of the active cart so that it
// survives a restart of the client. Nothing else about the cart is stored.
type SessionPointerStore interface {
	// Load returns the stored cart identifier. ok is false when none is stored.
	Load(ctx context.Context) (cartID string, ok bool, err error)

	// Save stores cartID, replacing any previous value.
	Save(ctx context.Context, cartID string) error

	// Clear removes the stored identifier.
	Clear(ctx context.Context) error
}

// SessionPointerProvider hands out the pointer store of one client session.
type SessionPointerProvider interface {
	// ForSession returns the store scoped to sessionID.
	ForSession(sessionID string) SessionPointerStore
}
