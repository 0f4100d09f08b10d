package usecase

import (
	"context"

	"cambaeats/internal/domain/entity"
)

// CheckoutUsecase drives the address, payment and summary steps of a session.
type CheckoutUsecase interface {
	// Start begins a checkout for the session's cart. The cart must not be empty.
	Start(ctx context.Context, sessionID string) (*entity.Checkout, error)

	// Get returns the current checkout of the session.
	Get(ctx context.Context, sessionID string) (*entity.Checkout, error)

	// SetAddress records the delivery address and moves to the payment step.
	SetAddress(ctx context.Context, sessionID, address string) (*entity.Checkout, error)

	// Back returns from the payment step to the address step.
	Back(ctx context.Context, sessionID string) (*entity.Checkout, error)

	// PaymentQR renders the QR code to pay the checkout total.
	PaymentQR(ctx context.Context, sessionID string) ([]byte, error)

	// ConfirmPayment moves to the summary step once the customer confirms paying.
	ConfirmPayment(ctx context.Context, sessionID string, paid bool) (*entity.Checkout, error)

	// PlaceOrder creates the order once. Later calls return the first outcome.
	PlaceOrder(ctx context.Context, sessionID, userID string) (*entity.Checkout, error)
}
