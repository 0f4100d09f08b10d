package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentQRService renders payment QR codes for the checkout payment step
type PaymentQRService interface {
	// PaymentPayload is the text encoded in the QR code for amount at time at
	PaymentPayload(amount decimal.Decimal, at time.Time) string

	// GeneratePaymentQR renders the payload of amount as a PNG image
	GeneratePaymentQR(amount decimal.Decimal, at time.Time) ([]byte, error)
}
