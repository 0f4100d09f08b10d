// Package qrcode renders payment QR codes.
package qrcode

import (
	"fmt"
	"time"

	"cambaeats/config"
	"cambaeats/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

// paymentPrefix starts every payment payload scanned by the customer's bank app.
const paymentPrefix = "CambaEats-Pago"

type paymentQRService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewPaymentQRService creates a payment QR service from configuration
func NewPaymentQRService(cfg *config.Config) service.PaymentQRService {
	size, level := 256, "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return &paymentQRService{
		size:  size,
		level: recoveryLevel(level),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// PaymentPayload formats CambaEats-Pago-<amount with 2 decimals>-<unix millis>
func (s *paymentQRService) PaymentPayload(amount decimal.Decimal, at time.Time) string {
	return fmt.Sprintf("%s-%s-%d", paymentPrefix, amount.StringFixed(2), at.UnixMilli())
}

// GeneratePaymentQR renders the payment payload as a PNG image
func (s *paymentQRService) GeneratePaymentQR(amount decimal.Decimal, at time.Time) ([]byte, error) {
	if amount.IsNegative() {
		return nil, errors.Errorf("payment amount must not be negative: %s", amount)
	}

	code, err := qrcode.New(s.PaymentPayload(amount, at), s.level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return png, nil
}
