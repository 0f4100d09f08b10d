package qrcode

import (
	"testing"
	"time"

	"cambaeats/config"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestPaymentQRService_PaymentPayload(t *testing.T) {
	svc := NewPaymentQRService(&config.Config{})
	at := time.UnixMilli(1714564800123)

	payload := svc.PaymentPayload(decimal.RequireFromString("40.5"), at)

	assert.Equal(t, "CambaEats-Pago-40.50-1714564800123", payload)
}

func TestPaymentQRService_GeneratePaymentQR(t *testing.T) {
	svc := NewPaymentQRService(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}})

	png, err := svc.GeneratePaymentQR(decimal.NewFromInt(45), time.Now())

	require.NoError(t, err)
	require.Greater(t, len(png), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestPaymentQRService_GeneratePaymentQR_NegativeAmount(t *testing.T) {
	svc := NewPaymentQRService(&config.Config{})

	_, err := svc.GeneratePaymentQR(decimal.NewFromInt(-1), time.Now())

	assert.Error(t, err)
}
