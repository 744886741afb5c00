package qrcode

import (
	"testing"

	"tourgenius/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
				Size:                 256,
				ErrorCorrectionLevel: tt.errorCorrectionLevel,
			}})
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateLinkQR(t *testing.T) {
	service := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}})

	qrBytes, err := service.GenerateLinkQR("https://calendar.google.com/calendar/render?action=TEMPLATE")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_EmptyLink(t *testing.T) {
	service := NewQRCodeService(&config.Config{})

	_, err := service.GenerateLinkQR("")
	assert.Error(t, err)
}
