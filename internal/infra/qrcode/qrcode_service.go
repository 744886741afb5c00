package qrcode

import (
	"tourgenius/config"
	"tourgenius/internal/domain/service"
	"tourgenius/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultQRSize
	level := qrcode.Medium
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = parseRecoveryLevel(cfg.QRCode.ErrorCorrectionLevel)
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

func parseRecoveryLevel(errorCorrectionLevel string) qrcode.RecoveryLevel {
	switch errorCorrectionLevel {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateLinkQR renders the given URL as a PNG QR code image.
func (s *qrcodeService) GenerateLinkQR(link string) ([]byte, error) {
	if link == "" {
		return nil, errors.New("link must not be empty")
	}

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
