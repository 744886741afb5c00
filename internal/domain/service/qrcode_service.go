package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateLinkQR renders the given URL as a PNG QR code image.
	GenerateLinkQR(link string) ([]byte, error)
}
