package service

// QRCodeService defines the interface for pairing QR code generation.
type QRCodeService interface {
	// GeneratePairingQR renders the bot connect command for a device code
	// as a PNG QR code, shown on the device during onboarding.
	GeneratePairingQR(deviceCode string) ([]byte, error)
}
