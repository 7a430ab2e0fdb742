package qrcode

import (
	"fmt"

	"github.com/ogarmar/Compa/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	botName              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(botName string, size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		botName:              botName,
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePairingQR generates a QR code encoding a Telegram deep link that
// pre-fills the connect command for the given device code
func (s *qrcodeService) GeneratePairingQR(deviceCode string) ([]byte, error) {
	// Deep link opens the bot chat with the code as start payload, so the
	// family member only has to tap "Start"
	content := fmt.Sprintf("https://t.me/%s?start=%s", s.botName, deviceCode)
	if s.botName == "" {
		content = fmt.Sprintf("/connect %s", deviceCode)
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
