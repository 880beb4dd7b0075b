package render

import (
	"image"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 256

// GenerateQRCodeImage returns a QR code image for the given payload.
// If payload is empty, it returns (nil, nil).
func GenerateQRCodeImage(payload string, sizePx int) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	return qrCode.Image(sizePx), nil
}

// GenerateQRCodePNG is GenerateQRCodeImage encoded as PNG bytes.
func GenerateQRCodePNG(payload string, sizePx int) ([]byte, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}
	return qrcode.Encode(payload, qrcode.Medium, sizePx)
}

// GenerateQRCodeText renders the payload with half-block characters for terminals.
func GenerateQRCodeText(payload string) (string, error) {
	if payload == "" {
		return "", nil
	}
	qrCode, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return "", err
	}
	return qrCode.ToSmallString(false), nil
}
