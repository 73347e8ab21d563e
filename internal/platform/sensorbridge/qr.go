package sensorbridge

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRCode renders url as a QR code made of half-block characters, small
// enough to scan from a terminal.
func QRCode(url string) (string, error) {
	q, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("sensorbridge: qr code: %w", err)
	}
	return q.ToSmallString(false), nil
}
