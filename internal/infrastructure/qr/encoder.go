package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Encoder renders payment-intent strings as PNG QR codes.
type Encoder struct {
	level qrcode.RecoveryLevel
}

// NewEncoder creates an encoder using medium (15%) error recovery.
func NewEncoder() *Encoder {
	return &Encoder{level: qrcode.Medium}
}

// PNG encodes content into a size×size pixel PNG.
func (e *Encoder) PNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("qr: empty content")
	}
	q, err := qrcode.New(content, e.level)
	if err != nil {
		return nil, fmt.Errorf("qr: encode: %w", err)
	}
	data, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("qr: render png: %w", err)
	}
	return data, nil
}
