// Package qrcode renders order QR payloads as PNG images.
package qrcode

import (
	"fmt"

	goqrcode "github.com/skip2/go-qrcode"
)

// Renderer implements ports.QRRenderer with medium error correction.
type Renderer struct {
	level goqrcode.RecoveryLevel
}

func NewRenderer() Renderer {
	return Renderer{level: goqrcode.Medium}
}

func (r Renderer) RenderPNG(payload string, size int) ([]byte, error) {
	png, err := goqrcode.Encode(payload, r.level, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
