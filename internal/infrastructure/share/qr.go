// Package share genera los artefactos de compartición del enlace de pago.
package share

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// QRPNG codifica content como código QR y devuelve un PNG de size x size píxeles.
func QRPNG(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("share: contenido vacío para QR")
	}
	if size <= 0 {
		size = 256
	}
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("share: codificar QR: %w", err)
	}
	code, err = barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("share: escalar QR: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return nil, fmt.Errorf("share: serializar PNG: %w", err)
	}
	return buf.Bytes(), nil
}
