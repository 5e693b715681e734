package qreet

import (
	"strings"

	"github.com/rezonia/qreet/internal/receipt"
	"github.com/rezonia/qreet/internal/render"
)

// Encode returns the receipt code of r.
func Encode(r *Receipt) (string, error) {
	return r.Encode()
}

// Decode parses a receipt code. Surrounding whitespace is ignored.
func Decode(code string) (*Receipt, error) {
	return receipt.Decode(strings.TrimSpace(code))
}

// RenderPNG validates code and draws it as a size x size PNG QR symbol.
func RenderPNG(code string, size int) ([]byte, error) {
	code = strings.TrimSpace(code)
	if _, err := receipt.Decode(code); err != nil {
		return nil, err
	}
	return render.NewRenderer(render.WithSize(size)).PNG(code)
}

// EncodePNG encodes r and draws the code as a PNG QR symbol.
func EncodePNG(r *Receipt, size int) (string, []byte, error) {
	code, err := r.Encode()
	if err != nil {
		return "", nil, err
	}
	data, err := render.NewRenderer(render.WithSize(size)).PNG(code)
	if err != nil {
		return "", nil, err
	}
	return code, data, nil
}
