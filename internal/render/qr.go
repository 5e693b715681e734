// Package render draws receipt codes as QR symbols.
package render

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

const (
	DefaultSize = 256
	MinSize     = 64
	MaxSize     = 2048
)

// Level is a QR error correction level.
type Level string

const (
	LevelL Level = "L"
	LevelM Level = "M"
	LevelQ Level = "Q"
	LevelH Level = "H"
)

// ParseLevel accepts L, M, Q or H in any case; empty means M.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToUpper(strings.TrimSpace(s))); l {
	case "":
		return LevelM, nil
	case LevelL, LevelM, LevelQ, LevelH:
		return l, nil
	default:
		return "", fmt.Errorf("unknown QR error correction level %q", s)
	}
}

func (l Level) qr() qr.ErrorCorrectionLevel {
	switch l {
	case LevelL:
		return qr.L
	case LevelQ:
		return qr.Q
	case LevelH:
		return qr.H
	default:
		return qr.M
	}
}

// Renderer turns text into PNG encoded QR symbols.
type Renderer struct {
	size  int
	level Level
}

// Option configures the renderer.
type Option func(*Renderer)

// WithSize sets the side of the PNG in pixels.
func WithSize(size int) Option {
	return func(r *Renderer) {
		r.size = size
	}
}

// WithLevel sets the error correction level.
func WithLevel(level Level) Option {
	return func(r *Renderer) {
		r.level = level
	}
}

// NewRenderer creates a renderer, defaulting to 256px and level M.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		size:  DefaultSize,
		level: LevelM,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Size returns the configured side in pixels.
func (r *Renderer) Size() int {
	return r.size
}

// PNG renders text at the configured size.
func (r *Renderer) PNG(text string) ([]byte, error) {
	return r.PNGSize(text, r.size)
}

// PNGSize renders text at the given size.
// All-digit text uses numeric mode, which is the densest QR encoding.
func (r *Renderer) PNGSize(text string, size int) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("render: empty text")
	}
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("render: size %d outside %d-%d", size, MinSize, MaxSize)
	}

	mode := qr.Auto
	if isNumeric(text) {
		mode = qr.Numeric
	}

	code, err := qr.Encode(text, r.level.qr(), mode)
	if err != nil {
		return nil, fmt.Errorf("render: encode QR: %w", err)
	}
	code, err = barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("render: scale QR: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return nil, fmt.Errorf("render: write PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
