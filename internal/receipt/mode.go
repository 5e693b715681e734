package receipt

import (
	"strings"

	"github.com/rezonia/qreet/internal/model"
)

// Mode is the sales registration mode.
type Mode int

const (
	ModeNormal     Mode = 0
	ModeSimplified Mode = 1
)

func (m Mode) valid() bool {
	return m == ModeNormal || m == ModeSimplified
}

// QRValue returns "0" for normal and "1" for simplified.
func (m Mode) QRValue() string {
	if m == ModeSimplified {
		return "1"
	}
	return "0"
}

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSimplified:
		return "simplified"
	default:
		return "unknown"
	}
}

// ParseMode reads a mode from its code digit.
func ParseMode(c byte) (Mode, error) {
	switch c {
	case '0':
		return ModeNormal, nil
	case '1':
		return ModeSimplified, nil
	default:
		return 0, model.NewCodeError(model.ErrInvalidFormat, "mode", string(c), "mode digit must be 0 or 1", nil)
	}
}

// ParseModeName accepts "normal"/"simplified", the digits and the letters B/Z.
// An empty name is normal.
func ParseModeName(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal", "0", "b":
		return ModeNormal, nil
	case "simplified", "1", "z":
		return ModeSimplified, nil
	default:
		return 0, model.NewCodeError(model.ErrInvalidFormat, "mode", s, "must be normal or simplified", nil)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, model.NewCodeError(model.ErrInvalidFormat, "mode", int(m), "unknown mode", nil)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseModeName(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
