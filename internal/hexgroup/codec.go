// Package hexgroup converts groups of hexadecimal digits to zero-padded
// decimal groups and back.
//
// Only two group sizes exist in the receipt code: 4 hex digits (16 bits)
// travel as 5 decimal digits and 8 hex digits (32 bits) travel as 10.
package hexgroup

import (
	"strconv"
	"strings"

	"github.com/rezonia/qreet/internal/model"
)

// Decimal group widths.
const (
	ShortWidth = 5
	LongWidth  = 10
)

// widths maps a hex group length to its decimal width.
var widths = map[int]int{
	4: ShortWidth,
	8: LongWidth,
}

// WidthFor returns the decimal width for a hex group of hexLen digits.
func WidthFor(hexLen int) (int, bool) {
	w, ok := widths[hexLen]
	return w, ok
}

// HexLenFor returns the hex group length that travels in a decimal group of width digits.
func HexLenFor(width int) (int, bool) {
	for h, w := range widths {
		if w == width {
			return h, true
		}
	}
	return 0, false
}

// Encode converts hex to its decimal value left-padded with zeros to outWidth digits.
func Encode(hex string, outWidth int) (string, error) {
	if hex == "" {
		return "", model.NewCodeError(model.ErrMalformedHex, "group", hex, "empty hex group", nil)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return "", model.NewCodeError(model.ErrMalformedHex, "group", hex, "not a hexadecimal number", err)
	}

	s := strconv.FormatUint(v, 10)
	if len(s) > outWidth {
		return "", model.NewCodeError(model.ErrMalformedHex, "group", hex,
			"value does not fit "+strconv.Itoa(outWidth)+" decimal digits", nil)
	}
	return strings.Repeat("0", outWidth-len(s)) + s, nil
}

// Decode converts a 5 or 10 digit decimal group to lowercase hex, unpadded.
// The value must fit the bit width of its group.
func Decode(decimal string) (string, error) {
	hexLen, ok := HexLenFor(len(decimal))
	if !ok {
		return "", model.NewCodeError(model.ErrMalformedDecimal, "group", decimal,
			"decimal group must have 5 or 10 digits", nil)
	}
	for i := 0; i < len(decimal); i++ {
		if decimal[i] < '0' || decimal[i] > '9' {
			return "", model.NewCodeError(model.ErrMalformedDecimal, "group", decimal, "non-digit character", nil)
		}
	}

	v, err := strconv.ParseUint(decimal, 10, hexLen*4)
	if err != nil {
		return "", model.NewCodeError(model.ErrMalformedDecimal, "group", decimal,
			"value exceeds "+strconv.Itoa(hexLen*4)+" bits", err)
	}
	return strconv.FormatUint(v, 16), nil
}

// DecodePadded decodes like Decode and left-pads the result to the hex length of the group.
func DecodePadded(decimal string) (string, error) {
	hex, err := Decode(decimal)
	if err != nil {
		return "", err
	}
	hexLen, _ := HexLenFor(len(decimal))
	return strings.Repeat("0", hexLen-len(hex)) + hex, nil
}
