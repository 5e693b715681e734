package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is decimal zero.
var Zero = decimal.Zero

// MaxAmount is the largest amount a receipt code can carry (9 999 999.99 CZK).
var MaxAmount = MustFromString("9999999.99")

// Scale is the number of fractional digits carried in a code.
const Scale = 2

// FromString parses decimal from string. A decimal comma is accepted.
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.Replace(strings.TrimSpace(s), ",", ".", 1))
}

// MustFromString parses decimal from string, panics on error.
func MustFromString(s string) decimal.Decimal {
	d, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsPositive returns true if decimal is greater than zero.
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(Zero)
}

// HasScale returns true if d has no more than Scale fractional digits.
func HasScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(Scale))
}

// InRange returns true if d is positive and not above MaxAmount.
func InRange(d decimal.Decimal) bool {
	return IsPositive(d) && d.LessThanOrEqual(MaxAmount)
}

// ToCents formats d as whole hundredths with no separators: 34113.00 -> "3411300".
func ToCents(d decimal.Decimal) string {
	return d.Shift(Scale).StringFixed(0)
}

// FromCents parses a run of digits as hundredths: "3411300" -> 34113.00.
func FromCents(digits string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(digits)
	if err != nil {
		return Zero, err
	}
	return d.Shift(-Scale), nil
}

// Format renders d with exactly Scale fractional digits: 117 -> "117.00".
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}
