package decimal_test

import (
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/qreet/internal/decimal"
)

func TestFromString(t *testing.T) {
	d, err := decimal.FromString("34113.00")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec.NewFromInt(34113)))

	d, err = decimal.FromString(" 117,50 ")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec.RequireFromString("117.5")))

	_, err = decimal.FromString("not-a-number")
	require.Error(t, err)
}

func TestMustFromString(t *testing.T) {
	d := decimal.MustFromString("999.99")
	assert.True(t, d.Equal(dec.RequireFromString("999.99")))

	assert.Panics(t, func() {
		decimal.MustFromString("invalid")
	})
}

func TestHasScale(t *testing.T) {
	assert.True(t, decimal.HasScale(dec.RequireFromString("1.5")))
	assert.True(t, decimal.HasScale(dec.RequireFromString("1.25")))
	assert.True(t, decimal.HasScale(dec.RequireFromString("1.250")))
	assert.False(t, decimal.HasScale(dec.RequireFromString("1.005")))
}

func TestInRange(t *testing.T) {
	assert.True(t, decimal.InRange(dec.RequireFromString("0.01")))
	assert.True(t, decimal.InRange(decimal.MaxAmount))
	assert.Equal(t, "9999999.99", decimal.Format(decimal.MaxAmount))
	assert.False(t, decimal.InRange(dec.RequireFromString("10000000.00")))
	assert.False(t, decimal.InRange(dec.Zero))
	assert.False(t, decimal.InRange(dec.NewFromInt(-1)))
}

func TestToCents(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"34113.00", "3411300"},
		{"117", "11700"},
		{"0.5", "50"},
		{"0.05", "5"},
		{"9999999.99", "999999999"},
		{"1234567.8", "123456780"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.expected, decimal.ToCents(dec.RequireFromString(tt.amount)))
		})
	}
}

func TestFromCents(t *testing.T) {
	d, err := decimal.FromCents("3411300")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec.NewFromInt(34113)))
	assert.Equal(t, "34113.00", decimal.Format(d))

	_, err = decimal.FromCents("12x")
	require.Error(t, err)
}

func TestIsPositive(t *testing.T) {
	assert.True(t, decimal.IsPositive(dec.NewFromInt(1)))
	assert.False(t, decimal.IsPositive(dec.Zero))
	assert.False(t, decimal.IsPositive(dec.NewFromInt(-1)))
}
