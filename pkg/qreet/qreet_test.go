package qreet_test

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/qreet/pkg/qreet"
)

var (
	saleTime = time.Date(2017, 5, 6, 14, 1, 10, 0, time.UTC)
	amount   = decimal.RequireFromString("34113.00")
)

func TestEncode_Examples(t *testing.T) {
	tests := []struct {
		name     string
		build    func() (*qreet.Receipt, error)
		expected string
	}{
		{
			name: "FIK with tax id",
			build: func() (*qreet.Receipt, error) {
				return qreet.OfFik("2c4ccf70-0055-44f2-804e-3056786dd351-ff", "CZ7900110063", amount, saleTime, qreet.ModeNormal)
			},
			expected: "14017050614017900110063074323134400085176503411300",
		},
		{
			name: "BKP with tax id",
			build: func() (*qreet.Receipt, error) {
				return qreet.OfBkp("6455B192-D697186A-6AB1971A-1E9B146B-CDD5007B", "CZ7900110063", amount, saleTime, qreet.ModeNormal)
			},
			expected: "24017050614017900110063168333761836002264103411300",
		},
		{
			name: "BKP without tax id",
			build: func() (*qreet.Receipt, error) {
				return qreet.OfBkp("6455B192-D697186A-6AB1971A-1E9B146B-CDD5007B", "", amount, saleTime, qreet.ModeNormal)
			},
			expected: "2101705061401168333761836002264103411300",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tt.build()
			require.NoError(t, err)

			code, err := qreet.Encode(r)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestDecode_Inverse(t *testing.T) {
	const code = "24017050614017900110063168333761836002264103411300"

	r, err := qreet.Decode(code + "\n")
	require.NoError(t, err)

	again, err := qreet.Encode(r)
	require.NoError(t, err)
	assert.Equal(t, code, again)
}

func TestBuilder(t *testing.T) {
	proof, err := qreet.FromFik("2c4ccf70-0055-44f2")
	require.NoError(t, err)
	taxID, err := qreet.ParseTaxID("12345678")
	require.NoError(t, err)

	r, err := qreet.New(proof, decimal.RequireFromString("9999999.99"), saleTime,
		qreet.WithTaxID(taxID), qreet.WithMode(qreet.ModeSimplified))
	require.NoError(t, err)

	assert.Equal(t, qreet.TaxIDLen8, r.TaxID().Class())
	assert.Equal(t, "12", r.Version().String())

	code, err := qreet.Encode(r)
	require.NoError(t, err)
	assert.Equal(t, "12117050614011234567807432313440008517650999999999", code)
}

func TestErrors(t *testing.T) {
	_, err := qreet.OfBkp("6455B192-D697186A", "", decimal.Zero, saleTime, qreet.ModeNormal)
	assert.True(t, errors.Is(err, qreet.ErrInvalidAmount))

	_, err = qreet.Decode("24017050614017900110063168333761836002264103411X00")
	assert.True(t, errors.Is(err, qreet.ErrMalformedCode))

	var codeErr *qreet.CodeError
	require.True(t, errors.As(err, &codeErr))
	assert.Equal(t, "code", codeErr.Field)
}

func TestRenderPNG(t *testing.T) {
	data, err := qreet.RenderPNG("2101705061401168333761836002264103411300", 200)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	_, err = qreet.RenderPNG("123", 200)
	assert.True(t, errors.Is(err, qreet.ErrMalformedCode))
}

func TestEncodePNG(t *testing.T) {
	r, err := qreet.OfBkp("6455B192-D697186A", "", amount, saleTime, qreet.ModeNormal)
	require.NoError(t, err)

	code, data, err := qreet.EncodePNG(r, 256)
	require.NoError(t, err)
	assert.Equal(t, "2101705061401168333761836002264103411300", code)
	assert.NotEmpty(t, data)
}
