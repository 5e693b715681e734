package model_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/qreet/internal/model"
)

func TestCodeError_Is(t *testing.T) {
	err := model.NewCodeError(model.ErrInvalidAmount, "amount", "0", "must be greater than zero", nil)

	assert.True(t, errors.Is(err, model.ErrInvalidAmount))
	assert.False(t, errors.Is(err, model.ErrInvalidFormat))
}

func TestCodeError_WrappedStillMatches(t *testing.T) {
	inner := model.NewCodeError(model.ErrMalformedHex, "group", "XYZ", "not hexadecimal", nil)
	wrapped := fmt.Errorf("encode proof: %w", inner)

	assert.True(t, errors.Is(wrapped, model.ErrMalformedHex))

	var codeErr *model.CodeError
	require.True(t, errors.As(wrapped, &codeErr))
	assert.Equal(t, "group", codeErr.Field)
}

func TestCodeError_Unwrap(t *testing.T) {
	cause := errors.New("strconv failure")
	err := model.NewCodeError(model.ErrMalformedDecimal, "group", "12a45", "not a number", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "strconv failure")
	assert.Contains(t, err.Error(), "value=12a45")
}

func TestCodeError_MessageWithoutValue(t *testing.T) {
	err := model.NewCodeError(model.ErrMalformedCode, "code", nil, "does not match grammar", nil)
	assert.Equal(t, "malformed code: code: does not match grammar", err.Error())
}

func TestKindName(t *testing.T) {
	tests := []struct {
		kind     error
		expected string
	}{
		{model.ErrMalformedHex, "malformed_hex"},
		{model.ErrMalformedDecimal, "malformed_decimal"},
		{model.ErrInvalidFormat, "invalid_format"},
		{model.ErrUnsupportedKind, "unsupported_kind"},
		{model.ErrInvalidLength, "invalid_length"},
		{model.ErrInvalidAmount, "invalid_amount"},
		{model.ErrVersionMismatch, "version_mismatch"},
		{model.ErrMalformedCode, "malformed_code"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			err := model.NewCodeError(tt.kind, "field", nil, "message", nil)
			assert.Equal(t, tt.expected, model.KindName(err))
		})
	}

	assert.Empty(t, model.KindName(errors.New("foreign")))
	assert.Nil(t, model.KindOf(nil))
}

func TestKindOf_OuterKindWins(t *testing.T) {
	cause := model.NewCodeError(model.ErrMalformedDecimal, "group", "9999999999", "does not fit 8 hex digits", nil)
	err := model.NewCodeError(model.ErrInvalidFormat, "proof", "99999999993600226410", "group out of range", cause)

	assert.True(t, errors.Is(err, model.ErrMalformedDecimal))
	assert.Equal(t, model.ErrInvalidFormat, model.KindOf(err))
	assert.Equal(t, "invalid_format", model.KindName(err))

	wrapped := fmt.Errorf("decode: %w", err)
	assert.Equal(t, "invalid_format", model.KindName(wrapped))

	assert.Equal(t, model.ErrMalformedCode, model.KindOf(fmt.Errorf("plain: %w", model.ErrMalformedCode)))
}
