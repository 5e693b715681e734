package model

import (
	"errors"
	"fmt"
)

// Error kinds reported by the receipt code codec. Match them with errors.Is.
var (
	ErrMalformedHex     = errors.New("malformed hex")
	ErrMalformedDecimal = errors.New("malformed decimal")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrUnsupportedKind  = errors.New("unsupported kind")
	ErrInvalidLength    = errors.New("invalid length")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrVersionMismatch  = errors.New("version mismatch")
	ErrMalformedCode    = errors.New("malformed code")
)

// Kinds lists every error kind in a stable order.
var Kinds = []error{
	ErrMalformedHex,
	ErrMalformedDecimal,
	ErrInvalidFormat,
	ErrUnsupportedKind,
	ErrInvalidLength,
	ErrInvalidAmount,
	ErrVersionMismatch,
	ErrMalformedCode,
}

// CodeError represents a rejected field with its error kind.
type CodeError struct {
	Kind    error
	Field   string
	Value   interface{}
	Message string
	Cause   error
}

func (e *CodeError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	if e.Value != nil {
		msg = fmt.Sprintf("%s (value=%v)", msg, e.Value)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, e.Cause)
	}
	return msg
}

func (e *CodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the kind of this error.
func (e *CodeError) Is(target error) bool {
	return e.Kind == target
}

// NewCodeError creates a new code error.
func NewCodeError(kind error, field string, value interface{}, message string, cause error) *CodeError {
	return &CodeError{
		Kind:    kind,
		Field:   field,
		Value:   value,
		Message: message,
		Cause:   cause,
	}
}

// KindOf returns the kind of the outermost codec error in err's chain, or nil when there is none.
func KindOf(err error) error {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Kind
	}
	for _, k := range Kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// KindName returns a short machine name for the kind of err ("invalid_amount"), or "" for foreign errors.
func KindName(err error) string {
	switch KindOf(err) {
	case ErrMalformedHex:
		return "malformed_hex"
	case ErrMalformedDecimal:
		return "malformed_decimal"
	case ErrInvalidFormat:
		return "invalid_format"
	case ErrUnsupportedKind:
		return "unsupported_kind"
	case ErrInvalidLength:
		return "invalid_length"
	case ErrInvalidAmount:
		return "invalid_amount"
	case ErrVersionMismatch:
		return "version_mismatch"
	case ErrMalformedCode:
		return "malformed_code"
	default:
		return ""
	}
}
