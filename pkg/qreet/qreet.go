// Package qreet provides a public API for the EET receipt lottery code.
//
// The code is a run of digits carrying the receipt's proof code (FIK or BKP),
// the optional taxpayer id, the sales mode, the sale time and the amount.
// It is usually printed on the receipt as a QR symbol.
//
// Example usage:
//
//	r, err := qreet.OfBkp("6455B192-D697186A-6AB1971A-1E9B146B-CDD5007B", "CZ7900110063",
//	    decimal.RequireFromString("34113.00"), saleTime, qreet.ModeNormal)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	code, _ := qreet.Encode(r) // "24017050614017900110063168333761836002264103411300"
package qreet

import (
	"github.com/rezonia/qreet/internal/model"
	"github.com/rezonia/qreet/internal/receipt"
)

// Re-export core types for public API.
type (
	Receipt    = receipt.Receipt
	Option     = receipt.Option
	Proof      = receipt.Proof
	Kind       = receipt.Kind
	TaxID      = receipt.TaxID
	TaxIDClass = receipt.TaxIDClass
	Mode       = receipt.Mode
	Version    = receipt.Version
)

// Re-export proof kinds.
const (
	KindFik = receipt.KindFik
	KindBkp = receipt.KindBkp
)

// Re-export modes.
const (
	ModeNormal     = receipt.ModeNormal
	ModeSimplified = receipt.ModeSimplified
)

// Re-export tax id classes.
const (
	TaxIDAbsent = receipt.TaxIDAbsent
	TaxIDLen8   = receipt.TaxIDLen8
	TaxIDLen9   = receipt.TaxIDLen9
	TaxIDLen10  = receipt.TaxIDLen10
)

// Re-export error types.
type CodeError = model.CodeError

// Re-export error kinds.
var (
	ErrMalformedHex     = model.ErrMalformedHex
	ErrMalformedDecimal = model.ErrMalformedDecimal
	ErrInvalidFormat    = model.ErrInvalidFormat
	ErrUnsupportedKind  = model.ErrUnsupportedKind
	ErrInvalidLength    = model.ErrInvalidLength
	ErrInvalidAmount    = model.ErrInvalidAmount
	ErrVersionMismatch  = model.ErrVersionMismatch
	ErrMalformedCode    = model.ErrMalformedCode
)

// Re-export constructors.
var (
	New                = receipt.New
	OfFik              = receipt.OfFik
	OfBkp              = receipt.OfBkp
	WithTaxID          = receipt.WithTaxID
	WithMode           = receipt.WithMode
	FromFik            = receipt.FromFik
	FromBkp            = receipt.FromBkp
	DecodeProof        = receipt.DecodeProof
	ParseTaxID         = receipt.ParseTaxID
	ParseOptionalTaxID = receipt.ParseOptionalTaxID
	ParseModeName      = receipt.ParseModeName
	ParseSaleTime      = receipt.ParseSaleTime
)
