package server

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/qreet/internal/receipt"
)

// EncodeRequest is the body of the encode endpoint. Exactly one of Fik and Bkp is set.
type EncodeRequest struct {
	Fik    string          `json:"fik,omitempty"`
	Bkp    string          `json:"bkp,omitempty"`
	TaxID  string          `json:"tax_id,omitempty"`
	Amount decimal.Decimal `json:"amount"`
	Time   string          `json:"time"`
	Mode   receipt.Mode    `json:"mode"`
}

// EncodeResponse is the response for the encode endpoint.
type EncodeResponse struct {
	Code    string `json:"code"`
	Version string `json:"version"`
}

// DecodeRequest is the body of the decode endpoint.
type DecodeRequest struct {
	Code string `json:"code"`
}

// ReceiptResponse is a decoded receipt.
type ReceiptResponse struct {
	Code        string       `json:"code"`
	Version     string       `json:"version"`
	Kind        string       `json:"kind"`
	Proof       string       `json:"proof"`
	ProofDigits string       `json:"proof_digits"`
	TaxID       string       `json:"tax_id,omitempty"`
	Mode        receipt.Mode `json:"mode"`
	Time        string       `json:"time"`
	Amount      string       `json:"amount"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Details string `json:"details,omitempty"`
}
