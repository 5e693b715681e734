// Package receipt encodes and decodes the numeric receipt code of the EET
// receipt lottery.
//
// A code is a positional run of digits:
//
//	VV M YYMMDDHHmm [TAXID] PPPPPPPPPPPPPPPPPPPP AMOUNT
//
// VV is the format version (proof kind, tax id class), M the mode,
// followed by the sale time, the optional 8-10 digit tax id, the 20 digit
// proof code and the amount in hundredths taking the rest of the string.
package receipt

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	money "github.com/rezonia/qreet/internal/decimal"
	"github.com/rezonia/qreet/internal/model"
)

const (
	timestampLayout = "0601021504"
	timestampLength = len(timestampLayout)

	// version, mode, timestamp and proof
	fixedLength = 2 + 1 + timestampLength + ProofLength
	// cents of MaxAmount
	maxAmountLength = 9

	// shortest code: no tax id and one amount digit
	MinCodeLength = fixedLength + 1
	// longest code: 10 digit tax id and the largest amount
	MaxCodeLength = fixedLength + 10 + maxAmountLength
)

// codeLengths returns the shortest and longest code of a tax id class.
func codeLengths(class TaxIDClass) (int, int) {
	return fixedLength + class.Width() + 1, fixedLength + class.Width() + maxAmountLength
}

// grammar per tax id class.
var grammars = map[TaxIDClass]*regexp.Regexp{
	TaxIDAbsent: grammarFor(0),
	TaxIDLen8:   grammarFor(8),
	TaxIDLen9:   grammarFor(9),
	TaxIDLen10:  grammarFor(10),
}

func grammarFor(taxIDWidth int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^(\d{2})(\d)(\d{%d})(\d{%d})(\d{%d})(\d+)$`,
		timestampLength, taxIDWidth, ProofLength))
}

// Receipt is the data carried by a receipt code. It is immutable once built.
type Receipt struct {
	proof     Proof
	taxID     TaxID
	mode      Mode
	timestamp time.Time
	amount    decimal.Decimal
}

// Option configures optional receipt fields.
type Option func(*Receipt)

// WithTaxID sets the taxpayer id.
func WithTaxID(t TaxID) Option {
	return func(r *Receipt) {
		r.taxID = t
	}
}

// WithMode sets the sales mode (default normal).
func WithMode(m Mode) Option {
	return func(r *Receipt) {
		r.mode = m
	}
}

// New builds a validated receipt. The timestamp is kept at minute precision.
func New(proof Proof, amount decimal.Decimal, timestamp time.Time, opts ...Option) (*Receipt, error) {
	r := &Receipt{
		proof:     proof,
		mode:      ModeNormal,
		timestamp: timestamp.Truncate(time.Minute),
		amount:    amount,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// OfFik builds a receipt from a FIK; an empty taxID means none.
func OfFik(fik, taxID string, amount decimal.Decimal, timestamp time.Time, mode Mode) (*Receipt, error) {
	proof, err := FromFik(fik)
	if err != nil {
		return nil, err
	}
	return of(proof, taxID, amount, timestamp, mode)
}

// OfBkp builds a receipt from a BKP; an empty taxID means none.
func OfBkp(bkp, taxID string, amount decimal.Decimal, timestamp time.Time, mode Mode) (*Receipt, error) {
	proof, err := FromBkp(bkp)
	if err != nil {
		return nil, err
	}
	return of(proof, taxID, amount, timestamp, mode)
}

func of(proof Proof, taxID string, amount decimal.Decimal, timestamp time.Time, mode Mode) (*Receipt, error) {
	t, err := ParseOptionalTaxID(taxID)
	if err != nil {
		return nil, err
	}
	return New(proof, amount, timestamp, WithTaxID(t), WithMode(mode))
}

// Validate checks every field can be encoded.
func (r *Receipt) Validate() error {
	if r.proof.IsZero() {
		return model.NewCodeError(model.ErrInvalidFormat, "proof", nil, "FIK or BKP is required", nil)
	}
	if !r.proof.kind.valid() || len(r.proof.digits) != ProofLength {
		return model.NewCodeError(model.ErrInvalidFormat, "proof", r.proof.digits, "malformed proof code", nil)
	}
	if !r.mode.valid() {
		return model.NewCodeError(model.ErrInvalidFormat, "mode", int(r.mode), "unknown mode", nil)
	}
	if r.timestamp.IsZero() {
		return model.NewCodeError(model.ErrInvalidFormat, "timestamp", nil, "sale time is required", nil)
	}
	if y := r.timestamp.Year(); y < 2000 || y > 2099 {
		return model.NewCodeError(model.ErrInvalidFormat, "timestamp", y, "year must be within 2000-2099", nil)
	}
	return validateAmount(r.amount)
}

func validateAmount(amount decimal.Decimal) error {
	if !money.InRange(amount) {
		if !money.IsPositive(amount) {
			return model.NewCodeError(model.ErrInvalidAmount, "amount", amount.String(), "must be greater than zero", nil)
		}
		return model.NewCodeError(model.ErrInvalidAmount, "amount", amount.String(), "must not exceed "+money.Format(money.MaxAmount), nil)
	}
	if !money.HasScale(amount) {
		return model.NewCodeError(model.ErrInvalidAmount, "amount", amount.String(), "at most 2 fractional digits", nil)
	}
	return nil
}

// Proof returns the proof code.
func (r *Receipt) Proof() Proof { return r.proof }

// TaxID returns the taxpayer id, possibly absent.
func (r *Receipt) TaxID() TaxID { return r.taxID }

// Mode returns the sales mode.
func (r *Receipt) Mode() Mode { return r.mode }

// Timestamp returns the sale time at minute precision.
func (r *Receipt) Timestamp() time.Time { return r.timestamp }

// Amount returns the total amount.
func (r *Receipt) Amount() decimal.Decimal { return r.amount }

// Version returns the format version derived from the proof kind and tax id.
func (r *Receipt) Version() Version {
	return ComputeVersion(r.proof.kind, r.taxID.Class())
}

// Encode renders the receipt code.
func (r *Receipt) Encode() (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(MaxCodeLength)
	sb.WriteString(r.Version().String())
	sb.WriteString(r.mode.QRValue())
	sb.WriteString(r.timestamp.Format(timestampLayout))
	sb.WriteString(r.taxID.QRValue())
	sb.WriteString(r.proof.QRValue())
	sb.WriteString(money.ToCents(r.amount))
	return sb.String(), nil
}

// String returns the receipt code, or "" when the receipt cannot be encoded.
func (r *Receipt) String() string {
	code, err := r.Encode()
	if err != nil {
		return ""
	}
	return code
}

// Decode parses a receipt code. The version's tax id class selects how many
// digits follow the timestamp and bounds the length of the code.
func Decode(code string) (*Receipt, error) {
	if len(code) < MinCodeLength || len(code) > MaxCodeLength || !isDigits(code) {
		return nil, model.NewCodeError(model.ErrMalformedCode, "code", code,
			fmt.Sprintf("must be %d-%d decimal digits", MinCodeLength, MaxCodeLength), nil)
	}

	version, err := ParseVersion(code[:2])
	if err != nil {
		return nil, err
	}

	shortest, longest := codeLengths(version.TaxID)
	if len(code) < shortest {
		return nil, model.NewCodeError(model.ErrMalformedCode, "code", code,
			fmt.Sprintf("version %s needs at least %d digits", version, shortest), nil)
	}
	if len(code) > longest {
		return nil, model.NewCodeError(model.ErrVersionMismatch, "code", code,
			fmt.Sprintf("version %s allows at most %d digits, the amount would not fit", version, longest), nil)
	}

	m := grammars[version.TaxID].FindStringSubmatch(code)
	if m == nil {
		return nil, model.NewCodeError(model.ErrMalformedCode, "code", code, "does not match the code grammar", nil)
	}

	mode, err := ParseMode(m[2][0])
	if err != nil {
		return nil, err
	}

	timestamp, err := time.Parse("20"+timestampLayout, "20"+m[3])
	if err != nil {
		return nil, model.NewCodeError(model.ErrInvalidFormat, "timestamp", m[3], "not a valid YYMMDDHHmm time", err)
	}

	var taxID TaxID
	if version.TaxID != TaxIDAbsent {
		if taxID, err = ParseTaxID(m[4]); err != nil {
			return nil, err
		}
	}

	proof, err := DecodeProof(version.Kind, m[5])
	if err != nil {
		return nil, err
	}

	amount, err := money.FromCents(m[6])
	if err != nil {
		return nil, model.NewCodeError(model.ErrInvalidAmount, "amount", m[6], "not a number", err)
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	return &Receipt{
		proof:     proof,
		taxID:     taxID,
		mode:      mode,
		timestamp: timestamp,
		amount:    amount,
	}, nil
}
