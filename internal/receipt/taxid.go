package receipt

import (
	"regexp"
	"strings"

	"github.com/rezonia/qreet/internal/model"
)

// TaxIDClass is the tax id length class encoded in the second version digit.
type TaxIDClass int

const (
	TaxIDAbsent TaxIDClass = 1
	TaxIDLen8   TaxIDClass = 2
	TaxIDLen9   TaxIDClass = 3
	TaxIDLen10  TaxIDClass = 4
)

var taxIDPattern = regexp.MustCompile(`^(?:CZ)?(\d{8,10})$`)

// Digit returns the version digit of the class.
func (c TaxIDClass) Digit() string {
	switch c {
	case TaxIDAbsent:
		return "1"
	case TaxIDLen8:
		return "2"
	case TaxIDLen9:
		return "3"
	case TaxIDLen10:
		return "4"
	default:
		return ""
	}
}

// Width returns how many digits the tax id occupies in the code.
func (c TaxIDClass) Width() int {
	switch c {
	case TaxIDLen8:
		return 8
	case TaxIDLen9:
		return 9
	case TaxIDLen10:
		return 10
	default:
		return 0
	}
}

// ParseTaxIDClass reads the class from its version digit.
// Digits 5-9 are reserved for future use.
func ParseTaxIDClass(c byte) (TaxIDClass, error) {
	switch {
	case c >= '1' && c <= '4':
		return TaxIDClass(c - '0'), nil
	case c >= '5' && c <= '9':
		return 0, model.NewCodeError(model.ErrUnsupportedKind, "version", string(c), "tax id class digit is reserved", nil)
	default:
		return 0, model.NewCodeError(model.ErrInvalidFormat, "version", string(c), "tax id class digit must be 1-4", nil)
	}
}

func classOfWidth(n int) TaxIDClass {
	switch n {
	case 8:
		return TaxIDLen8
	case 9:
		return TaxIDLen9
	case 10:
		return TaxIDLen10
	default:
		return TaxIDAbsent
	}
}

// TaxID is the optional taxpayer id (DIČ). The zero value is absent.
type TaxID struct {
	digits string
}

// NoTaxID is the absent tax id.
var NoTaxID = TaxID{}

// ParseTaxID parses 8-10 digits with an optional "CZ" prefix (any case).
func ParseTaxID(raw string) (TaxID, error) {
	m := taxIDPattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(raw)))
	if m == nil {
		return NoTaxID, model.NewCodeError(model.ErrInvalidFormat, "tax_id", raw, `does not match "[CZ]dddddddd[dd]"`, nil)
	}
	return TaxID{digits: m[1]}, nil
}

// ParseOptionalTaxID is ParseTaxID with an empty input meaning absent.
func ParseOptionalTaxID(raw string) (TaxID, error) {
	if strings.TrimSpace(raw) == "" {
		return NoTaxID, nil
	}
	return ParseTaxID(raw)
}

// IsPresent reports whether a tax id is set.
func (t TaxID) IsPresent() bool {
	return t.digits != ""
}

// Class returns the length class.
func (t TaxID) Class() TaxIDClass {
	return classOfWidth(len(t.digits))
}

// QRValue returns the digits without prefix, or "" when absent.
func (t TaxID) QRValue() string {
	return t.digits
}

func (t TaxID) String() string {
	if !t.IsPresent() {
		return ""
	}
	return "CZ" + t.digits
}
