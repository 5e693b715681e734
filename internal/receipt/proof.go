package receipt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rezonia/qreet/internal/hexgroup"
	"github.com/rezonia/qreet/internal/model"
)

// Kind tells which proof code a receipt carries.
type Kind int

const (
	KindFik Kind = 1 // fiscal identification code issued by the tax authority
	KindBkp Kind = 2 // taxpayer security code, used when the authority was unreachable
)

// ProofLength is the number of decimal digits a proof code occupies in the receipt code.
const ProofLength = 20

var (
	fikPattern = regexp.MustCompile(`^([0-9A-F]{8})-([0-9A-F]{4})-([0-9A-F]{4})(?:-[0-9A-F]{4}-[0-9A-F]{12}-[0-9A-F]{2})?$`)
	bkpPattern = regexp.MustCompile(`^([0-9A-F]{8})-([0-9A-F]{8})(?:-[0-9A-F]{8}-[0-9A-F]{8}-[0-9A-F]{8})?$`)
)

// decimal group widths per kind, left to right.
var groupWidths = map[Kind][]int{
	KindFik: {hexgroup.LongWidth, hexgroup.ShortWidth, hexgroup.ShortWidth},
	KindBkp: {hexgroup.LongWidth, hexgroup.LongWidth},
}

func (k Kind) valid() bool {
	return k == KindFik || k == KindBkp
}

// Digit returns the version digit of the kind.
func (k Kind) Digit() string {
	switch k {
	case KindFik:
		return "1"
	case KindBkp:
		return "2"
	default:
		return ""
	}
}

func (k Kind) String() string {
	switch k {
	case KindFik:
		return "FIK"
	case KindBkp:
		return "BKP"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind reads a kind from its version digit.
func ParseKind(c byte) (Kind, error) {
	switch c {
	case '1':
		return KindFik, nil
	case '2':
		return KindBkp, nil
	default:
		return 0, model.NewCodeError(model.ErrUnsupportedKind, "version", string(c), "proof kind digit must be 1 (FIK) or 2 (BKP)", nil)
	}
}

// Proof is a FIK or BKP packed into 20 decimal digits.
type Proof struct {
	kind   Kind
	digits string
}

// FromFik packs the first three groups of a FIK ("xxxxxxxx-xxxx-xxxx[-xxxx-xxxxxxxxxxxx-xx]").
func FromFik(fik string) (Proof, error) {
	return fromHex(KindFik, fik, fikPattern, "xxxxxxxx-xxxx-xxxx[-xxxx-xxxxxxxxxxxx-xx]")
}

// FromBkp packs the first two groups of a BKP ("xxxxxxxx-xxxxxxxx[-xxxxxxxx-xxxxxxxx-xxxxxxxx]").
func FromBkp(bkp string) (Proof, error) {
	return fromHex(KindBkp, bkp, bkpPattern, "xxxxxxxx-xxxxxxxx[-xxxxxxxx-xxxxxxxx-xxxxxxxx]")
}

func fromHex(kind Kind, raw string, pattern *regexp.Regexp, shape string) (Proof, error) {
	field := strings.ToLower(kind.String())
	m := pattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(raw)))
	if m == nil {
		return Proof{}, model.NewCodeError(model.ErrInvalidFormat, field, raw, "does not match "+shape, nil)
	}

	var sb strings.Builder
	for i, width := range groupWidths[kind] {
		group, err := hexgroup.Encode(m[i+1], width)
		if err != nil {
			return Proof{}, model.NewCodeError(model.ErrInvalidFormat, field, raw, "cannot pack group", err)
		}
		sb.WriteString(group)
	}
	return Proof{kind: kind, digits: sb.String()}, nil
}

// DecodeFik rebuilds a FIK proof from its 10/5/5 digit form.
func DecodeFik(digits string) (Proof, error) {
	return DecodeProof(KindFik, digits)
}

// DecodeBkp rebuilds a BKP proof from its 10/10 digit form.
func DecodeBkp(digits string) (Proof, error) {
	return DecodeProof(KindBkp, digits)
}

// DecodeProof rebuilds a proof of the given kind from its 20 digit form.
// Every group must hold a value that fits its hex width.
func DecodeProof(kind Kind, digits string) (Proof, error) {
	if !kind.valid() {
		return Proof{}, model.NewCodeError(model.ErrUnsupportedKind, "proof", int(kind), "unknown proof kind", nil)
	}
	field := strings.ToLower(kind.String())
	if len(digits) != ProofLength {
		return Proof{}, model.NewCodeError(model.ErrInvalidLength, field, digits,
			fmt.Sprintf("must have %d digits, got %d", ProofLength, len(digits)), nil)
	}
	if !isDigits(digits) {
		return Proof{}, model.NewCodeError(model.ErrInvalidFormat, field, digits, "must contain decimal digits only", nil)
	}

	if _, err := splitHex(kind, digits); err != nil {
		return Proof{}, model.NewCodeError(model.ErrInvalidFormat, field, digits, "group out of range", err)
	}
	return Proof{kind: kind, digits: digits}, nil
}

// splitHex decodes each decimal group back to zero-padded hex.
func splitHex(kind Kind, digits string) ([]string, error) {
	widths := groupWidths[kind]
	groups := make([]string, 0, len(widths))
	pos := 0
	for _, width := range widths {
		hex, err := hexgroup.DecodePadded(digits[pos : pos+width])
		if err != nil {
			return nil, err
		}
		groups = append(groups, hex)
		pos += width
	}
	return groups, nil
}

// Kind returns the proof kind.
func (p Proof) Kind() Kind {
	return p.kind
}

// QRValue returns the 20 digit form carried in the receipt code.
func (p Proof) QRValue() string {
	return p.digits
}

// IsZero reports whether p was never constructed.
func (p Proof) IsZero() bool {
	return p.kind == 0 && p.digits == ""
}

// Hex returns the meaningful hex prefix: lowercase 8-4-4 for a FIK, uppercase 8-8 for a BKP.
func (p Proof) Hex() string {
	if p.IsZero() {
		return ""
	}
	groups, err := splitHex(p.kind, p.digits)
	if err != nil {
		return ""
	}
	hex := strings.Join(groups, "-")
	if p.kind == KindBkp {
		return strings.ToUpper(hex)
	}
	return hex
}

func (p Proof) String() string {
	return p.Hex()
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
