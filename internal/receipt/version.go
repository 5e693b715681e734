package receipt

import (
	"github.com/rezonia/qreet/internal/model"
)

// Version is the two digit code format version: proof kind, then tax id class.
type Version struct {
	Kind  Kind
	TaxID TaxIDClass
}

// ComputeVersion derives the version from the proof kind and the tax id class.
func ComputeVersion(kind Kind, class TaxIDClass) Version {
	return Version{Kind: kind, TaxID: class}
}

// ParseVersion reads the two leading digits of a code.
func ParseVersion(s string) (Version, error) {
	if len(s) != 2 {
		return Version{}, model.NewCodeError(model.ErrInvalidFormat, "version", s, "must have 2 digits", nil)
	}
	kind, err := ParseKind(s[0])
	if err != nil {
		return Version{}, err
	}
	class, err := ParseTaxIDClass(s[1])
	if err != nil {
		return Version{}, err
	}
	return Version{Kind: kind, TaxID: class}, nil
}

func (v Version) String() string {
	return v.Kind.Digit() + v.TaxID.Digit()
}
