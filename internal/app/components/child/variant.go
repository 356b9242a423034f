package child

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownVariant is returned for a variant name that is not recognised.
var ErrUnknownVariant = errors.New("unknown child variant")

// Variant selects which child component the root renders.
type Variant string

const (
	// Emitting renders Child, which reports changes to the parent.
	Emitting Variant = "emitter"
	// DisplayOnly renders Display, which only shows the parent's value.
	DisplayOnly Variant = "display"
)

// ParseVariant parses a variant name, case-insensitively.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case Emitting, DisplayOnly:
		return v, nil
	}
	return "", errors.Wrapf(ErrUnknownVariant, "%q", s)
}

// UnmarshalText lets configuration parsers decode a Variant.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Variant) String() string {
	return string(v)
}
