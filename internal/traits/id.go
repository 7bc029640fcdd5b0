package traits

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTraitID reports a trait identifier that does not follow the
// <namespace>.<category>.<Name> or <namespace>.<category>.<Name>.v<major> form.
var ErrInvalidTraitID = errors.New("invalid trait identifier")

// TraitID identifies a trait type. The version part is optional on
// lookup: a zero Version means "any version", resolved to the highest
// one available.
type TraitID struct {
	Namespace string
	Category  string
	Name      string
	Version   int
}

// ParseTraitID parses an identifier string such as
// "loom.2d.PixelBased.v1" or the version-agnostic "loom.2d.PixelBased".
func ParseTraitID(raw string) (TraitID, error) {
	parts := strings.Split(strings.TrimSpace(raw), ".")
	if len(parts) != 3 && len(parts) != 4 {
		return TraitID{}, fmt.Errorf("%w: %q", ErrInvalidTraitID, raw)
	}
	id := TraitID{Namespace: parts[0], Category: parts[1], Name: parts[2]}
	if id.Namespace == "" || id.Category == "" || id.Name == "" {
		return TraitID{}, fmt.Errorf("%w: %q", ErrInvalidTraitID, raw)
	}
	if len(parts) == 4 {
		version, ok := parseVersion(parts[3])
		if !ok {
			return TraitID{}, fmt.Errorf("%w: %q", ErrInvalidTraitID, raw)
		}
		id.Version = version
	}
	return id, nil
}

// MustParseTraitID parses an identifier and panics on malformed input.
// Intended for package-level trait identifier declarations.
func MustParseTraitID(raw string) TraitID {
	id, err := ParseTraitID(raw)
	if err != nil {
		panic(err)
	}
	return id
}

func parseVersion(part string) (int, bool) {
	if len(part) < 2 || part[0] != 'v' {
		return 0, false
	}
	version, err := strconv.Atoi(part[1:])
	if err != nil || version < 1 {
		return 0, false
	}
	return version, true
}

// String renders the fully qualified identifier, omitting the version
// suffix when the ID is version-agnostic.
func (id TraitID) String() string {
	if !id.Versioned() {
		return id.Family()
	}
	return id.Family() + ".v" + strconv.Itoa(id.Version)
}

// Family returns the version-agnostic prefix used for identity within a
// representation: at most one trait per family may be present.
func (id TraitID) Family() string {
	return id.Namespace + "." + id.Category + "." + id.Name
}

// Versioned reports whether the identifier pins a concrete version.
func (id TraitID) Versioned() bool {
	return id.Version > 0
}

// IsZero reports whether the identifier is empty.
func (id TraitID) IsZero() bool {
	return id == TraitID{}
}
