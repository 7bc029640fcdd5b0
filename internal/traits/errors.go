package traits

import (
	"fmt"
	"strings"
)

// UnknownTraitError reports an identifier that cannot be resolved
// against the registry. Fatal to the operation that triggered it:
// a representation with unknown traits is structurally invalid for the
// consuming context.
type UnknownTraitError struct {
	ID string
}

func (e *UnknownTraitError) Error() string {
	return fmt.Sprintf("unknown trait %q", e.ID)
}

// MissingTraitError reports a strict single-trait lookup that found no
// match. Callers implement "trait isn't set" branches by checking for
// it with errors.As.
type MissingTraitError struct {
	ID             string
	Representation string
}

func (e *MissingTraitError) Error() string {
	if e.Representation == "" {
		return fmt.Sprintf("trait %q not present", e.ID)
	}
	return fmt.Sprintf("trait %q not present in representation %q", e.ID, e.Representation)
}

// DuplicateTraitError reports a registry collision: the same fully
// versioned identifier registered by two different trait types.
// Re-registering the identical type is not an error.
type DuplicateTraitError struct {
	ID string
}

func (e *DuplicateTraitError) Error() string {
	return fmt.Sprintf("trait %q already registered by a different type", e.ID)
}

// TraitValidationError aggregates every per-trait validation failure
// found in one representation. Validation deliberately collects all
// problems before reporting so that artists see the complete list at
// once instead of fixing issues one retry at a time.
type TraitValidationError struct {
	Representation string
	Problems       []string
}

func (e *TraitValidationError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("representation %q invalid: %s", e.Representation, e.Problems[0])
	}
	return fmt.Sprintf(
		"representation %q invalid (%d problems):\n  %s",
		e.Representation, len(e.Problems), strings.Join(e.Problems, "\n  "))
}
