package traits

// Trait is a single typed fact attached to a representation. Concrete
// trait types are plain structs with JSON-tagged fields; field values
// are structured data only (numbers, strings, booleans, paths, maps,
// slices) with no references back to the owning representation.
//
// Implementations use value receivers so that trait values compare and
// serialize without pointer identity getting in the way.
type Trait interface {
	// ID returns the fully versioned trait identifier.
	ID() TraitID
	// TraitName returns the human readable trait name.
	TraitName() string
	// Description returns a short human readable description.
	Description() string
	// Persistent reports whether the trait survives to permanently
	// stored representations. Publish-time-only traits return false.
	// The storage integrator applies the filter; this package never
	// drops transient traits on its own.
	Persistent() bool
}

// Validator is implemented by traits that check their own fields or
// their relationship to sibling traits. Validate receives the owning
// representation for read-only access and must not mutate it; the
// representation invokes validators in unspecified order and the result
// must not depend on ordering.
type Validator interface {
	Validate(rep *Representation) error
}
