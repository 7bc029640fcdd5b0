package traits

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Representation is a named, uniquely identified collection of traits
// describing one concrete deliverable artifact.
//
// Within one representation at most one trait per family (the
// version-agnostic identity) exists; adding a trait whose family is
// already present replaces the previous instance. Producers rely on
// that to refine traits incrementally, so replacement is deliberately
// not an error.
//
// A representation exclusively owns its traits and carries no internal
// locking. Callers must not mutate shared instances concurrently.
type Representation struct {
	name  string
	id    string
	order []string         // families in insertion order
	data  map[string]Trait // keyed by family
}

// NewRepresentation creates a representation with a freshly generated
// identifier and the given initial traits.
func NewRepresentation(name string, initial ...Trait) *Representation {
	return NewRepresentationWithID(name, "", initial...)
}

// NewRepresentationWithID creates a representation reusing an existing
// identifier, as needed when reconstructing from serialized form. An
// empty id generates a new one.
func NewRepresentationWithID(name, id string, initial ...Trait) *Representation {
	if id == "" {
		id = newRepresentationID()
	}
	rep := &Representation{
		name: name,
		id:   id,
		data: make(map[string]Trait),
	}
	rep.AddAll(initial...)
	return rep
}

func newRepresentationID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Name returns the representation name.
func (r *Representation) Name() string { return r.name }

// ID returns the representation identifier.
func (r *Representation) ID() string { return r.id }

// Len returns the number of traits.
func (r *Representation) Len() int { return len(r.data) }

// Add inserts a trait, replacing any previous trait of the same family.
func (r *Representation) Add(trait Trait) {
	family := trait.ID().Family()
	if _, ok := r.data[family]; !ok {
		r.order = append(r.order, family)
	}
	r.data[family] = trait
}

// AddAll applies Add to every trait in the order given.
func (r *Representation) AddAll(list ...Trait) {
	for _, trait := range list {
		r.Add(trait)
	}
}

// Get returns the trait matching the identifier. A version-agnostic
// identifier matches whatever version of the family is present; a
// versioned identifier additionally requires the exact version. Absent
// traits yield MissingTraitError.
func (r *Representation) Get(id TraitID) (Trait, error) {
	trait, ok := r.data[id.Family()]
	if !ok || (id.Versioned() && trait.ID().Version != id.Version) {
		return nil, &MissingTraitError{ID: id.String(), Representation: r.name}
	}
	return trait, nil
}

// GetAll returns the present traits for the given identifiers, keyed by
// their full versioned identifier string. Absent ones are silently
// omitted: batch queries are best-effort, unlike the strict Get.
func (r *Representation) GetAll(ids []TraitID) map[string]Trait {
	found := make(map[string]Trait)
	for _, id := range ids {
		if trait, err := r.Get(id); err == nil {
			found[trait.ID().String()] = trait
		}
	}
	return found
}

// Remove deletes the trait of the identifier's family. Removing an
// absent trait is a no-op.
func (r *Representation) Remove(id TraitID) {
	family := id.Family()
	if _, ok := r.data[family]; !ok {
		return
	}
	delete(r.data, family)
	for i, f := range r.order {
		if f == family {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Contains reports whether a trait matching the identifier is present.
func (r *Representation) Contains(id TraitID) bool {
	_, err := r.Get(id)
	return err == nil
}

// ContainsAll reports whether every listed trait is present. Loaders
// use this to decide applicability before touching trait accessors.
func (r *Representation) ContainsAll(ids ...TraitID) bool {
	for _, id := range ids {
		if !r.Contains(id) {
			return false
		}
	}
	return true
}

// TraitIDs returns the full identifiers of all traits in insertion
// order.
func (r *Representation) TraitIDs() []TraitID {
	ids := make([]TraitID, 0, len(r.order))
	for _, family := range r.order {
		ids = append(ids, r.data[family].ID())
	}
	return ids
}

// Traits returns all traits in insertion order.
func (r *Representation) Traits() []Trait {
	list := make([]Trait, 0, len(r.order))
	for _, family := range r.order {
		list = append(list, r.data[family])
	}
	return list
}

// Validate runs every contained trait's validator against this
// representation. All failures are collected and reported together as
// one TraitValidationError; validation never stops at the first
// problem. Validators receive read-only access and must not depend on
// the order they run in.
func (r *Representation) Validate() error {
	var problems []string
	for _, family := range r.order {
		trait := r.data[family]
		validator, ok := trait.(Validator)
		if !ok {
			continue
		}
		if err := validator.Validate(r); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", trait.TraitName(), err))
		}
	}
	if len(problems) > 0 {
		return &TraitValidationError{Representation: r.name, Problems: problems}
	}
	return nil
}

// Equal reports structural equality: same name, same identifier, same
// trait set and pairwise equal trait field values. Insertion order does
// not participate.
func (r *Representation) Equal(other *Representation) bool {
	if other == nil || r.name != other.name || r.id != other.id || len(r.data) != len(other.data) {
		return false
	}
	for family, trait := range r.data {
		otherTrait, ok := other.data[family]
		if !ok || trait.ID() != otherTrait.ID() {
			return false
		}
		equal, err := traitFieldsEqual(trait, otherTrait)
		if err != nil || !equal {
			return false
		}
	}
	return true
}

// Get returns the trait of concrete type T from the representation,
// typed. The strict counterpart of the best-effort batch query.
func Get[T Trait](rep *Representation) (T, error) {
	var zero T
	trait, err := rep.Get(Trait(zero).ID())
	if err != nil {
		return zero, err
	}
	typed, ok := trait.(T)
	if !ok {
		// Same family but a different registered type, e.g. another
		// version of the trait.
		return zero, &MissingTraitError{ID: Trait(zero).ID().String(), Representation: rep.Name()}
	}
	return typed, nil
}

// Contains reports whether a trait of concrete type T is present.
func Contains[T Trait](rep *Representation) bool {
	var zero T
	return rep.Contains(Trait(zero).ID())
}
