// Package instancedata stores trait representations on a publish
// instance's data mapping under one well known key, keeping them apart
// from legacy representation lists that share the same mapping.
package instancedata

import (
	"loom/internal/traits"
)

// Key is the instance data key holding trait representations.
const Key = "representations_with_traits"

// Representations returns the trait representations stored on the
// instance data, or false when none are stored.
func Representations(data map[string]any) ([]*traits.Representation, bool) {
	value, ok := data[Key]
	if !ok {
		return nil, false
	}
	reps, ok := value.([]*traits.Representation)
	if !ok || len(reps) == 0 {
		return nil, false
	}
	return reps, true
}

// SetRepresentations replaces the trait representations stored on the
// instance data. An empty list removes the key.
func SetRepresentations(data map[string]any, reps []*traits.Representation) {
	if len(reps) == 0 {
		delete(data, Key)
		return
	}
	data[Key] = reps
}

// AddRepresentation appends one representation to the instance data,
// creating the list when absent.
func AddRepresentation(data map[string]any, rep *traits.Representation) {
	reps, _ := Representations(data)
	data[Key] = append(reps, rep)
}

// HasRepresentations reports whether the instance data carries any
// trait representations.
func HasRepresentations(data map[string]any) bool {
	_, ok := Representations(data)
	return ok
}
