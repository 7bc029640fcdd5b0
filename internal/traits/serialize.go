package traits

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// TraitsAsDict serializes the representation's traits into a plain
// nested mapping: fully versioned identifier string to a mapping of the
// trait's field values. This is an in-memory structural dump: both
// persistent and transient traits are included. Filtering on the
// Persistent flag before permanent storage is the storage integrator's
// responsibility, not this method's.
func (r *Representation) TraitsAsDict() (map[string]map[string]any, error) {
	out := make(map[string]map[string]any, len(r.data))
	for _, family := range r.order {
		trait := r.data[family]
		fields, err := traitFields(trait)
		if err != nil {
			return nil, fmt.Errorf("serialize trait %s: %w", trait.ID(), err)
		}
		out[trait.ID().String()] = fields
	}
	return out, nil
}

// FromDict reconstructs a representation from serialized trait data.
// Every key is resolved through the registry, version-agnostic
// identifiers falling back to the highest registered version. An
// unresolvable key fails the whole reconstruction with
// UnknownTraitError; partially understood representations are not
// usable. An empty id generates a fresh one.
func (reg *Registry) FromDict(name, id string, data map[string]map[string]any) (*Representation, error) {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	list := make([]Trait, 0, len(keys))
	for _, key := range keys {
		traitID, err := ParseTraitID(key)
		if err != nil {
			return nil, err
		}
		trait, err := reg.decode(traitID, data[key])
		if err != nil {
			return nil, err
		}
		list = append(list, trait)
	}
	return NewRepresentationWithID(name, id, list...), nil
}

// FromDict reconstructs a representation using the default registry.
func FromDict(name, id string, data map[string]map[string]any) (*Representation, error) {
	return Default().FromDict(name, id, data)
}

// traitFields dumps a trait's typed fields into a plain mapping.
// Identifier metadata (id, name, description, persistence) is carried
// by the type, not the field values, and therefore never appears here.
func traitFields(trait Trait) (map[string]any, error) {
	raw, err := json.Marshal(trait)
	if err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func traitFieldsEqual(a, b Trait) (bool, error) {
	rawA, err := json.Marshal(a)
	if err != nil {
		return false, err
	}
	rawB, err := json.Marshal(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(rawA, rawB), nil
}
