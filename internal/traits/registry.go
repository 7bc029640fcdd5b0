package traits

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Registry is the catalog of known trait types. It resolves exact and
// version-agnostic identifiers to concrete types and constructs fresh
// instances during deserialization.
//
// A registry is populated once during host bootstrap (built-ins plus
// addon contributions) and is read-mostly afterwards. The internal lock
// keeps concurrent reads safe; serializing registration across addons
// is the host initialization sequence's responsibility.
type Registry struct {
	mu       sync.RWMutex
	exact    map[string]registryEntry   // full versioned id -> entry
	families map[string][]registryEntry // family -> entries, highest version first
}

type registryEntry struct {
	id  TraitID
	typ reflect.Type // concrete struct type of the trait
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		exact:    make(map[string]registryEntry),
		families: make(map[string][]registryEntry),
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry with all built-in trait
// types registered.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		if err := defaultRegistry.RegisterAll(Builtins()...); err != nil {
			// Built-in identifiers are declared in this package;
			// a collision here is a programming error.
			panic(err)
		}
	})
	return defaultRegistry
}

// Register adds a trait type to the catalog under its fully versioned
// identifier. Registering the same type again is a no-op; registering a
// different type under an already taken identifier returns
// DuplicateTraitError.
func (r *Registry) Register(proto Trait) error {
	id := proto.ID()
	if !id.Versioned() {
		return fmt.Errorf("%w: %q has no version", ErrInvalidTraitID, id.String())
	}
	typ := reflect.TypeOf(proto)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := id.String()
	if existing, ok := r.exact[key]; ok {
		if existing.typ == typ {
			return nil
		}
		return &DuplicateTraitError{ID: key}
	}

	entry := registryEntry{id: id, typ: typ}
	r.exact[key] = entry

	family := id.Family()
	entries := append(r.families[family], entry)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].id.Version > entries[j].id.Version
	})
	r.families[family] = entries
	return nil
}

// RegisterAll registers every prototype in order, stopping at the first
// failure. Addon registration hooks hand their contributed trait types
// to this method during initialization.
func (r *Registry) RegisterAll(protos ...Trait) error {
	for _, proto := range protos {
		if err := r.Register(proto); err != nil {
			return err
		}
	}
	return nil
}

// Resolve maps an identifier to the registered trait type, returned as
// a zero-value instance. Version-agnostic identifiers resolve to the
// highest registered version of the family. Unresolvable identifiers
// yield UnknownTraitError.
func (r *Registry) Resolve(id TraitID) (Trait, error) {
	entry, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return reflect.New(entry.typ).Elem().Interface().(Trait), nil
}

// ResolveString is Resolve for raw identifier strings, as found in
// serialized trait dictionaries.
func (r *Registry) ResolveString(raw string) (Trait, error) {
	id, err := ParseTraitID(raw)
	if err != nil {
		return nil, err
	}
	return r.Resolve(id)
}

func (r *Registry) lookup(id TraitID) (registryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if id.Versioned() {
		if entry, ok := r.exact[id.String()]; ok {
			return entry, nil
		}
		return registryEntry{}, &UnknownTraitError{ID: id.String()}
	}
	if entries := r.families[id.Family()]; len(entries) > 0 {
		return entries[0], nil
	}
	return registryEntry{}, &UnknownTraitError{ID: id.String()}
}

// decode constructs a trait of the type registered under id and fills
// its fields from the given value mapping.
func (r *Registry) decode(id TraitID, fields map[string]any) (Trait, error) {
	entry, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode fields for %s: %w", entry.id, err)
	}
	instance := reflect.New(entry.typ)
	if err := json.Unmarshal(raw, instance.Interface()); err != nil {
		return nil, fmt.Errorf("decode trait %s: %w", entry.id, err)
	}
	return instance.Elem().Interface().(Trait), nil
}

// IDs returns every registered identifier sorted by family and version.
func (r *Registry) IDs() []TraitID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]TraitID, 0, len(r.exact))
	for _, entry := range r.exact {
		ids = append(ids, entry.id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Family() != ids[j].Family() {
			return ids[i].Family() < ids[j].Family()
		}
		return ids[i].Version < ids[j].Version
	})
	return ids
}

// Register adds a trait type to the default registry. Addons call this
// from their registration hooks.
func Register(proto Trait) error {
	return Default().Register(proto)
}
