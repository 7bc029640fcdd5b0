package main

import (
	"encoding/json"
	"fmt"
	"os"

	"loom/internal/fileutil"
	"loom/internal/traits"
)

// manifest is the on-disk JSON form of one representation: its name,
// identifier and serialized traits keyed by versioned trait id.
type manifest struct {
	Name   string           `json:"name"`
	ID     string           `json:"id,omitempty"`
	Traits traits.TraitDict `json:"traits"`
}

// loadManifest reads a manifest file and reconstructs its
// representation through the default registry.
func loadManifest(path string) (*traits.Representation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("manifest %s has no representation name", path)
	}
	rep, err := traits.FromDict(m.Name, m.ID, m.Traits)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return rep, nil
}

// saveManifest serializes the representation and writes it under a
// file lock so concurrent pipeline processes never read a torn file.
func saveManifest(path string, rep *traits.Representation) error {
	dict, err := rep.TraitsAsDict()
	if err != nil {
		return err
	}
	m := manifest{Name: rep.Name(), ID: rep.ID(), Traits: dict}
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return fileutil.WriteFileLocked(path, append(raw, '\n'))
}
