package traits

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// MimeTypeID identifies the MimeType trait.
	MimeTypeID = MustParseTraitID("loom.content.MimeType.v1")
	// LocatableContentID identifies the LocatableContent trait.
	LocatableContentID = MustParseTraitID("loom.content.LocatableContent.v1")
	// FileLocationID identifies the FileLocation trait.
	FileLocationID = MustParseTraitID("loom.content.FileLocation.v1")
	// FileLocationsID identifies the FileLocations trait.
	FileLocationsID = MustParseTraitID("loom.content.FileLocations.v1")
	// RootlessLocationID identifies the RootlessLocation trait.
	RootlessLocationID = MustParseTraitID("loom.content.RootlessLocation.v1")
	// CompressedID identifies the Compressed trait.
	CompressedID = MustParseTraitID("loom.content.Compressed.v1")
	// BundleID identifies the Bundle trait.
	BundleID = MustParseTraitID("loom.content.Bundle.v1")
	// FragmentID identifies the Fragment trait.
	FragmentID = MustParseTraitID("loom.content.Fragment.v1")
)

// MimeType describes the content type regardless of file extension,
// e.g. "image/jpeg". See RFC 2046.
type MimeType struct {
	MimeType string `json:"mime_type"`
}

func (MimeType) ID() TraitID { return MimeTypeID }
func (MimeType) TraitName() string { return "MimeType" }
func (MimeType) Description() string { return "IANA media type of the content" }
func (MimeType) Persistent() bool { return true }

// Validate requires a non-empty mime type value.
func (t MimeType) Validate(*Representation) error {
	if t.MimeType == "" {
		return errors.New("mime type must not be empty")
	}
	return nil
}

// LocatableContent is content with a location that is not necessarily a
// file: a URL or any other addressable source.
type LocatableContent struct {
	Location    string `json:"location"`
	IsTemplated bool   `json:"is_templated,omitempty"`
}

func (LocatableContent) ID() TraitID { return LocatableContentID }
func (LocatableContent) TraitName() string { return "LocatableContent" }
func (LocatableContent) Description() string { return "content addressable by a location" }
func (LocatableContent) Persistent() bool { return true }

// FileLocation records a single file path plus optional size and hash
// metadata. The trait stores metadata only; reading the file is the
// caller's business.
type FileLocation struct {
	FilePath string `json:"file_path"`
	FileSize int64  `json:"file_size,omitempty"`
	FileHash string `json:"file_hash,omitempty"` // e.g. "sha256:<hex>"
}

func (FileLocation) ID() TraitID { return FileLocationID }
func (FileLocation) TraitName() string { return "FileLocation" }
func (FileLocation) Description() string { return "single file path with size and hash metadata" }
func (FileLocation) Persistent() bool { return true }

// Validate requires a file path and a non-negative size.
func (t FileLocation) Validate(*Representation) error {
	if t.FilePath == "" {
		return errors.New("file path must not be empty")
	}
	if t.FileSize < 0 {
		return fmt.Errorf("file size %d is negative", t.FileSize)
	}
	return nil
}

// FileLocations records a file sequence as individual locations. When
// time traits are present the file set must agree with them.
type FileLocations struct {
	FilePaths []FileLocation `json:"file_paths"`
}

func (FileLocations) ID() TraitID { return FileLocationsID }
func (FileLocations) TraitName() string { return "FileLocations" }
func (FileLocations) Description() string { return "multiple file paths forming one deliverable" }
func (FileLocations) Persistent() bool { return true }

// Validate checks the list is non-empty and, when a FrameRanged trait
// is present, that the file names cover exactly the declared frame
// range (extended by exclusive Handles, or pinned by a Sequence frame
// spec).
func (t FileLocations) Validate(rep *Representation) error {
	if len(t.FilePaths) == 0 {
		return errors.New("no file locations defined (empty list)")
	}
	if !rep.Contains(FrameRangedID) {
		return nil
	}
	return t.validateFrameRange(rep)
}

func (t FileLocations) validateFrameRange(rep *Representation) error {
	ranged, err := Get[FrameRanged](rep)
	if err != nil {
		return nil
	}

	pattern, err := sequencePattern(rep)
	if err != nil {
		// Reported by the Sequence trait's own validator.
		return nil
	}
	frames, _, err := framesFromNames(t.names(), pattern)
	if err != nil {
		return err
	}

	startHandle, endHandle := exclusiveHandles(rep)
	expectedStart := ranged.FrameStart - startHandle
	expectedEnd := ranged.FrameEnd + endHandle

	if seq, seqErr := Get[Sequence](rep); seqErr == nil && seq.FrameSpec != "" {
		expected, specErr := ParseFrameSpec(seq.FrameSpec)
		if specErr != nil {
			// Reported by the Sequence trait's own validator.
			return nil
		}
		for frame := expectedStart; frame < ranged.FrameStart; frame++ {
			expected = append(expected, frame)
		}
		for frame := ranged.FrameEnd + 1; frame <= expectedEnd; frame++ {
			expected = append(expected, frame)
		}
		expectedSet := frameSet(expected)
		if len(t.FilePaths) != len(expectedSet) {
			return fmt.Errorf(
				"number of file locations (%d) does not match frame spec frame count (%d)",
				len(t.FilePaths), len(expectedSet))
		}
		for _, frame := range frames {
			if _, ok := expectedSet[frame]; !ok {
				return fmt.Errorf("file frame %d is outside the frame spec", frame)
			}
		}
		return nil
	}

	expectedCount := expectedEnd - expectedStart + 1
	if len(t.FilePaths) != expectedCount {
		return fmt.Errorf(
			"number of file locations (%d) does not match frame range %d-%d (%d frames)",
			len(t.FilePaths), expectedStart, expectedEnd, expectedCount)
	}
	if len(frames) > 0 {
		first, last := frameBounds(frames)
		if first != expectedStart || last != expectedEnd {
			return fmt.Errorf(
				"frame range %d-%d in files does not match frame range %d-%d declared by FrameRanged",
				first, last, expectedStart, expectedEnd)
		}
	}
	return nil
}

// FileLocationForFrame returns the file location carrying the given
// frame number, or false when no file name matches it. The sequence's
// frame regex selects the frame number in the name, falling back to
// the default trailing frame number rule.
func (t FileLocations) FileLocationForFrame(frame int, seq Sequence) (FileLocation, bool) {
	pattern, err := seq.compiledRegex()
	if err != nil {
		return FileLocation{}, false
	}
	if pattern == nil {
		pattern = defaultFramePattern
	}
	index := pattern.SubexpIndex("index")
	if index < 0 {
		return FileLocation{}, false
	}
	for _, location := range t.FilePaths {
		match := pattern.FindStringSubmatch(location.FilePath)
		if match == nil {
			continue
		}
		if parsed, err := strconv.Atoi(match[index]); err == nil && parsed == frame {
			return location, true
		}
	}
	return FileLocation{}, false
}

func (t FileLocations) names() []string {
	names := make([]string, 0, len(t.FilePaths))
	for _, location := range t.FilePaths {
		names = append(names, location.FilePath)
	}
	return names
}

// sequencePattern returns the compiled frame regex of a present
// Sequence trait, or nil for the default pattern.
func sequencePattern(rep *Representation) (*regexp.Regexp, error) {
	seq, err := Get[Sequence](rep)
	if err != nil || seq.FrameRegex == "" {
		return nil, nil
	}
	return regexp.Compile(seq.FrameRegex)
}

// exclusiveHandles returns the handle frame counts to add outside the
// frame range. Inclusive handles are already counted inside the range.
func exclusiveHandles(rep *Representation) (start, end int) {
	handles, err := Get[Handles](rep)
	if err != nil || handles.Inclusive {
		return 0, 0
	}
	return handles.FrameStartHandle, handles.FrameEndHandle
}

// RootlessLocation is a path without a concrete root, portable across
// platforms and site setups. The root is resolved by the pipeline,
// e.g. "{root[work]}/project/asset/asset.jpg".
type RootlessLocation struct {
	RootlessPath string `json:"rootless_path"`
}

func (RootlessLocation) ID() TraitID { return RootlessLocationID }
func (RootlessLocation) TraitName() string { return "RootlessLocation" }
func (RootlessLocation) Description() string { return "file path with an unresolved root" }
func (RootlessLocation) Persistent() bool { return true }

// Compressed marks content as compressed and names the compression.
type Compressed struct {
	CompressionType string `json:"compression_type"`
}

func (Compressed) ID() TraitID { return CompressedID }
func (Compressed) TraitName() string { return "Compressed" }
func (Compressed) Description() string { return "compressed content" }
func (Compressed) Persistent() bool { return true }

// TraitDict is the serialized trait mapping of one representation:
// fully versioned identifier to field values.
type TraitDict = map[string]map[string]any

// Bundle groups independent sets of traits that belong together as one
// entity, each item describing one sub-representation in serialized
// form.
type Bundle struct {
	Items []TraitDict `json:"items"`
}

func (Bundle) ID() TraitID { return BundleID }
func (Bundle) TraitName() string { return "Bundle" }
func (Bundle) Description() string { return "bundled sets of traits forming one entity" }
func (Bundle) Persistent() bool { return true }

// Validate requires at least one bundled item and resolvable trait
// identifiers in every item.
func (t Bundle) Validate(*Representation) error {
	if len(t.Items) == 0 {
		return errors.New("bundle has no items")
	}
	for i, item := range t.Items {
		for key := range item {
			if _, err := Default().ResolveString(key); err != nil {
				return fmt.Errorf("bundle item %d: %w", i, err)
			}
		}
	}
	return nil
}

// Hydrate reconstructs every bundled item as its own representation
// named after the owning representation.
func (t Bundle) Hydrate(reg *Registry, baseName string) ([]*Representation, error) {
	reps := make([]*Representation, 0, len(t.Items))
	for i, item := range t.Items {
		rep, err := reg.FromDict(fmt.Sprintf("%s.bundle%d", baseName, i), "", item)
		if err != nil {
			return nil, fmt.Errorf("bundle item %d: %w", i, err)
		}
		reps = append(reps, rep)
	}
	return reps, nil
}

// Fragment marks a representation as part of a larger entity owned by
// the parent representation.
type Fragment struct {
	Parent string `json:"parent"` // parent representation id
}

func (Fragment) ID() TraitID { return FragmentID }
func (Fragment) TraitName() string { return "Fragment" }
func (Fragment) Description() string { return "part of a larger entity" }
func (Fragment) Persistent() bool { return true }

// Validate requires a parent representation id.
func (t Fragment) Validate(*Representation) error {
	if t.Parent == "" {
		return errors.New("parent representation id must not be empty")
	}
	return nil
}
