package traits

import (
	"strings"
	"testing"
)

func sequenceFiles(start, end int) FileLocations {
	var locations FileLocations
	for frame := start; frame <= end; frame++ {
		locations.FilePaths = append(locations.FilePaths, FileLocation{
			FilePath: "/renders/shot010." + padFrame(frame) + ".exr",
			FileSize: 1024,
		})
	}
	return locations
}

func padFrame(frame int) string {
	digits := []byte{'0', '0', '0', '0'}
	for i := 3; i >= 0 && frame > 0; i-- {
		digits[i] = byte('0' + frame%10)
		frame /= 10
	}
	return string(digits)
}

func TestFileLocationsEmptyList(t *testing.T) {
	rep := NewRepresentation("seq", FileLocations{})
	err := rep.Validate()
	if err == nil || !strings.Contains(err.Error(), "empty list") {
		t.Fatalf("expected empty list failure, got %v", err)
	}
}

func TestFileLocationsMatchFrameRange(t *testing.T) {
	rep := NewRepresentation("seq",
		sequenceFiles(1001, 1010),
		FrameRanged{FrameStart: 1001, FrameEnd: 1010},
	)
	if err := rep.Validate(); err != nil {
		t.Fatalf("valid sequence failed validation: %v", err)
	}
}

func TestFileLocationsCountMismatch(t *testing.T) {
	rep := NewRepresentation("seq",
		sequenceFiles(1001, 1005),
		FrameRanged{FrameStart: 1001, FrameEnd: 1010},
	)
	err := rep.Validate()
	if err == nil || !strings.Contains(err.Error(), "does not match frame range") {
		t.Fatalf("expected frame count failure, got %v", err)
	}
}

func TestFileLocationsShiftedRange(t *testing.T) {
	rep := NewRepresentation("seq",
		sequenceFiles(1002, 1011),
		FrameRanged{FrameStart: 1001, FrameEnd: 1010},
	)
	err := rep.Validate()
	if err == nil || !strings.Contains(err.Error(), "in files does not match frame range") {
		t.Fatalf("expected frame bounds failure, got %v", err)
	}
}

func TestFileLocationsWithExclusiveHandles(t *testing.T) {
	// Exclusive handles extend the range by five frames on each side.
	rep := NewRepresentation("seq",
		sequenceFiles(996, 1015),
		FrameRanged{FrameStart: 1001, FrameEnd: 1010},
		Handles{FrameStartHandle: 5, FrameEndHandle: 5},
	)
	if err := rep.Validate(); err != nil {
		t.Fatalf("sequence with handles failed validation: %v", err)
	}
}

func TestFileLocationsWithInclusiveHandles(t *testing.T) {
	// Inclusive handles are already inside the declared range.
	rep := NewRepresentation("seq",
		sequenceFiles(1001, 1010),
		FrameRanged{FrameStart: 1001, FrameEnd: 1010},
		Handles{Inclusive: true, FrameStartHandle: 2, FrameEndHandle: 2},
	)
	if err := rep.Validate(); err != nil {
		t.Fatalf("sequence with inclusive handles failed validation: %v", err)
	}
}

func TestFileLocationsWithoutFrameRange(t *testing.T) {
	// Without a FrameRanged trait there is nothing to cross-check.
	rep := NewRepresentation("seq", sequenceFiles(1001, 1005))
	if err := rep.Validate(); err != nil {
		t.Fatalf("sequence without frame range failed validation: %v", err)
	}
}

func TestFileLocationValidation(t *testing.T) {
	rep := NewRepresentation("file", FileLocation{FilePath: "", FileSize: -1})
	err := rep.Validate()
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(err.Error(), "file path must not be empty") {
		t.Fatalf("missing path failure not reported: %v", err)
	}
}

func TestBundleHydrate(t *testing.T) {
	bundle := Bundle{Items: []TraitDict{
		{
			MimeTypeID.String():     {"mime_type": "image/jpeg"},
			FileLocationID.String(): {"file_path": "/path/to/file.jpg"},
		},
		{
			MimeTypeID.String():     {"mime_type": "image/png"},
			FileLocationID.String(): {"file_path": "/path/to/file.png"},
		},
	}}
	reps, err := bundle.Hydrate(Default(), "textures")
	if err != nil {
		t.Fatalf("hydrate failed: %v", err)
	}
	if len(reps) != 2 {
		t.Fatalf("unexpected representation count: %d", len(reps))
	}
	mime, err := Get[MimeType](reps[1])
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if mime.MimeType != "image/png" {
		t.Fatalf("unexpected mime type: %s", mime.MimeType)
	}
}

func TestBundleValidateUnknownTrait(t *testing.T) {
	rep := NewRepresentation("bundle", Bundle{Items: []TraitDict{
		{"studio.nope.Missing.v1": {}},
	}})
	err := rep.Validate()
	if err == nil || !strings.Contains(err.Error(), "unknown trait") {
		t.Fatalf("expected unknown trait failure, got %v", err)
	}
}
