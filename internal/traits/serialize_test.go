package traits

import (
	"errors"
	"testing"
)

func TestTraitsAsDictRefImage(t *testing.T) {
	rep := refImage()
	data, err := rep.TraitsAsDict()
	if err != nil {
		t.Fatalf("TraitsAsDict failed: %v", err)
	}
	if len(data) != 5 {
		t.Fatalf("expected 5 keys, got %d: %v", len(data), data)
	}
	for _, id := range []TraitID{FileLocationID, ImageID, PixelBasedID, PersistentID, StaticID} {
		if _, ok := data[id.String()]; !ok {
			t.Fatalf("missing key %s", id)
		}
	}

	location := data[FileLocationID.String()]
	if location["file_path"] != "/foo/bar/baz.exr" {
		t.Fatalf("unexpected file_path: %v", location["file_path"])
	}
	if location["file_hash"] != "sha256:abc" {
		t.Fatalf("unexpected file_hash: %v", location["file_hash"])
	}
	if location["file_size"] != float64(1234) {
		t.Fatalf("unexpected file_size: %v", location["file_size"])
	}

	// Marker traits serialize to empty field maps, no identifier
	// metadata leaks into the values.
	if len(data[ImageID.String()]) != 0 {
		t.Fatalf("marker trait carries fields: %v", data[ImageID.String()])
	}
}

func TestTraitsAsDictIncludesTransient(t *testing.T) {
	rep := NewRepresentation("wip", Transient{}, KeepOriginalName{})
	data, err := rep.TraitsAsDict()
	if err != nil {
		t.Fatalf("TraitsAsDict failed: %v", err)
	}
	// The structural dump never filters on the Persistent flag; that
	// is the storage integrator's job.
	if len(data) != 2 {
		t.Fatalf("transient traits missing from dump: %v", data)
	}
}

func TestRoundTrip(t *testing.T) {
	rep := NewRepresentation("ref_image",
		FileLocation{FilePath: "/foo/bar/baz.exr", FileSize: 1234, FileHash: "sha256:abc"},
		Image{},
		PixelBased{DisplayWindowWidth: 1920, DisplayWindowHeight: 1080, PixelAspectRatio: 1.0},
		PersistentTrait{},
		Static{},
		FrameRanged{FrameStart: 1001, FrameEnd: 1001, FramesPerSecond: "24"},
		Tagged{Tags: []string{"review", "reference"}},
	)
	data, err := rep.TraitsAsDict()
	if err != nil {
		t.Fatalf("TraitsAsDict failed: %v", err)
	}

	back, err := FromDict(rep.Name(), rep.ID(), data)
	if err != nil {
		t.Fatalf("FromDict failed: %v", err)
	}
	if !rep.Equal(back) {
		t.Fatalf("round trip lost content:\n  have %v\n  want %v", back.TraitIDs(), rep.TraitIDs())
	}
}

func TestRoundTripFreshID(t *testing.T) {
	rep := refImage()
	data, err := rep.TraitsAsDict()
	if err != nil {
		t.Fatalf("TraitsAsDict failed: %v", err)
	}
	back, err := FromDict(rep.Name(), "", data)
	if err != nil {
		t.Fatalf("FromDict failed: %v", err)
	}
	if back.ID() == rep.ID() {
		t.Fatal("expected a fresh id when none is supplied")
	}
	// Trait content still matches.
	if !NewRepresentationWithID(rep.Name(), back.ID(), rep.Traits()...).Equal(back) {
		t.Fatal("trait content changed through round trip")
	}
}

func TestFromDictVersionAgnosticKeys(t *testing.T) {
	data := TraitDict{
		"loom.2d.PixelBased": {
			"display_window_width":  float64(1920),
			"display_window_height": float64(1080),
			"pixel_aspect_ratio":    1.0,
		},
	}
	rep, err := FromDict("plate", "", data)
	if err != nil {
		t.Fatalf("FromDict failed: %v", err)
	}
	pixels, err := Get[PixelBased](rep)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if pixels.DisplayWindowWidth != 1920 {
		t.Fatalf("unexpected width: %d", pixels.DisplayWindowWidth)
	}
}

func TestFromDictUnknownTraitIsFatal(t *testing.T) {
	data := TraitDict{
		ImageID.String():         {},
		"studio.nope.Missing.v1": {},
	}
	_, err := FromDict("plate", "", data)
	var unknown *UnknownTraitError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownTraitError, got %v", err)
	}
}
