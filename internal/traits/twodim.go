package traits

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ImageID identifies the Image marker trait.
	ImageID = MustParseTraitID("loom.2d.Image.v1")
	// PixelBasedID identifies the PixelBased trait.
	PixelBasedID = MustParseTraitID("loom.2d.PixelBased.v1")
	// PlanarID identifies the Planar trait.
	PlanarID = MustParseTraitID("loom.2d.Planar.v1")
	// DeepID identifies the Deep marker trait.
	DeepID = MustParseTraitID("loom.2d.Deep.v1")
	// OverscanID identifies the Overscan trait.
	OverscanID = MustParseTraitID("loom.2d.Overscan.v1")
	// UDIMID identifies the UDIM trait.
	UDIMID = MustParseTraitID("loom.2d.UDIM.v1")
)

// Image marks two-dimensional raster content. Pure type tag.
type Image struct{}

func (Image) ID() TraitID { return ImageID }
func (Image) TraitName() string { return "Image" }
func (Image) Description() string { return "two-dimensional image content" }
func (Image) Persistent() bool { return true }

// PixelBased declares pixel dimensions and aspect of image content.
type PixelBased struct {
	DisplayWindowWidth  int     `json:"display_window_width"`
	DisplayWindowHeight int     `json:"display_window_height"`
	PixelAspectRatio    float64 `json:"pixel_aspect_ratio"`
}

func (PixelBased) ID() TraitID { return PixelBasedID }
func (PixelBased) TraitName() string { return "PixelBased" }
func (PixelBased) Description() string { return "pixel dimensions of image content" }
func (PixelBased) Persistent() bool { return true }

// Validate requires positive dimensions and aspect ratio.
func (t PixelBased) Validate(*Representation) error {
	if t.DisplayWindowWidth <= 0 {
		return fmt.Errorf("display window width %d must be positive", t.DisplayWindowWidth)
	}
	if t.DisplayWindowHeight <= 0 {
		return fmt.Errorf("display window height %d must be positive", t.DisplayWindowHeight)
	}
	if t.PixelAspectRatio <= 0 {
		return fmt.Errorf("pixel aspect ratio %g must be positive", t.PixelAspectRatio)
	}
	return nil
}

// Planar describes the channel layout of raster data, e.g. "RGB".
type Planar struct {
	PlanarConfiguration string `json:"planar_configuration"`
}

func (Planar) ID() TraitID { return PlanarID }
func (Planar) TraitName() string { return "Planar" }
func (Planar) Description() string { return "planar channel configuration" }
func (Planar) Persistent() bool { return true }

// Deep marks deep image data (per-pixel sample lists, deep EXR).
type Deep struct{}

func (Deep) ID() TraitID { return DeepID }
func (Deep) TraitName() string { return "Deep" }
func (Deep) Description() string { return "deep image data" }
func (Deep) Persistent() bool { return true }

// Overscan declares extra pixels around the display window.
type Overscan struct {
	Left   int `json:"left"`
	Right  int `json:"right"`
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

func (Overscan) ID() TraitID { return OverscanID }
func (Overscan) TraitName() string { return "Overscan" }
func (Overscan) Description() string { return "overscan or underscan around the display window" }
func (Overscan) Persistent() bool { return true }

// defaultUDIMRegex matches the UDIM tile number in texture file names
// such as "asset_1001.tx" or "asset.1001.exr".
const defaultUDIMRegex = `(?:\.|_)(?P<udim>\d+)\.\D+\d?$`

// UDIM declares the UDIM tiles covered by texture content.
type UDIM struct {
	UDIM      []int  `json:"udim"`
	UDIMRegex string `json:"udim_regex,omitempty"`
}

func (UDIM) ID() TraitID { return UDIMID }
func (UDIM) TraitName() string { return "UDIM" }
func (UDIM) Description() string { return "UDIM texture tile coverage" }
func (UDIM) Persistent() bool { return true }

// Validate requires at least one tile and a usable regex.
func (t UDIM) Validate(*Representation) error {
	if len(t.UDIM) == 0 {
		return errors.New("no UDIM tiles listed")
	}
	for _, tile := range t.UDIM {
		if tile < 1001 {
			return fmt.Errorf("UDIM tile %d is below 1001", tile)
		}
	}
	_, err := t.compiledRegex()
	return err
}

func (t UDIM) compiledRegex() (*regexp.Regexp, error) {
	raw := t.UDIMRegex
	if raw == "" {
		raw = defaultUDIMRegex
	}
	if !strings.Contains(raw, "?P<udim>") {
		return nil, errors.New("UDIM regex must include 'udim' named group")
	}
	pattern, err := regexp.Compile(raw)
	if err != nil {
		return nil, fmt.Errorf("UDIM regex: %w", err)
	}
	return pattern, nil
}

// FileLocationForUDIM returns the file location carrying the given
// tile, or false when no file name matches it.
func (t UDIM) FileLocationForUDIM(locations FileLocations, tile int) (FileLocation, bool) {
	pattern, err := t.compiledRegex()
	if err != nil {
		return FileLocation{}, false
	}
	group := pattern.SubexpIndex("udim")
	for _, location := range locations.FilePaths {
		match := pattern.FindStringSubmatch(location.FilePath)
		if match == nil {
			continue
		}
		if parsed, err := strconv.Atoi(match[group]); err == nil && parsed == tile {
			return location, true
		}
	}
	return FileLocation{}, false
}

// UDIMFromFileLocation extracts the tile number from a file location's
// name, or false when the name carries none.
func (t UDIM) UDIMFromFileLocation(location FileLocation) (int, bool) {
	pattern, err := t.compiledRegex()
	if err != nil {
		return 0, false
	}
	group := pattern.SubexpIndex("udim")
	match := pattern.FindStringSubmatch(location.FilePath)
	if match == nil {
		return 0, false
	}
	tile, err := strconv.Atoi(match[group])
	if err != nil {
		return 0, false
	}
	return tile, true
}
