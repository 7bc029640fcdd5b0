package traits

import "errors"

// ColorManagedID identifies the ColorManaged trait.
var ColorManagedID = MustParseTraitID("loom.color.ColorManaged.v1")

// ColorManaged declares that the content is color managed and names the
// color space it was written in, optionally with the color config that
// defines it.
type ColorManaged struct {
	ColorSpace string `json:"color_space"`
	Config     string `json:"config,omitempty"`
}

func (ColorManaged) ID() TraitID { return ColorManagedID }
func (ColorManaged) TraitName() string { return "ColorManaged" }
func (ColorManaged) Description() string { return "color managed content" }
func (ColorManaged) Persistent() bool { return true }

// Validate requires a color space name.
func (t ColorManaged) Validate(*Representation) error {
	if t.ColorSpace == "" {
		return errors.New("color space must not be empty")
	}
	return nil
}
