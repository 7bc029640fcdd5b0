package traits

import "fmt"

var (
	// SpatialID identifies the Spatial trait.
	SpatialID = MustParseTraitID("loom.3d.Spatial.v1")
	// GeometryID identifies the Geometry marker trait.
	GeometryID = MustParseTraitID("loom.3d.Geometry.v1")
	// ShaderID identifies the Shader marker trait.
	ShaderID = MustParseTraitID("loom.3d.Shader.v1")
	// LightingID identifies the Lighting marker trait.
	LightingID = MustParseTraitID("loom.3d.Lighting.v1")
	// IESProfileID identifies the IESProfile marker trait.
	IESProfileID = MustParseTraitID("loom.3d.IESProfile.v1")
)

// Axis and handedness values for Spatial.
const (
	UpAxisY = "y"
	UpAxisZ = "z"

	HandednessLeft  = "left"
	HandednessRight = "right"
)

// Spatial declares the spatial conventions of three-dimensional
// content: up axis, handedness and scene unit scale.
type Spatial struct {
	UpAxis        string  `json:"up_axis"`
	Handedness    string  `json:"handedness"`
	MetersPerUnit float64 `json:"meters_per_unit"`
}

func (Spatial) ID() TraitID { return SpatialID }
func (Spatial) TraitName() string { return "Spatial" }
func (Spatial) Description() string { return "spatial conventions of 3d content" }
func (Spatial) Persistent() bool { return true }

// Validate checks the axis, handedness and unit scale values.
func (t Spatial) Validate(*Representation) error {
	if t.UpAxis != UpAxisY && t.UpAxis != UpAxisZ {
		return fmt.Errorf("up axis %q must be %q or %q", t.UpAxis, UpAxisY, UpAxisZ)
	}
	if t.Handedness != HandednessLeft && t.Handedness != HandednessRight {
		return fmt.Errorf("handedness %q must be %q or %q", t.Handedness, HandednessLeft, HandednessRight)
	}
	if t.MetersPerUnit <= 0 {
		return fmt.Errorf("meters per unit %g must be positive", t.MetersPerUnit)
	}
	return nil
}

// Geometry marks three-dimensional geometry content. Pure type tag.
type Geometry struct{}

func (Geometry) ID() TraitID { return GeometryID }
func (Geometry) TraitName() string { return "Geometry" }
func (Geometry) Description() string { return "three-dimensional geometry content" }
func (Geometry) Persistent() bool { return true }

// Shader marks shading network or material content. Pure type tag.
type Shader struct{}

func (Shader) ID() TraitID { return ShaderID }
func (Shader) TraitName() string { return "Shader" }
func (Shader) Description() string { return "shader or material content" }
func (Shader) Persistent() bool { return true }

// Lighting marks light rig content. Pure type tag.
type Lighting struct{}

func (Lighting) ID() TraitID { return LightingID }
func (Lighting) TraitName() string { return "Lighting" }
func (Lighting) Description() string { return "light rig content" }
func (Lighting) Persistent() bool { return true }

// IESProfile marks photometric light profile content. Pure type tag.
type IESProfile struct{}

func (IESProfile) ID() TraitID { return IESProfileID }
func (IESProfile) TraitName() string { return "IESProfile" }
func (IESProfile) Description() string { return "IES photometric profile content" }
func (IESProfile) Persistent() bool { return true }
