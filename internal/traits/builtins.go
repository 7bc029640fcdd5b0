package traits

// Builtins returns a prototype of every trait type shipped with this
// package, ready for registry registration.
func Builtins() []Trait {
	return []Trait{
		// content
		MimeType{},
		LocatableContent{},
		FileLocation{},
		FileLocations{},
		RootlessLocation{},
		Compressed{},
		Bundle{},
		Fragment{},
		// color
		ColorManaged{},
		// cryptography
		DigitallySigned{},
		PGPSigned{},
		// lifecycle
		Transient{},
		PersistentTrait{},
		// meta
		Tagged{},
		TemplatePath{},
		Variant{},
		KeepOriginalLocation{},
		KeepOriginalName{},
		SourceApplication{},
		IntendedUse{},
		// three-dimensional
		Spatial{},
		Geometry{},
		Shader{},
		Lighting{},
		IESProfile{},
		// time
		FrameRanged{},
		Handles{},
		Sequence{},
		SMPTETimecode{},
		Static{},
		// two-dimensional
		Image{},
		PixelBased{},
		Planar{},
		Deep{},
		Overscan{},
		UDIM{},
	}
}

// BuiltinCategories lists the category names of the built-in catalog in
// identifier order.
func BuiltinCategories() []string {
	return []string{"2d", "3d", "color", "content", "cryptography", "lifecycle", "meta", "time"}
}
