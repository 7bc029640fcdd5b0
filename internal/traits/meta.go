package traits

import "errors"

var (
	// TaggedID identifies the Tagged trait.
	TaggedID = MustParseTraitID("loom.meta.Tagged.v1")
	// TemplatePathID identifies the TemplatePath trait.
	TemplatePathID = MustParseTraitID("loom.meta.TemplatePath.v1")
	// VariantID identifies the Variant trait.
	VariantID = MustParseTraitID("loom.meta.Variant.v1")
	// KeepOriginalLocationID identifies the KeepOriginalLocation trait.
	KeepOriginalLocationID = MustParseTraitID("loom.meta.KeepOriginalLocation.v1")
	// KeepOriginalNameID identifies the KeepOriginalName trait.
	KeepOriginalNameID = MustParseTraitID("loom.meta.KeepOriginalName.v1")
	// SourceApplicationID identifies the SourceApplication trait.
	SourceApplicationID = MustParseTraitID("loom.meta.SourceApplication.v1")
	// IntendedUseID identifies the IntendedUse trait.
	IntendedUseID = MustParseTraitID("loom.meta.IntendedUse.v1")
)

// Tagged attaches free-form tags to the representation.
type Tagged struct {
	Tags []string `json:"tags"`
}

func (Tagged) ID() TraitID { return TaggedID }
func (Tagged) TraitName() string { return "Tagged" }
func (Tagged) Description() string { return "free-form tags" }
func (Tagged) Persistent() bool { return true }

// Validate requires at least one tag.
func (t Tagged) Validate(*Representation) error {
	if len(t.Tags) == 0 {
		return errors.New("no tags listed")
	}
	return nil
}

// TemplatePath carries the path template that determines where the
// representation's files land, plus the data used to format it.
type TemplatePath struct {
	Template string         `json:"template"`
	Data     map[string]any `json:"data,omitempty"`
}

func (TemplatePath) ID() TraitID { return TemplatePathID }
func (TemplatePath) TraitName() string { return "TemplatePath" }
func (TemplatePath) Description() string { return "destination path template with data" }
func (TemplatePath) Persistent() bool { return true }

// Validate requires a template string.
func (t TemplatePath) Validate(*Representation) error {
	if t.Template == "" {
		return errors.New("template must not be empty")
	}
	return nil
}

// Variant distinguishes representations of the same product that differ
// in some deliberate way, e.g. "main" versus "proxy".
type Variant struct {
	Variant string `json:"variant"`
}

func (Variant) ID() TraitID { return VariantID }
func (Variant) TraitName() string { return "Variant" }
func (Variant) Description() string { return "named variant of the product" }
func (Variant) Persistent() bool { return true }

// KeepOriginalLocation asks the integrator to keep files where the
// producer wrote them. Publish-time-only.
type KeepOriginalLocation struct{}

func (KeepOriginalLocation) ID() TraitID { return KeepOriginalLocationID }
func (KeepOriginalLocation) TraitName() string { return "KeepOriginalLocation" }
func (KeepOriginalLocation) Description() string { return "keep files at their original location" }
func (KeepOriginalLocation) Persistent() bool { return false }

// KeepOriginalName asks the integrator to keep the producer's file
// names instead of templated ones. Publish-time-only.
type KeepOriginalName struct{}

func (KeepOriginalName) ID() TraitID { return KeepOriginalNameID }
func (KeepOriginalName) TraitName() string { return "KeepOriginalName" }
func (KeepOriginalName) Description() string { return "keep original file names" }
func (KeepOriginalName) Persistent() bool { return false }

// SourceApplication records the application that produced the content.
type SourceApplication struct {
	Application string `json:"application"`
	Variant     string `json:"variant,omitempty"`
	Version     string `json:"version,omitempty"`
	Platform    string `json:"platform,omitempty"`
	HostName    string `json:"host_name,omitempty"`
}

func (SourceApplication) ID() TraitID { return SourceApplicationID }
func (SourceApplication) TraitName() string { return "SourceApplication" }
func (SourceApplication) Description() string { return "application that produced the content" }
func (SourceApplication) Persistent() bool { return true }

// Validate requires the application name.
func (t SourceApplication) Validate(*Representation) error {
	if t.Application == "" {
		return errors.New("application must not be empty")
	}
	return nil
}

// IntendedUse declares what the representation is meant for when the
// type traits alone do not say, e.g. "thumbnail" or "review".
type IntendedUse struct {
	Use string `json:"use"`
}

func (IntendedUse) ID() TraitID { return IntendedUseID }
func (IntendedUse) TraitName() string { return "IntendedUse" }
func (IntendedUse) Description() string { return "intended use of the representation" }
func (IntendedUse) Persistent() bool { return true }
