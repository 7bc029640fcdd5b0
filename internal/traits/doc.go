// Package traits defines the typed metadata model describing what a
// deliverable file or asset is, independent of the application that
// produced it.
//
// A Trait is a single named fact about a deliverable (pixel dimensions,
// frame range, file location, color space). A Representation is a named,
// uniquely identified collection of traits describing one concrete
// artifact. Producers (extractors, loaders, deserializers) build
// representations trait by trait; consumers query for the traits they
// understand to decide compatibility and extract values.
//
// # Key Types
//
// TraitID: parsed identifier of the form <namespace>.<category>.<Name>.v<major>.
// Lookup may be exact or version-agnostic (highest version wins).
//
// Trait: the contract every trait type implements (identifier, display
// name, description, persistence flag). Traits that need cross-trait
// consistency checks additionally implement Validator.
//
// Registry: catalog mapping trait identifiers to trait types. Built-ins
// register through Default; addons contribute their own types during
// host bootstrap via Register.
//
// Representation: the aggregate container with add/get/remove/contains
// operations, collect-all validation, and dictionary round-tripping via
// TraitsAsDict and FromDict.
//
// # Lifecycle
//
// Representations are plain in-memory values. The package performs no
// file I/O: FileLocation and friends carry metadata only, actual file
// access belongs to the caller. Persistent versus transient filtering at
// storage time is likewise the storage integrator's job; TraitsAsDict
// always includes both.
package traits
