package traits

import "errors"

var (
	// TransientID identifies the Transient marker trait.
	TransientID = MustParseTraitID("loom.lifecycle.Transient.v1")
	// PersistentID identifies the Persistent marker trait.
	PersistentID = MustParseTraitID("loom.lifecycle.Persistent.v1")
)

// Transient marks a representation as in-flight only: the storage
// integrator drops the whole representation instead of integrating it.
// Mutually exclusive with PersistentTrait by convention; validation
// reports the conflict from both sides.
type Transient struct{}

func (Transient) ID() TraitID { return TransientID }
func (Transient) TraitName() string { return "Transient" }
func (Transient) Description() string { return "representation used only during processing" }
func (Transient) Persistent() bool { return false }

// Validate reports coexistence with the Persistent lifecycle trait.
func (Transient) Validate(rep *Representation) error {
	if rep.Contains(PersistentID) {
		return errors.New("representation is marked both transient and persistent")
	}
	return nil
}

// PersistentTrait marks a representation for permanent storage. The
// type name avoids colliding with the Trait interface's Persistent
// method; its identifier and display name remain "Persistent".
type PersistentTrait struct{}

func (PersistentTrait) ID() TraitID { return PersistentID }
func (PersistentTrait) TraitName() string { return "Persistent" }
func (PersistentTrait) Description() string { return "representation meant for permanent storage" }
func (PersistentTrait) Persistent() bool { return true }

// Validate reports coexistence with the Transient lifecycle trait.
func (PersistentTrait) Validate(rep *Representation) error {
	if rep.Contains(TransientID) {
		return errors.New("representation is marked both persistent and transient")
	}
	return nil
}
