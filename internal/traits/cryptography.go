package traits

import "errors"

var (
	// DigitallySignedID identifies the DigitallySigned marker trait.
	DigitallySignedID = MustParseTraitID("loom.cryptography.DigitallySigned.v1")
	// PGPSignedID identifies the PGPSigned trait.
	PGPSignedID = MustParseTraitID("loom.cryptography.PGPSigned.v1")
)

// DigitallySigned marks content accompanied by some digital signature.
// Pure type tag; concrete signature schemes carry their own traits.
type DigitallySigned struct{}

func (DigitallySigned) ID() TraitID { return DigitallySignedID }
func (DigitallySigned) TraitName() string { return "DigitallySigned" }
func (DigitallySigned) Description() string { return "digitally signed content" }
func (DigitallySigned) Persistent() bool { return true }

// PGPSigned carries an ASCII-armored PGP signature over the content.
type PGPSigned struct {
	Signature string `json:"signature"`
	KeyID     string `json:"key_id,omitempty"`
}

func (PGPSigned) ID() TraitID { return PGPSignedID }
func (PGPSigned) TraitName() string { return "PGPSigned" }
func (PGPSigned) Description() string { return "PGP signed content" }
func (PGPSigned) Persistent() bool { return true }

// Validate requires the armored signature text.
func (t PGPSigned) Validate(*Representation) error {
	if t.Signature == "" {
		return errors.New("signature must not be empty")
	}
	return nil
}
