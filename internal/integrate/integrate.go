// Package integrate plans how trait representations move into managed
// storage. The storage itself stays outside: this package filters
// representations by lifecycle and expands their file traits into
// source to destination transfer items. Destinations come from a path
// template with {token} placeholders filled from trait data.
package integrate

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"loom/internal/fileutil"
	"loom/internal/textutil"
	"loom/internal/traits"
)

// ErrUnresolvedToken reports a template token with no value in the
// template data.
var ErrUnresolvedToken = errors.New("unresolved template token")

// TransferItem is one planned file move: where the file is, where it
// should end up, and the size and checksum recorded on its trait.
type TransferItem struct {
	Source         string
	Destination    string
	Size           int64
	Checksum       string
	Template       string
	TemplateData   map[string]any
	Representation *traits.Representation
}

// Planner expands representations into transfer items. Template is a
// destination path template such as
// "/publish/{representation}/{representation}.{frame}.{ext}"; Data
// holds the caller's template values shared by every representation.
type Planner struct {
	Template string
	Data     map[string]any
}

// FilterLifecycle keeps only representations marked Persistent.
// Transient representations are the producer's scratch data and never
// reach storage.
func FilterLifecycle(reps []*traits.Representation) []*traits.Representation {
	kept := make([]*traits.Representation, 0, len(reps))
	for _, rep := range reps {
		if rep.Contains(traits.PersistentID) {
			kept = append(kept, rep)
		}
	}
	return kept
}

// Plan validates every representation and expands its file traits into
// transfer items. Representations carrying KeepOriginalLocation are
// validated but produce no transfers. Each planned representation
// gains a TemplatePath trait recording how its destination was built.
func (p *Planner) Plan(reps []*traits.Representation) ([]TransferItem, error) {
	var transfers []TransferItem
	for _, rep := range reps {
		if err := rep.Validate(); err != nil {
			return nil, fmt.Errorf("representation %q is invalid: %w", rep.Name(), err)
		}
		if rep.Contains(traits.KeepOriginalLocationID) {
			continue
		}
		if err := p.planOne(rep, &transfers); err != nil {
			return nil, err
		}
	}
	return transfers, nil
}

// Execute performs the planned transfers with verified copies. The
// returned items carry the size and checksum measured during the copy,
// filling in values the producer left empty. It stops at the first
// failed transfer and returns the items copied so far.
func Execute(transfers []TransferItem) ([]TransferItem, error) {
	done := make([]TransferItem, 0, len(transfers))
	for _, item := range transfers {
		size, checksum, err := fileutil.CopyFileVerified(item.Source, item.Destination)
		if err != nil {
			return done, fmt.Errorf("transfer %s: %w", item.Source, err)
		}
		item.Size = size
		item.Checksum = checksum
		done = append(done, item)
	}
	return done, nil
}

func (p *Planner) planOne(rep *traits.Representation, transfers *[]TransferItem) error {
	data := p.templateData(rep)

	switch {
	case rep.Contains(traits.FileLocationsID):
		if err := p.planFileLocations(rep, data, transfers); err != nil {
			return err
		}
	case rep.Contains(traits.FileLocationID):
		if err := p.planFileLocation(rep, data, transfers); err != nil {
			return err
		}
	case rep.Contains(traits.BundleID):
		return p.planBundle(rep, transfers)
	default:
		// File-less representation, nothing to move.
		return nil
	}

	if !rep.Contains(traits.TemplatePathID) {
		rep.Add(traits.TemplatePath{Template: p.Template, Data: data})
	}
	return nil
}

// planFileLocations handles multi-file representations. The files must
// form either a frame sequence or a UDIM tile set; unrelated files in
// one representation are not supported.
func (p *Planner) planFileLocations(rep *traits.Representation, data map[string]any, transfers *[]TransferItem) error {
	switch {
	case rep.Contains(traits.SequenceID):
		return p.planSequence(rep, data, transfers)
	case rep.Contains(traits.UDIMID):
		return p.planUDIM(rep, data, transfers)
	default:
		return fmt.Errorf(
			"representation %q has file locations but neither Sequence nor UDIM",
			rep.Name())
	}
}

func (p *Planner) planSequence(rep *traits.Representation, data map[string]any, transfers *[]TransferItem) error {
	seq, err := traits.Get[traits.Sequence](rep)
	if err != nil {
		return err
	}
	locations, err := traits.Get[traits.FileLocations](rep)
	if err != nil {
		return err
	}
	frames, err := seq.FrameList(locations)
	if err != nil {
		return err
	}
	for _, frame := range frames {
		location, ok := locations.FileLocationForFrame(frame, seq)
		if !ok {
			return fmt.Errorf(
				"representation %q lists no file for frame %d",
				rep.Name(), frame)
		}
		data["frame"] = fmt.Sprintf("%0*d", seq.FramePadding, frame)
		data["ext"] = extension(location.FilePath)
		if err := p.appendTransfer(rep, location, data, transfers); err != nil {
			return err
		}
	}
	return nil
}

func (p *Planner) planUDIM(rep *traits.Representation, data map[string]any, transfers *[]TransferItem) error {
	udim, err := traits.Get[traits.UDIM](rep)
	if err != nil {
		return err
	}
	locations, err := traits.Get[traits.FileLocations](rep)
	if err != nil {
		return err
	}
	for _, location := range locations.FilePaths {
		tile, ok := udim.UDIMFromFileLocation(location)
		if !ok {
			return fmt.Errorf(
				"representation %q file %q carries no UDIM tile",
				rep.Name(), location.FilePath)
		}
		data["udim"] = tile
		data["ext"] = extension(location.FilePath)
		if err := p.appendTransfer(rep, location, data, transfers); err != nil {
			return err
		}
	}
	return nil
}

func (p *Planner) planFileLocation(rep *traits.Representation, data map[string]any, transfers *[]TransferItem) error {
	location, err := traits.Get[traits.FileLocation](rep)
	if err != nil {
		return err
	}
	data["ext"] = extension(location.FilePath)
	if udim, err := traits.Get[traits.UDIM](rep); err == nil && len(udim.UDIM) > 0 {
		data["udim"] = udim.UDIM[0]
	}
	return p.appendTransfer(rep, location, data, transfers)
}

// planBundle expands each bundle item into a transient
// sub-representation and plans it recursively. Nested bundles recurse
// further.
func (p *Planner) planBundle(rep *traits.Representation, transfers *[]TransferItem) error {
	bundle, err := traits.Get[traits.Bundle](rep)
	if err != nil {
		return err
	}
	subs, err := bundle.Hydrate(traits.Default(), rep.Name())
	if err != nil {
		return fmt.Errorf("representation %q: %w", rep.Name(), err)
	}
	for _, sub := range subs {
		sub.Add(traits.Transient{})
		if err := sub.Validate(); err != nil {
			return fmt.Errorf("representation %q is invalid: %w", sub.Name(), err)
		}
		if err := p.planOne(sub, transfers); err != nil {
			return err
		}
	}
	return nil
}

func (p *Planner) appendTransfer(rep *traits.Representation, location traits.FileLocation, data map[string]any, transfers *[]TransferItem) error {
	destination, err := formatTemplate(p.Template, data)
	if err != nil {
		return fmt.Errorf("representation %q: %w", rep.Name(), err)
	}
	if rep.Contains(traits.KeepOriginalNameID) {
		destination = filepath.Join(
			filepath.Dir(destination), filepath.Base(location.FilePath))
	}
	*transfers = append(*transfers, TransferItem{
		Source:         location.FilePath,
		Destination:    destination,
		Size:           location.FileSize,
		Checksum:       location.FileHash,
		Template:       p.Template,
		TemplateData:   cloneData(data),
		Representation: rep,
	})
	return nil
}

// templateData builds the per-representation template values: the
// caller's shared data plus values lifted from the traits the
// representation carries.
func (p *Planner) templateData(rep *traits.Representation) map[string]any {
	data := cloneData(p.Data)
	data["representation"] = textutil.SanitizeFileName(rep.Name())

	if variant, err := traits.Get[traits.Variant](rep); err == nil {
		data["output"] = textutil.SanitizeToken(variant.Variant)
	}
	if color, err := traits.Get[traits.ColorManaged](rep); err == nil {
		data["colorspace"] = color.ColorSpace
	}
	if pixels, err := traits.Get[traits.PixelBased](rep); err == nil {
		data["resolution_width"] = pixels.DisplayWindowWidth
		data["resolution_height"] = pixels.DisplayWindowHeight
	}
	if ranged, err := traits.Get[traits.FrameRanged](rep); err == nil && ranged.FramesPerSecond != "" {
		data["fps"] = ranged.FramesPerSecond
	}
	return data
}

var templateToken = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// formatTemplate fills {token} placeholders from data. Every token
// must resolve; a missing value fails the whole plan rather than
// producing a half-formed path.
func formatTemplate(template string, data map[string]any) (string, error) {
	var missing []string
	filled := templateToken.ReplaceAllStringFunc(template, func(token string) string {
		key := token[1 : len(token)-1]
		value, ok := data[key]
		if !ok {
			missing = append(missing, key)
			return token
		}
		return fmt.Sprint(value)
	})
	if len(missing) > 0 {
		return "", fmt.Errorf(
			"%w %q in template %q",
			ErrUnresolvedToken, strings.Join(missing, ", "), template)
	}
	return filled, nil
}

func cloneData(data map[string]any) map[string]any {
	clone := make(map[string]any, len(data)+4)
	for key, value := range data {
		clone[key] = value
	}
	return clone
}

// extension returns the file name extension without the leading dot.
func extension(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}
