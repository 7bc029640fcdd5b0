package traits

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// FrameRangedID identifies the FrameRanged trait.
	FrameRangedID = MustParseTraitID("loom.time.FrameRanged.v1")
	// HandlesID identifies the Handles trait.
	HandlesID = MustParseTraitID("loom.time.Handles.v1")
	// SequenceID identifies the Sequence trait.
	SequenceID = MustParseTraitID("loom.time.Sequence.v1")
	// SMPTETimecodeID identifies the SMPTETimecode trait.
	SMPTETimecodeID = MustParseTraitID("loom.time.SMPTETimecode.v1")
	// StaticID identifies the Static trait.
	StaticID = MustParseTraitID("loom.time.Static.v1")
)

// Gap policies for sequences with missing frames.
const (
	GapsForbidden = "forbidden"
	GapsMissing   = "missing"
	GapsHold      = "hold"
	GapsBlack     = "black"
)

var validGapsPolicies = map[string]bool{
	GapsForbidden: true,
	GapsMissing:   true,
	GapsHold:      true,
	GapsBlack:     true,
}

// FrameRanged declares the frame range of time-varying content.
//
// FramesPerSecond is a string so that fractional rates such as
// "30000/1001" survive without precision loss.
type FrameRanged struct {
	FrameStart      int    `json:"frame_start"`
	FrameEnd        int    `json:"frame_end"`
	FrameIn         int    `json:"frame_in,omitempty"`
	FrameOut        int    `json:"frame_out,omitempty"`
	FramesPerSecond string `json:"frames_per_second,omitempty"`
	Step            int    `json:"step,omitempty"`
}

func (FrameRanged) ID() TraitID { return FrameRangedID }
func (FrameRanged) TraitName() string { return "FrameRanged" }
func (FrameRanged) Description() string { return "frame range of time-varying content" }
func (FrameRanged) Persistent() bool { return true }

// Validate checks range ordering: end must not precede start, the
// in/out points must lie inside the range, and a step must be positive.
func (t FrameRanged) Validate(*Representation) error {
	if t.FrameEnd < t.FrameStart {
		return fmt.Errorf("frame end %d is before frame start %d", t.FrameEnd, t.FrameStart)
	}
	if t.FrameIn != 0 || t.FrameOut != 0 {
		if t.FrameOut < t.FrameIn {
			return fmt.Errorf("frame out %d is before frame in %d", t.FrameOut, t.FrameIn)
		}
		if t.FrameIn < t.FrameStart || t.FrameOut > t.FrameEnd {
			return fmt.Errorf(
				"frame in/out %d-%d outside frame range %d-%d",
				t.FrameIn, t.FrameOut, t.FrameStart, t.FrameEnd)
		}
	}
	if t.Step < 0 {
		return fmt.Errorf("step %d is negative", t.Step)
	}
	return nil
}

// Handles declare extra frames around the frame range. Exclusive
// handles extend the range; inclusive handles are already counted in.
type Handles struct {
	Inclusive        bool `json:"inclusive,omitempty"`
	FrameStartHandle int  `json:"frame_start_handle,omitempty"`
	FrameEndHandle   int  `json:"frame_end_handle,omitempty"`
}

func (Handles) ID() TraitID { return HandlesID }
func (Handles) TraitName() string { return "Handles" }
func (Handles) Description() string { return "extra frames around the frame range" }
func (Handles) Persistent() bool { return true }

// Validate rejects negative handle counts.
func (t Handles) Validate(*Representation) error {
	if t.FrameStartHandle < 0 || t.FrameEndHandle < 0 {
		return fmt.Errorf(
			"handles %d/%d must not be negative",
			t.FrameStartHandle, t.FrameEndHandle)
	}
	return nil
}

// Sequence refines FrameRanged content with gap policy, frame number
// padding, a frame matching regex and an explicit frame list spec such
// as "1001-1010,1012".
type Sequence struct {
	FramePadding int    `json:"frame_padding"`
	GapsPolicy   string `json:"gaps_policy,omitempty"`
	FrameRegex   string `json:"frame_regex,omitempty"`
	FrameSpec    string `json:"frame_spec,omitempty"`
}

func (Sequence) ID() TraitID { return SequenceID }
func (Sequence) TraitName() string { return "Sequence" }
func (Sequence) Description() string { return "file sequence frame bookkeeping" }
func (Sequence) Persistent() bool { return true }

// Validate checks the trait's own fields and, when file locations are
// present, that padding and frame spec agree with the actual file
// names.
func (t Sequence) Validate(rep *Representation) error {
	if t.FramePadding < 1 {
		return fmt.Errorf("frame padding %d must be at least 1", t.FramePadding)
	}
	if t.GapsPolicy != "" && !validGapsPolicies[t.GapsPolicy] {
		return fmt.Errorf("unknown gaps policy %q", t.GapsPolicy)
	}
	pattern, err := t.compiledRegex()
	if err != nil {
		return err
	}
	if t.FrameSpec != "" {
		if _, err := ParseFrameSpec(t.FrameSpec); err != nil {
			return err
		}
	}

	locations, err := Get[FileLocations](rep)
	if err != nil {
		return nil
	}
	return t.validateFiles(locations, pattern)
}

func (t Sequence) validateFiles(locations FileLocations, pattern *regexp.Regexp) error {
	frames, padding, err := framesFromNames(locations.names(), pattern)
	if err != nil {
		return err
	}
	if padding > 0 && t.FramePadding != padding {
		return fmt.Errorf(
			"frame padding %d does not match padding %d found in files",
			t.FramePadding, padding)
	}
	if t.FrameSpec == "" {
		return nil
	}
	expected, err := ParseFrameSpec(t.FrameSpec)
	if err != nil {
		return err
	}
	expectedSet := frameSet(expected)
	for _, frame := range frames {
		if _, ok := expectedSet[frame]; !ok {
			return fmt.Errorf("file frame %d is not listed in frame spec %q", frame, t.FrameSpec)
		}
	}
	return nil
}

// compiledRegex compiles FrameRegex, requiring the named groups the
// frame extraction relies on. An empty regex means the default rule.
func (t Sequence) compiledRegex() (*regexp.Regexp, error) {
	if t.FrameRegex == "" {
		return nil, nil
	}
	for _, group := range []string{"?P<index>", "?P<padding>"} {
		if !strings.Contains(t.FrameRegex, group) {
			return nil, errors.New("frame regex must include 'index' and 'padding' named groups")
		}
	}
	pattern, err := regexp.Compile(t.FrameRegex)
	if err != nil {
		return nil, fmt.Errorf("frame regex: %w", err)
	}
	return pattern, nil
}

// FrameList extracts the sorted frame numbers from the given file
// locations using the sequence's frame regex.
func (t Sequence) FrameList(locations FileLocations) ([]int, error) {
	pattern, err := t.compiledRegex()
	if err != nil {
		return nil, err
	}
	frames, _, err := framesFromNames(locations.names(), pattern)
	return frames, err
}

var timecodePattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}[:;]\d{2}$`)

// SMPTETimecode carries an SMPTE timecode, "HH:MM:SS:FF" for non-drop
// or "HH:MM:SS;FF" for drop frame.
type SMPTETimecode struct {
	Timecode string `json:"timecode"`
}

func (SMPTETimecode) ID() TraitID { return SMPTETimecodeID }
func (SMPTETimecode) TraitName() string { return "SMPTETimecode" }
func (SMPTETimecode) Description() string { return "SMPTE timecode of the content start" }
func (SMPTETimecode) Persistent() bool { return true }

// Validate checks the timecode shape.
func (t SMPTETimecode) Validate(*Representation) error {
	if !timecodePattern.MatchString(t.Timecode) {
		return fmt.Errorf("timecode %q is not of the form HH:MM:SS:FF", t.Timecode)
	}
	return nil
}

// Static marks single-frame, time-invariant content.
type Static struct{}

func (Static) ID() TraitID { return StaticID }
func (Static) TraitName() string { return "Static" }
func (Static) Description() string { return "time-invariant single frame content" }
func (Static) Persistent() bool { return true }
