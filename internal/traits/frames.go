package traits

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// defaultFramePattern matches the trailing frame number in sequence
// file names such as "render.1001.exr".
var defaultFramePattern = regexp.MustCompile(`\.(?P<index>(?P<padding>0*)\d+)\.\D+\d?$`)

// ParseFrameSpec expands a frame list specification such as
// "1001-1010,1012,1020-1025" into individual frame numbers.
func ParseFrameSpec(spec string) ([]int, error) {
	var frames []int
	for _, segment := range strings.Split(spec, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			return nil, fmt.Errorf("empty segment in frame spec %q", spec)
		}
		start, end, found := strings.Cut(segment, "-")
		if !found {
			frame, err := strconv.Atoi(segment)
			if err != nil {
				return nil, fmt.Errorf("invalid frame number %q in frame spec", segment)
			}
			frames = append(frames, frame)
			continue
		}
		first, err := strconv.Atoi(strings.TrimSpace(start))
		if err != nil {
			return nil, fmt.Errorf("invalid frame range start %q in frame spec", start)
		}
		last, err := strconv.Atoi(strings.TrimSpace(end))
		if err != nil {
			return nil, fmt.Errorf("invalid frame range end %q in frame spec", end)
		}
		if last < first {
			return nil, fmt.Errorf("frame range %q ends before it starts", segment)
		}
		for frame := first; frame <= last; frame++ {
			frames = append(frames, frame)
		}
	}
	return frames, nil
}

// framesFromNames extracts frame numbers and the widest zero padding
// from sequence file names. A nil pattern uses the default trailing
// frame number rule. The pattern must expose an "index" capture group;
// names without a frame number are skipped.
func framesFromNames(names []string, pattern *regexp.Regexp) (frames []int, padding int, err error) {
	if pattern == nil {
		pattern = defaultFramePattern
	}
	index := pattern.SubexpIndex("index")
	if index < 0 {
		return nil, 0, fmt.Errorf("frame pattern %q has no 'index' group", pattern)
	}
	for _, name := range names {
		match := pattern.FindStringSubmatch(name)
		if match == nil {
			continue
		}
		digits := match[index]
		frame, convErr := strconv.Atoi(digits)
		if convErr != nil {
			return nil, 0, fmt.Errorf("frame number %q in %q: %w", digits, name, convErr)
		}
		frames = append(frames, frame)
		if len(digits) > padding {
			padding = len(digits)
		}
	}
	sort.Ints(frames)
	return frames, padding, nil
}

func frameBounds(frames []int) (first, last int) {
	if len(frames) == 0 {
		return 0, 0
	}
	first, last = frames[0], frames[0]
	for _, frame := range frames[1:] {
		if frame < first {
			first = frame
		}
		if frame > last {
			last = frame
		}
	}
	return first, last
}

func frameSet(frames []int) map[int]struct{} {
	set := make(map[int]struct{}, len(frames))
	for _, frame := range frames {
		set[frame] = struct{}{}
	}
	return set
}
