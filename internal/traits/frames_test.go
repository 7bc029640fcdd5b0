package traits

import "testing"

func TestParseFrameSpec(t *testing.T) {
	tests := []struct {
		spec string
		want []int
	}{
		{"1001", []int{1001}},
		{"1-3", []int{1, 2, 3}},
		{"1-3,5", []int{1, 2, 3, 5}},
		{"1001-1003,1005,1010-1011", []int{1001, 1002, 1003, 1005, 1010, 1011}},
	}
	for _, tc := range tests {
		got, err := ParseFrameSpec(tc.spec)
		if err != nil {
			t.Fatalf("ParseFrameSpec(%q) failed: %v", tc.spec, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("ParseFrameSpec(%q) = %v, want %v", tc.spec, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("ParseFrameSpec(%q) = %v, want %v", tc.spec, got, tc.want)
			}
		}
	}
}

func TestParseFrameSpecInvalid(t *testing.T) {
	for _, spec := range []string{"", "a", "1-", "-5", "10-1", "1,,3"} {
		if _, err := ParseFrameSpec(spec); err == nil {
			t.Fatalf("ParseFrameSpec(%q) should fail", spec)
		}
	}
}

func TestFramesFromNames(t *testing.T) {
	names := []string{
		"/renders/shot010.1003.exr",
		"/renders/shot010.1001.exr",
		"/renders/shot010.1002.exr",
	}
	frames, padding, err := framesFromNames(names, nil)
	if err != nil {
		t.Fatalf("framesFromNames failed: %v", err)
	}
	if len(frames) != 3 || frames[0] != 1001 || frames[2] != 1003 {
		t.Fatalf("unexpected frames: %v", frames)
	}
	if padding != 4 {
		t.Fatalf("unexpected padding: %d", padding)
	}
}

func TestFramesFromNamesSkipsUnnumbered(t *testing.T) {
	frames, _, err := framesFromNames([]string{"/renders/thumbnail.png"}, nil)
	if err != nil {
		t.Fatalf("framesFromNames failed: %v", err)
	}
	if len(frames) != 0 {
		t.Fatalf("expected no frames, got %v", frames)
	}
}
