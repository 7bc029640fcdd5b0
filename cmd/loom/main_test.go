package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	configPath := filepath.Join(t.TempDir(), "absent-config.toml")
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

const validManifest = `{
  "name": "ref_image",
  "id": "a1b2c3",
  "traits": {
    "loom.2d.Image.v1": {},
    "loom.2d.PixelBased.v1": {
      "display_window_width": 1920,
      "display_window_height": 1080,
      "pixel_aspect_ratio": 1.0
    },
    "loom.content.FileLocation.v1": {
      "file_path": "/foo/bar/baz.exr",
      "file_size": 1234,
      "file_hash": "sha256:abc"
    }
  }
}`

const invalidManifest = `{
  "name": "broken",
  "traits": {
    "loom.2d.PixelBased.v1": {
      "display_window_width": -1,
      "display_window_height": 1080,
      "pixel_aspect_ratio": 1.0
    },
    "loom.time.FrameRanged.v1": {
      "frame_start": 1010,
      "frame_end": 1001
    }
  }
}`

func TestValidateCommandValid(t *testing.T) {
	path := writeManifest(t, validManifest)
	stdout, _, err := runCLI(t, "validate", path)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if !strings.Contains(stdout, "is valid") {
		t.Fatalf("unexpected output: %s", stdout)
	}
}

func TestValidateCommandCollectsAllFailures(t *testing.T) {
	path := writeManifest(t, invalidManifest)
	stdout, _, err := runCLI(t, "validate", path)
	if err == nil {
		t.Fatal("invalid manifest must fail")
	}
	if !strings.Contains(stdout, "width -1") {
		t.Fatalf("missing pixel problem: %s", stdout)
	}
	if !strings.Contains(stdout, "frame end 1001") {
		t.Fatalf("missing frame problem: %s", stdout)
	}
}

func TestValidateCommandJSON(t *testing.T) {
	path := writeManifest(t, invalidManifest)
	stdout, _, err := runCLI(t, "validate", "--json", path)
	if err == nil {
		t.Fatal("invalid manifest must fail")
	}
	var result struct {
		Valid    bool     `json:"valid"`
		Problems []string `json:"problems"`
	}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if result.Valid || len(result.Problems) != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestValidateCommandUnknownTrait(t *testing.T) {
	path := writeManifest(t, `{"name": "x", "traits": {"loom.content.Nope.v1": {}}}`)
	_, _, err := runCLI(t, "validate", path)
	if err == nil || !strings.Contains(err.Error(), "loom.content.Nope.v1") {
		t.Fatalf("expected unknown trait failure, got %v", err)
	}
}

func TestShowCommandJSON(t *testing.T) {
	path := writeManifest(t, validManifest)
	stdout, _, err := runCLI(t, "show", "--json", path)
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	var m struct {
		Name   string                    `json:"name"`
		ID     string                    `json:"id"`
		Traits map[string]map[string]any `json:"traits"`
	}
	if err := json.Unmarshal([]byte(stdout), &m); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if m.Name != "ref_image" || m.ID != "a1b2c3" {
		t.Fatalf("unexpected identity: %+v", m)
	}
	if len(m.Traits) != 3 {
		t.Fatalf("expected 3 traits, got %d", len(m.Traits))
	}
}

func TestShowCommandTable(t *testing.T) {
	path := writeManifest(t, validManifest)
	stdout, _, err := runCLI(t, "show", path)
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(stdout, "PixelBased") || !strings.Contains(stdout, "Category") {
		t.Fatalf("unexpected table output: %s", stdout)
	}
}

func TestTraitsCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "traits", "--json")
	if err != nil {
		t.Fatalf("traits failed: %v", err)
	}
	if !strings.Contains(stdout, "loom.2d.Image.v1") {
		t.Fatalf("built-in trait missing: %s", stdout)
	}
	if !strings.Contains(stdout, "loom.lifecycle.Transient.v1") {
		t.Fatalf("transient trait missing: %s", stdout)
	}
}

func TestConvertCommandPinsVersions(t *testing.T) {
	// Version-agnostic key in, pinned key out.
	path := writeManifest(t, `{"name": "x", "traits": {"loom.2d.Image": {}}}`)
	out := filepath.Join(t.TempDir(), "normalized.json")
	_, _, err := runCLI(t, "convert", "-o", out, path)
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(raw), "loom.2d.Image.v1") {
		t.Fatalf("version not pinned: %s", raw)
	}
}

func TestFillCommand(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "render.exr")
	if err := os.WriteFile(file, []byte("pixels"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := writeManifest(t, `{
  "name": "exr",
  "traits": {
    "loom.content.FileLocation.v1": {"file_path": "`+file+`"}
  }
}`)

	stdout, _, err := runCLI(t, "fill", path)
	if err != nil {
		t.Fatalf("fill failed: %v", err)
	}
	if !strings.Contains(stdout, "Filled 1") {
		t.Fatalf("unexpected output: %s", stdout)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"file_size": 6`) {
		t.Fatalf("size not filled: %s", raw)
	}
	if !strings.Contains(string(raw), `"file_hash": "sha256:`) {
		t.Fatalf("hash not filled: %s", raw)
	}
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "loom", "config.toml")
	stdout, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(stdout, target) {
		t.Fatalf("unexpected output: %s", stdout)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample not written: %v", err)
	}

	_, _, err = runCLI(t, "config", "init", "--path", target)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected overwrite guard, got %v", err)
	}
}
