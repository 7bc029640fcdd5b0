package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("missing file must not report exists")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: %s", resolved)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Output.Format != "table" || cfg.Output.Color != "auto" {
		t.Fatalf("unexpected output defaults: %+v", cfg.Output)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	path := writeConfig(t, `
[logging]
format = "JSON"
level = " Debug "

[registry]
namespaces = ["Content", " time "]

[output]
format = "json"
color = "never"
`)
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("existing file must report exists")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("values not normalized: %+v", cfg.Logging)
	}
	if len(cfg.Registry.Namespaces) != 2 || cfg.Registry.Namespaces[0] != "content" {
		t.Fatalf("namespaces not normalized: %v", cfg.Registry.Namespaces)
	}
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		problem string
	}{
		{"log level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"log format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"namespace", "[registry]\nnamespaces = [\"audio\"]\n", "unknown category"},
		{"output format", "[output]\nformat = \"csv\"\n", "output.format"},
		{"output color", "[output]\ncolor = \"sometimes\"\n", "output.color"},
	}
	for _, tc := range tests {
		path := writeConfig(t, tc.content)
		_, _, _, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), tc.problem) {
			t.Fatalf("%s: got %v, want problem containing %q", tc.name, err, tc.problem)
		}
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if !exists {
		t.Fatal("sample file must exist")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config invalid: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	expanded, err := ExpandPath("~/loom/config.toml")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if expanded != filepath.Join(home, "loom", "config.toml") {
		t.Fatalf("unexpected expansion: %s", expanded)
	}
}
