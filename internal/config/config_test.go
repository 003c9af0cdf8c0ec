package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

/* ------------------------------------------------------------------------- */
/* LOAD CONFIG                                                               */
/* ------------------------------------------------------------------------- */

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.GetManifestFilename(); got != DefaultManifestFilename {
		t.Errorf("manifest = %q", got)
	}
	if got := cfg.GetPin(); got.Name != DefaultPinName || got.Version != DefaultPinVersion {
		t.Errorf("pin = %+v", got)
	}
	if got := cfg.GetExtensions(); len(got) != 1 || got[0] != ".csproj" {
		t.Errorf("extensions = %v", got)
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".scafsln.yaml", `descriptors:
  extensions: [".csproj", ".fsproj"]
  exclude: ["legacy*"]
pin:
  name: ""
scan:
  workers: 4
`)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := strings.Join(cfg.GetExtensions(), ","); got != ".csproj,.fsproj" {
		t.Errorf("extensions = %q", got)
	}
	if got := cfg.GetExcludePatterns(); len(got) != 1 || got[0] != "legacy*" {
		t.Errorf("exclude = %v", got)
	}
	if cfg.GetPin().Name != "" {
		t.Errorf("expected pin disabled, got %+v", cfg.GetPin())
	}
	if cfg.GetWorkers() != 4 {
		t.Errorf("workers = %d", cfg.GetWorkers())
	}
	if cfg.GetBuildPropsFilename() != DefaultBuildPropsFilename {
		t.Errorf("build-props default not applied: %q", cfg.GetBuildPropsFilename())
	}
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.toml", `theme = "dracula"

[manifest]
filename = "Packages.props"

[pin]
name = "StyleCop.Analyzers"
version = "1.1.118"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GetManifestFilename() != "Packages.props" {
		t.Errorf("manifest = %q", cfg.GetManifestFilename())
	}
	if pin := cfg.GetPin(); pin.Name != "StyleCop.Analyzers" || pin.Version != "1.1.118" {
		t.Errorf("pin = %+v", pin)
	}
	if cfg.GetTheme() != "dracula" {
		t.Errorf("theme = %q", cfg.GetTheme())
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		file string
		body string
	}{
		{"unknown yaml key", "bad.yaml", "unknown: true\n"},
		{"invalid yaml", "broken.yaml", "pin: [unclosed\n"},
		{"unknown toml key", "bad.toml", "nope = 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.body)
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	t.Run("missing explicit file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "absent.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestGetTemplatesPath(t *testing.T) {
	t.Run("env wins", func(t *testing.T) {
		t.Setenv(TemplatesEnvVar, "/tmp/x/templates.json")
		cfg := &Config{Templates: &TemplatesConfig{Path: "/other.json"}}
		if got := cfg.GetTemplatesPath(); got != "/tmp/x/templates.json" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("config path", func(t *testing.T) {
		t.Setenv(TemplatesEnvVar, "")
		cfg := &Config{Templates: &TemplatesConfig{Path: "/other.json"}}
		if got := cfg.GetTemplatesPath(); got != "/other.json" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("user config dir", func(t *testing.T) {
		t.Setenv(TemplatesEnvVar, "")
		got := (*Config)(nil).GetTemplatesPath()
		if !strings.HasSuffix(got, filepath.Join("scafsln", "templates.json")) {
			t.Errorf("got %q", got)
		}
	})
}

/* ------------------------------------------------------------------------- */
/* SAVE CONFIG                                                               */
/* ------------------------------------------------------------------------- */

func TestConfigSaver_RoundTrip(t *testing.T) {
	for _, name := range []string{".scafsln.yaml", ".scafsln.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			cfg := Default()
			cfg.Scan.Workers = 3

			if err := NewConfigSaver(nil, nil, nil).SaveTo(cfg, path); err != nil {
				t.Fatalf("SaveTo: %v", err)
			}
			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if loaded.GetWorkers() != 3 {
				t.Errorf("workers = %d, want 3", loaded.GetWorkers())
			}
			if loaded.GetPin() != cfg.GetPin() {
				t.Errorf("pin = %+v", loaded.GetPin())
			}
		})
	}
}

type failingMarshaler struct{}

func (failingMarshaler) Marshal(any) ([]byte, error) {
	return nil, os.ErrInvalid
}

func TestConfigSaver_MarshalError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.yaml")
	err := NewConfigSaver(failingMarshaler{}, nil, nil).SaveTo(Default(), path)
	if err == nil {
		t.Fatal("expected error")
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("file should not be created when marshaling fails")
	}
}
