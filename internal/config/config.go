package config

import (
	"os"
	"path/filepath"

	"github.com/indaco/scafsln/internal/core"
)

// Default values applied when a setting is absent.
const (
	DefaultManifestFilename   = "Directory.Packages.props"
	DefaultBuildPropsFilename = "Directory.Build.props"
	DefaultPinName            = "Microsoft.CodeAnalysis.NetAnalyzers"
	DefaultPinVersion         = "9.0.0"
	DefaultWorkers            = 1
	DefaultTheme              = "scafsln"
)

// DefaultExtensions lists the project descriptor extensions scanned by default.
var DefaultExtensions = []string{".csproj"}

// DescriptorsConfig controls project descriptor discovery.
type DescriptorsConfig struct {
	Extensions []string `yaml:"extensions,omitempty" toml:"extensions,omitempty"`
	Exclude    []string `yaml:"exclude,omitempty" toml:"exclude,omitempty"`
}

// FileConfig names a generated file at the solution root.
type FileConfig struct {
	Filename string `yaml:"filename" toml:"filename"`
}

// PinConfig is a dependency whose version is forced into the manifest.
// An empty Name disables pinning.
type PinConfig struct {
	Name    string `yaml:"name" toml:"name"`
	Version string `yaml:"version" toml:"version"`
}

// ScanConfig controls descriptor scanning.
type ScanConfig struct {
	Workers int `yaml:"workers" toml:"workers"`
}

// TemplatesConfig locates the template override store.
type TemplatesConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// Config is the main configuration structure for scafsln.
type Config struct {
	Descriptors *DescriptorsConfig `yaml:"descriptors,omitempty" toml:"descriptors,omitempty"`
	Manifest    *FileConfig        `yaml:"manifest,omitempty" toml:"manifest,omitempty"`
	BuildProps  *FileConfig        `yaml:"build-props,omitempty" toml:"build-props,omitempty"`
	Pin         *PinConfig         `yaml:"pin,omitempty" toml:"pin,omitempty"`
	Scan        *ScanConfig        `yaml:"scan,omitempty" toml:"scan,omitempty"`
	Templates   *TemplatesConfig   `yaml:"templates,omitempty" toml:"templates,omitempty"`
	Theme       string             `yaml:"theme,omitempty" toml:"theme,omitempty"`
}

// Default returns a fully populated configuration.
func Default() *Config {
	return &Config{
		Descriptors: &DescriptorsConfig{Extensions: append([]string(nil), DefaultExtensions...)},
		Manifest:    &FileConfig{Filename: DefaultManifestFilename},
		BuildProps:  &FileConfig{Filename: DefaultBuildPropsFilename},
		Pin:         &PinConfig{Name: DefaultPinName, Version: DefaultPinVersion},
		Scan:        &ScanConfig{Workers: DefaultWorkers},
		Theme:       DefaultTheme,
	}
}

// GetExtensions returns the descriptor extensions to scan.
func (c *Config) GetExtensions() []string {
	if c == nil || c.Descriptors == nil || len(c.Descriptors.Extensions) == 0 {
		return DefaultExtensions
	}
	return c.Descriptors.Extensions
}

// GetExcludePatterns returns the configured exclude globs.
func (c *Config) GetExcludePatterns() []string {
	if c == nil || c.Descriptors == nil {
		return nil
	}
	return c.Descriptors.Exclude
}

// GetManifestFilename returns the central manifest file name.
func (c *Config) GetManifestFilename() string {
	if c == nil || c.Manifest == nil || c.Manifest.Filename == "" {
		return DefaultManifestFilename
	}
	return c.Manifest.Filename
}

// GetBuildPropsFilename returns the build settings file name.
func (c *Config) GetBuildPropsFilename() string {
	if c == nil || c.BuildProps == nil || c.BuildProps.Filename == "" {
		return DefaultBuildPropsFilename
	}
	return c.BuildProps.Filename
}

// GetPin returns the pinned dependency. A pin section with an empty name
// disables pinning; a missing section yields the default pin.
func (c *Config) GetPin() PinConfig {
	if c == nil || c.Pin == nil {
		return PinConfig{Name: DefaultPinName, Version: DefaultPinVersion}
	}
	return *c.Pin
}

// GetWorkers returns the scan worker count.
func (c *Config) GetWorkers() int {
	if c == nil || c.Scan == nil || c.Scan.Workers == 0 {
		return DefaultWorkers
	}
	return c.Scan.Workers
}

// GetTemplatesPath returns the template store location. SCAFSLN_TEMPLATES
// wins over the config file; without either the store lives in the user
// config directory.
func (c *Config) GetTemplatesPath() string {
	if env := os.Getenv(TemplatesEnvVar); env != "" {
		return filepath.Clean(env)
	}
	if c != nil && c.Templates != nil && c.Templates.Path != "" {
		return c.Templates.Path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "scafsln", "templates.json")
}

// GetTheme returns the prompt theme name.
func (c *Config) GetTheme() string {
	if c == nil || c.Theme == "" {
		return DefaultTheme
	}
	return c.Theme
}

// ConfigFilePerm is used when writing a configuration file.
const ConfigFilePerm = core.PermFile
