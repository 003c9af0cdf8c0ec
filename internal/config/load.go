package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// TemplatesEnvVar overrides the template store path.
const TemplatesEnvVar = "SCAFSLN_TEMPLATES"

// DefaultConfigFiles are searched, in order, in the working directory.
var DefaultConfigFiles = []string{".scafsln.yaml", ".scafsln.yml", ".scafsln.toml"}

// LoadConfigFn is the configuration loader used by the CLI. Tests replace it.
var LoadConfigFn = Load

// Load reads the configuration from path, or from the first of
// DefaultConfigFiles present in the working directory when path is empty.
// Without any file the defaults are returned. Missing sections in a file are
// filled from the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		for _, candidate := range DefaultConfigFiles {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %q does not exist", path)
		}
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg, err := Decode(path, data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses data as YAML, or as TOML when path ends in ".toml". Unknown
// keys are rejected.
func Decode(path string, data []byte) (*Config, error) {
	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config %q: %w", path, err)
		}
	} else if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %q: %w", path, err)
		}
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Descriptors == nil {
		cfg.Descriptors = def.Descriptors
	} else if len(cfg.Descriptors.Extensions) == 0 {
		cfg.Descriptors.Extensions = def.Descriptors.Extensions
	}
	if cfg.Manifest == nil || cfg.Manifest.Filename == "" {
		cfg.Manifest = def.Manifest
	}
	if cfg.BuildProps == nil || cfg.BuildProps.Filename == "" {
		cfg.BuildProps = def.BuildProps
	}
	if cfg.Pin == nil {
		cfg.Pin = def.Pin
	}
	if cfg.Scan == nil {
		cfg.Scan = def.Scan
	}
	if cfg.Theme == "" {
		cfg.Theme = def.Theme
	}
}
