package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/scafsln/internal/core"
	"github.com/pelletier/go-toml/v2"
)

// FileOpener abstracts file opening operations for testability.
type FileOpener interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// FileWriter abstracts file writing operations for testability.
type FileWriter interface {
	WriteFile(file *os.File, data []byte) (int, error)
}

// ConfigSaver writes configuration files with injected dependencies.
type ConfigSaver struct {
	marshaler  core.Marshaler
	fileOpener FileOpener
	fileWriter FileWriter
}

type osFileOpener struct{}

func (o *osFileOpener) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

type osFileWriter struct{}

func (w *osFileWriter) WriteFile(file *os.File, data []byte) (int, error) {
	return file.Write(data)
}

// formatMarshaler picks YAML or TOML from the target file extension.
type formatMarshaler struct {
	toml bool
}

func (m formatMarshaler) Marshal(v any) ([]byte, error) {
	if m.toml {
		return toml.Marshal(v)
	}
	return yaml.Marshal(v)
}

// NewConfigSaver creates a ConfigSaver with the given dependencies.
// A nil marshaler selects YAML or TOML by file extension; other nil
// dependencies fall back to the os package.
func NewConfigSaver(marshaler core.Marshaler, opener FileOpener, writer FileWriter) *ConfigSaver {
	if opener == nil {
		opener = &osFileOpener{}
	}
	if writer == nil {
		writer = &osFileWriter{}
	}
	return &ConfigSaver{
		marshaler:  marshaler,
		fileOpener: opener,
		fileWriter: writer,
	}
}

// SaveTo writes cfg to configFile, truncating any previous content.
func (s *ConfigSaver) SaveTo(cfg *Config, configFile string) error {
	marshaler := s.marshaler
	if marshaler == nil {
		marshaler = formatMarshaler{toml: strings.EqualFold(filepath.Ext(configFile), ".toml")}
	}

	data, err := marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}

	file, err := s.fileOpener.OpenFile(configFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open config file %q: %w", configFile, err)
	}
	defer file.Close()

	if _, err := s.fileWriter.WriteFile(file, data); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}
	return nil
}

var defaultConfigSaver = NewConfigSaver(nil, nil, nil)

// SaveConfigFn writes a configuration file. Tests replace it.
var SaveConfigFn = func(cfg *Config, path string) error {
	return defaultConfigSaver.SaveTo(cfg, path)
}
