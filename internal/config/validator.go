package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/indaco/scafsln/internal/semver"
)

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	// Category is the validation category (e.g., "Descriptors", "Pin").
	Category string

	// Passed indicates if the check passed.
	Passed bool

	// Message provides details about the validation result.
	Message string

	// Warning indicates if this is a warning rather than an error.
	Warning bool
}

// Validator checks a loaded configuration for values the engine cannot use.
type Validator struct {
	cfg         *Config
	validations []ValidationResult
}

// NewValidator creates a new configuration validator.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// Validate runs all validation checks and returns the results.
func (v *Validator) Validate() []ValidationResult {
	v.validations = make([]ValidationResult, 0)

	v.validateDescriptors()
	v.validateFilenames()
	v.validatePin()
	v.validateScan()

	return v.validations
}

func (v *Validator) addValidation(category string, passed bool, message string, warning bool) {
	v.validations = append(v.validations, ValidationResult{
		Category: category,
		Passed:   passed,
		Message:  message,
		Warning:  warning,
	})
}

func (v *Validator) validateDescriptors() {
	for _, ext := range v.cfg.GetExtensions() {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			v.addValidation("Descriptors", false,
				fmt.Sprintf("extension %q must start with a dot", ext), false)
			return
		}
	}
	for _, pattern := range v.cfg.GetExcludePatterns() {
		if _, err := filepath.Match(pattern, ""); err != nil {
			v.addValidation("Descriptors", false,
				fmt.Sprintf("invalid exclude pattern %q: %v", pattern, err), false)
			return
		}
	}
	v.addValidation("Descriptors", true,
		fmt.Sprintf("scanning %s", strings.Join(v.cfg.GetExtensions(), ", ")), false)
}

func (v *Validator) validateFilenames() {
	for _, name := range []string{v.cfg.GetManifestFilename(), v.cfg.GetBuildPropsFilename()} {
		if name != filepath.Base(name) {
			v.addValidation("Files", false,
				fmt.Sprintf("%q must be a file name, not a path", name), false)
			return
		}
	}
	if v.cfg.GetManifestFilename() == v.cfg.GetBuildPropsFilename() {
		v.addValidation("Files", false, "manifest and build-props must use different file names", false)
		return
	}
	v.addValidation("Files", true, "generated file names are valid", false)
}

func (v *Validator) validatePin() {
	pin := v.cfg.GetPin()
	switch {
	case pin.Name == "":
		v.addValidation("Pin", true, "pinning disabled", true)
	case pin.Version == "":
		v.addValidation("Pin", false, fmt.Sprintf("pin %q has no version", pin.Name), false)
	case semver.IsConstrained(pin.Version):
		v.addValidation("Pin", false,
			fmt.Sprintf("pin version %q must be a plain version", pin.Version), false)
	default:
		v.addValidation("Pin", true, fmt.Sprintf("%s pinned to %s", pin.Name, pin.Version), false)
	}
}

func (v *Validator) validateScan() {
	if w := v.cfg.GetWorkers(); w < 1 {
		v.addValidation("Scan", false, fmt.Sprintf("workers must be at least 1, got %d", w), false)
		return
	}
	v.addValidation("Scan", true, "worker count is valid", false)
}

// HasErrors returns true if any validation failed.
func HasErrors(results []ValidationResult) bool {
	return ErrorCount(results) > 0
}

// ErrorCount returns the number of failed validations.
func ErrorCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if !r.Passed && !r.Warning {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warnings.
func WarningCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if r.Warning {
			count++
		}
	}
	return count
}

// FirstError returns the message of the first failed validation, or "".
func FirstError(results []ValidationResult) string {
	for _, r := range results {
		if !r.Passed && !r.Warning {
			return r.Category + ": " + r.Message
		}
	}
	return ""
}
