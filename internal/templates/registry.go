package templates

import (
	"embed"
	"fmt"
	"slices"
	"strings"
)

// Template names.
const (
	NameGitignore           = "gitignore"
	NameEditorconfig        = "editorconfig"
	NameCopilotInstructions = "copilot-instructions"
	NameBuildProps          = "build-props"
)

//go:embed defaults
var defaultsFS embed.FS

// Template describes one scaffolded file.
type Template struct {
	Name        string
	Description string
	// Target is the output path relative to the solution root. Empty for
	// templates whose file name is configurable.
	Target string
	// file is the embedded default content.
	file string
}

// AllTemplates returns all available templates.
func AllTemplates() []Template {
	return []Template{
		{
			Name:        NameGitignore,
			Description: "Ignore rules for .NET build output, IDE state and packages",
			Target:      ".gitignore",
			file:        "defaults/gitignore",
		},
		{
			Name:        NameEditorconfig,
			Description: "C# formatting, naming and analyzer settings",
			Target:      ".editorconfig",
			file:        "defaults/editorconfig",
		},
		{
			Name:        NameCopilotInstructions,
			Description: "GitHub Copilot repository instructions",
			Target:      ".github/copilot-instructions.md",
			file:        "defaults/copilot-instructions.md",
		},
		{
			Name:        NameBuildProps,
			Description: "Shared build settings (text/template, receives .AnalyzerPackage)",
			file:        "defaults/build-props.xml",
		},
	}
}

// TemplateNames returns the names of all available templates.
func TemplateNames() []string {
	templates := AllTemplates()
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	return names
}

// GetTemplate returns the template with the given name, or an error if not found.
func GetTemplate(name string) (*Template, error) {
	for _, t := range AllTemplates() {
		if t.Name == name {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unknown template %q (available: %s)", name, strings.Join(TemplateNames(), ", "))
}

// IsValidTemplate checks if the given name is a valid template.
func IsValidTemplate(name string) bool {
	return slices.Contains(TemplateNames(), name)
}

// Default returns the built-in content of the named template.
func Default(name string) (string, error) {
	t, err := GetTemplate(name)
	if err != nil {
		return "", err
	}
	data, err := defaultsFS.ReadFile(t.file)
	if err != nil {
		return "", fmt.Errorf("missing built-in template %q: %w", name, err)
	}
	return string(data), nil
}
