package plan

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/indaco/scafsln/internal/cpm"
	"github.com/indaco/scafsln/internal/operations"
	"github.com/indaco/scafsln/internal/printer"
)

// Formatter renders a dry-run result.
type Formatter struct {
	format OutputFormat
}

// NewFormatter creates a new Formatter with the specified output format.
func NewFormatter(format OutputFormat) *Formatter {
	return &Formatter{format: format}
}

// FormatResult formats result for display.
func (f *Formatter) FormatResult(result *operations.Result) (string, error) {
	switch f.format {
	case FormatJSON:
		return f.formatJSON(result)
	case FormatTable:
		return f.formatTable(result), nil
	default:
		return f.formatText(result), nil
	}
}

func describeChange(c cpm.Change) string {
	switch c.Action {
	case cpm.ActionInherit:
		return fmt.Sprintf("%s: remove Version %s (matches manifest)", c.Name, c.Declared)
	case cpm.ActionOverride:
		return fmt.Sprintf("%s: VersionOverride %s (manifest has %s)", c.Name, c.Declared, c.Manifest)
	default:
		return fmt.Sprintf("%s: VersionOverride %s (not a plain version)", c.Name, c.Declared)
	}
}

func artifactState(a operations.Artifact) string {
	switch {
	case !a.Changed:
		return "unchanged"
	case a.Existed:
		return "update"
	default:
		return "create"
	}
}

func (f *Formatter) formatText(result *operations.Result) string {
	var sb strings.Builder

	sb.WriteString(printer.Info("Central Package Management Plan"))
	sb.WriteString("\n")
	sb.WriteString(printer.Rule())
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Root: %s\n\n", printer.Bold(result.Root))

	if len(result.Entries) > 0 {
		fmt.Fprintf(&sb, "%s\n", printer.Info(result.Manifest.RelPath+":"))
		for _, e := range result.Entries {
			fmt.Fprintf(&sb, "  %s %s\n", e.Name, printer.Faint(e.Version))
		}
		sb.WriteString("\n")
	}

	if len(result.Files) > 0 {
		sb.WriteString(printer.Info("Project files:"))
		sb.WriteString("\n")
		for _, file := range result.Files {
			fmt.Fprintf(&sb, "  %s\n", file.RelPath)
			for _, c := range file.Changes {
				fmt.Fprintf(&sb, "    - %s\n", describeChange(c))
			}
		}
		sb.WriteString("\n")
	}

	if len(result.Unresolved) > 0 || len(result.CaseConflicts) > 0 {
		sb.WriteString(printer.Warning("Warnings:"))
		sb.WriteString("\n")
		for _, name := range result.Unresolved {
			fmt.Fprintf(&sb, "  %s %s has no plain version; left out of the manifest\n", printer.Warning(printer.SymbolWarning), name)
		}
		for _, c := range result.CaseConflicts {
			fmt.Fprintf(&sb, "  %s names differ only by case: %s\n", printer.Warning(printer.SymbolWarning), strings.Join(c.Names, ", "))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(printer.Rule())
	sb.WriteString("\n")
	sb.WriteString(formatSummary(result))
	return sb.String()
}

func (f *Formatter) formatTable(result *operations.Result) string {
	var sb strings.Builder

	if len(result.Entries) > 0 {
		fmt.Fprintf(&sb, "%-45s %-20s\n", "PACKAGE", "VERSION")
		sb.WriteString(strings.Repeat("-", 66) + "\n")
		for _, e := range result.Entries {
			fmt.Fprintf(&sb, "%-45s %-20s\n", e.Name, e.Version)
		}
		sb.WriteString("\n")
	}

	if len(result.Files) > 0 {
		fmt.Fprintf(&sb, "%-35s %-35s %-12s %-15s\n", "FILE", "PACKAGE", "ACTION", "DECLARED")
		sb.WriteString(strings.Repeat("-", 100) + "\n")
		for _, file := range result.Files {
			for _, c := range file.Changes {
				fmt.Fprintf(&sb, "%-35s %-35s %-12s %-15s\n", file.RelPath, c.Name, c.Action, c.Declared)
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(formatSummary(result))
	return sb.String()
}

func (f *Formatter) formatJSON(result *operations.Result) (string, error) {
	type jsonEntry struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}

	type jsonChange struct {
		Package  string `json:"package"`
		Action   string `json:"action"`
		Declared string `json:"declared"`
		Manifest string `json:"manifest,omitempty"`
	}

	type jsonFile struct {
		Path    string       `json:"path"`
		Changes []jsonChange `json:"changes"`
	}

	type jsonArtifact struct {
		Path    string `json:"path"`
		Existed bool   `json:"existed"`
		Changed bool   `json:"changed"`
	}

	output := struct {
		Root          string       `json:"root"`
		Descriptors   []string     `json:"descriptors"`
		References    int          `json:"references"`
		Entries       []jsonEntry  `json:"entries"`
		Files         []jsonFile   `json:"files"`
		Unresolved    []string     `json:"unresolved"`
		CaseConflicts [][]string   `json:"case_conflicts"`
		Manifest      jsonArtifact `json:"manifest"`
		BuildProps    jsonArtifact `json:"build_props"`
	}{
		Root:          result.Root,
		Descriptors:   append([]string{}, result.Descriptors...),
		References:    result.References,
		Entries:       make([]jsonEntry, len(result.Entries)),
		Files:         make([]jsonFile, len(result.Files)),
		Unresolved:    append([]string{}, result.Unresolved...),
		CaseConflicts: make([][]string, len(result.CaseConflicts)),
		Manifest:      jsonArtifact{result.Manifest.RelPath, result.Manifest.Existed, result.Manifest.Changed},
		BuildProps:    jsonArtifact{result.BuildProps.RelPath, result.BuildProps.Existed, result.BuildProps.Changed},
	}

	for i, e := range result.Entries {
		output.Entries[i] = jsonEntry{Name: e.Name, Version: e.Version}
	}
	for i, file := range result.Files {
		jf := jsonFile{Path: file.RelPath, Changes: make([]jsonChange, len(file.Changes))}
		for j, c := range file.Changes {
			jf.Changes[j] = jsonChange{Package: c.Name, Action: string(c.Action), Declared: c.Declared, Manifest: c.Manifest}
		}
		output.Files[i] = jf
	}
	for i, c := range result.CaseConflicts {
		output.CaseConflicts[i] = c.Names
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format plan as JSON: %w", err)
	}
	return string(data), nil
}

func formatSummary(result *operations.Result) string {
	return fmt.Sprintf("%d project files, %d packages, %d changes | manifest: %s | build props: %s",
		len(result.Descriptors), len(result.Entries), result.ChangeCount(),
		artifactState(result.Manifest), artifactState(result.BuildProps))
}
