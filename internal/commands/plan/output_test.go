package plan

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/indaco/scafsln/internal/cpm"
	"github.com/indaco/scafsln/internal/operations"
	"github.com/indaco/scafsln/internal/printer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  OutputFormat
	}{
		{"text", FormatText},
		{"json", FormatJSON},
		{"table", FormatTable},
		{"", FormatText},
		{"yaml", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseOutputFormat(tt.input); got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func sampleResult() *operations.Result {
	return &operations.Result{
		Root:        "/sln",
		DryRun:      true,
		Descriptors: []string{"A/A.csproj", "B/B.csproj"},
		References:  3,
		Entries:     []cpm.Entry{{Name: "Newtonsoft.Json", Version: "13.0.3"}},
		Files: []operations.FileChanges{
			{RelPath: "A/A.csproj", Changes: []cpm.Change{
				{Name: "Newtonsoft.Json", Action: cpm.ActionOverride, Declared: "13.0.1", Manifest: "13.0.3"},
			}},
			{RelPath: "B/B.csproj", Changes: []cpm.Change{
				{Name: "Newtonsoft.Json", Action: cpm.ActionInherit, Declared: "13.0.3", Manifest: "13.0.3"},
				{Name: "Ranged", Action: cpm.ActionConstrained, Declared: "1.*"},
			}},
		},
		Unresolved:    []string{"Ranged"},
		CaseConflicts: []cpm.CaseConflict{{Names: []string{"Serilog", "serilog"}}},
		Manifest:      operations.Artifact{RelPath: "Directory.Packages.props", Changed: true},
		BuildProps:    operations.Artifact{RelPath: "Directory.Build.props", Existed: true},
	}
}

func TestFormatter_Text(t *testing.T) {
	printer.SetNoColor(true)
	out, err := NewFormatter(FormatText).FormatResult(sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"Directory.Packages.props:",
		"Newtonsoft.Json 13.0.3",
		"Newtonsoft.Json: VersionOverride 13.0.1 (manifest has 13.0.3)",
		"Newtonsoft.Json: remove Version 13.0.3",
		"Ranged: VersionOverride 1.* (not a plain version)",
		"Ranged has no plain version",
		"Serilog, serilog",
		"2 project files, 1 packages, 3 changes | manifest: create | build props: unchanged",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatter_Table(t *testing.T) {
	out, err := NewFormatter(FormatTable).FormatResult(sampleResult())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "PACKAGE") || !strings.Contains(out, "constrained") {
		t.Errorf("unexpected table:\n%s", out)
	}
}

func TestFormatter_JSON(t *testing.T) {
	out, err := NewFormatter(FormatJSON).FormatResult(sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Entries []struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"entries"`
		Files []struct {
			Path    string `json:"path"`
			Changes []struct {
				Action string `json:"action"`
			} `json:"changes"`
		} `json:"files"`
		CaseConflicts [][]string `json:"case_conflicts"`
		Manifest      struct {
			Changed bool `json:"changed"`
		} `json:"manifest"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}

	if len(decoded.Entries) != 1 || decoded.Entries[0].Version != "13.0.3" {
		t.Errorf("entries = %+v", decoded.Entries)
	}
	if len(decoded.Files) != 2 || decoded.Files[1].Changes[1].Action != "constrained" {
		t.Errorf("files = %+v", decoded.Files)
	}
	if len(decoded.CaseConflicts) != 1 || !decoded.Manifest.Changed {
		t.Errorf("case conflicts = %v, manifest changed = %v", decoded.CaseConflicts, decoded.Manifest.Changed)
	}
}

func TestFormatter_JSON_EmptyListsAreArrays(t *testing.T) {
	out, err := NewFormatter(FormatJSON).FormatResult(&operations.Result{Root: "/empty"})
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"entries": []`, `"files": []`, `"unresolved": []`} {
		if !strings.Contains(out, key) {
			t.Errorf("output missing %s:\n%s", key, out)
		}
	}
}
