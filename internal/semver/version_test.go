package semver

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text  string
		kind  Kind
		parts [4]int
		label string
	}{
		{"13", KindConventional, [4]int{13}, ""},
		{"13.0.3", KindConventional, [4]int{13, 0, 3}, ""},
		{"1.2.3.4", KindConventional, [4]int{1, 2, 3, 4}, ""},
		{"1.0.0+build.5", KindConventional, [4]int{1}, ""},
		{"2.0.0-rc1", KindSemantic, [4]int{2}, "rc1"},
		{"1.0-beta.2", KindSemantic, [4]int{1}, "beta.2"},
		{"1.2.3.4.5", KindText, [4]int{}, ""},
		{"latest", KindText, [4]int{}, ""},
		{"", KindText, [4]int{}, ""},
		{"v1.2.3", KindText, [4]int{}, ""},
		{"99999999999999999999999.0", KindText, [4]int{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			v := Parse(tt.text)
			if v.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", v.Kind, tt.kind)
			}
			if v.Parts != tt.parts {
				t.Errorf("Parts = %v, want %v", v.Parts, tt.parts)
			}
			if v.Label != tt.label {
				t.Errorf("Label = %q, want %q", v.Label, tt.label)
			}
			if v.String() != tt.text {
				t.Errorf("String() = %q, want %q", v.String(), tt.text)
			}
		})
	}
}

func TestParse_LongInputIsText(t *testing.T) {
	text := strings.Repeat("1.", 100) + "1"
	if got := Parse(text).Kind; got != KindText {
		t.Errorf("Kind = %v, want text", got)
	}
}

func TestStripMetadata(t *testing.T) {
	tests := map[string]string{
		"1.0.0+abc":    "1.0.0",
		"1.0.0-rc+a+b": "1.0.0-rc",
		"1.0.0":        "1.0.0",
		"+only":        "",
	}
	for in, want := range tests {
		if got := StripMetadata(in); got != want {
			t.Errorf("StripMetadata(%q) = %q, want %q", in, got, want)
		}
	}
}
