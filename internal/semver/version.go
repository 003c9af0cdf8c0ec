package semver

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind ranks how well a version text parses. Lower kinds are stricter
// formats and are always preferred over higher ones.
type Kind int

const (
	// KindConventional is a dotted numeric version with one to four
	// components, e.g. "1.2.3.4".
	KindConventional Kind = iota
	// KindSemantic is a dotted numeric version followed by a pre-release
	// label, e.g. "1.2.3-beta.1".
	KindSemantic
	// KindText is anything else; it is only ever compared as text.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindConventional:
		return "conventional"
	case KindSemantic:
		return "semantic"
	default:
		return "text"
	}
}

// maxComponents is the number of numeric components a version may carry.
const maxComponents = 4

// maxVersionLength bounds the input handed to the regular expressions.
// Longer texts are treated as KindText.
const maxVersionLength = 128

var (
	conventionalRegex = regexp.MustCompile(`^\d+(?:\.\d+){0,3}$`)

	// semanticRegex captures up to four numeric components and an optional
	// pre-release label.
	semanticRegex = regexp.MustCompile(
		`^(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:\.(\d+))?` + // numeric components
			`(?:-([0-9A-Za-z\-\.]+))?$`, // optional pre-release label
	)
)

// Version is the parsed form of a version text. Parsing never fails: texts
// that match neither numeric format become KindText.
type Version struct {
	// Raw is the text as declared.
	Raw string
	// Core is Raw without build metadata.
	Core string
	// Kind is the strictest format Core matches.
	Kind Kind
	// Parts holds the numeric components; missing components are zero.
	Parts [maxComponents]int
	// Label is the pre-release label without the leading dash.
	Label string
}

// String returns the declared text.
func (v Version) String() string {
	return v.Raw
}

// HasLabel reports whether the version carries a pre-release label.
func (v Version) HasLabel() bool {
	return v.Label != ""
}

// Parse classifies text and extracts its numeric components.
//
// Supported shapes:
//   - "13", "13.0", "13.0.3", "13.0.3.1" (conventional)
//   - "2.0.0-rc1", "1.0-beta.2" (semantic)
//   - "1.0.0+sha.abc" (build metadata is stripped before matching)
//
// Components that overflow int demote the text to KindText.
func Parse(text string) Version {
	v := Version{Raw: text, Core: StripMetadata(text), Kind: KindText}
	if len(v.Core) > maxVersionLength {
		return v
	}

	m := semanticRegex.FindStringSubmatch(v.Core)
	if m == nil {
		return v
	}
	for i := range maxComponents {
		if m[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return v
		}
		v.Parts[i] = n
	}
	v.Label = m[5]

	if conventionalRegex.MatchString(v.Core) {
		v.Kind = KindConventional
	} else {
		v.Kind = KindSemantic
	}
	return v
}

// StripMetadata removes build metadata (everything from the first '+').
func StripMetadata(text string) string {
	if i := strings.IndexByte(text, '+'); i >= 0 {
		return text[:i]
	}
	return text
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareParts(a, b [maxComponents]int) int {
	for i := range maxComponents {
		if c := compareInt(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// compareFold compares two texts ignoring case.
func compareFold(a, b string) int {
	return strings.Compare(strings.ToUpper(a), strings.ToUpper(b))
}
