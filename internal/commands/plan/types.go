package plan

// OutputFormat controls how a plan is displayed.
type OutputFormat string

const (
	// FormatText outputs human-readable text.
	FormatText OutputFormat = "text"

	// FormatJSON outputs machine-readable JSON.
	FormatJSON OutputFormat = "json"

	// FormatTable outputs tabular data.
	FormatTable OutputFormat = "table"
)

// ParseOutputFormat converts a string to OutputFormat. Unknown values yield
// FormatText.
func ParseOutputFormat(s string) OutputFormat {
	switch s {
	case "json":
		return FormatJSON
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}
