package semver

import "strings"

// constraintChars are the characters that turn a version text into a range,
// wildcard or comparison expression. Parentheses cover exclusive interval
// bounds such as "(1.0,2.0)".
const constraintChars = "*<>^~[]()"

// IsConstrained reports whether text is a constrained version expression
// rather than a plain concrete version. Any string is classifiable.
//
// Examples:
//   - "[1.0,2.0)", "*", ">=1.2", "1.*" are constrained
//   - "1.2.3", "2.0.0-rc1", "" are plain
func IsConstrained(text string) bool {
	return strings.ContainsAny(text, constraintChars)
}
