// Package templates provides the files scafsln scaffolds into a solution
// (.gitignore, .editorconfig, Copilot instructions and Directory.Build.props)
// together with a per-user JSON store of overrides for them.
package templates
