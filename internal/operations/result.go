package operations

import (
	"github.com/indaco/scafsln/internal/cpm"
)

// Artifact is a generated file at the solution root.
type Artifact struct {
	Path    string
	RelPath string
	// Existed is true when the file was present before the run.
	Existed bool
	// Changed is true when the content differs from what is on disk. The
	// file is written only when Changed and the run is not a dry run.
	Changed bool
}

// FileChanges lists the declarations rewritten in one descriptor.
type FileChanges struct {
	Path    string
	RelPath string
	Changes []cpm.Change
}

// Result summarizes a centralization run.
type Result struct {
	Root   string
	DryRun bool

	// Descriptors are the relative paths of every scanned descriptor.
	Descriptors []string

	// References is the number of declarations scanned.
	References int

	// Files holds the descriptors that were (or would be) rewritten.
	Files []FileChanges

	// Entries are the manifest contents in manifest order.
	Entries []cpm.Entry

	// Unresolved names were declared only with constrained versions.
	Unresolved []string

	// CaseConflicts are names that differ only by case.
	CaseConflicts []cpm.CaseConflict

	// Mismatches are plain declarations that keep a VersionOverride.
	Mismatches []cpm.Mismatch

	Manifest   Artifact
	BuildProps Artifact
}

// ChangeCount returns the number of rewritten declarations.
func (r *Result) ChangeCount() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Changes)
	}
	return n
}

// IsNoop reports whether the run left every file as it was.
func (r *Result) IsNoop() bool {
	return len(r.Files) == 0 && !r.Manifest.Changed && !r.BuildProps.Changed
}
