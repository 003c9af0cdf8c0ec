package discovery

// Descriptor is a project file found under the discovery root.
type Descriptor struct {
	// Name is the project name (the file name without extension).
	Name string

	// Path is the full path to the descriptor.
	Path string

	// RelPath is the path relative to the discovery root.
	RelPath string

	// Dir is the directory containing the descriptor.
	Dir string
}

// Result is the outcome of a discovery walk.
type Result struct {
	// Root is the directory that was walked.
	Root string

	// Descriptors are listed in walk order: entries of a directory sorted
	// by name, files and subdirectories interleaved.
	Descriptors []Descriptor
}

// IsEmpty returns true if no descriptors were found.
func (r *Result) IsEmpty() bool {
	return len(r.Descriptors) == 0
}

// Paths returns the descriptor paths in walk order.
func (r *Result) Paths() []string {
	paths := make([]string, 0, len(r.Descriptors))
	for _, d := range r.Descriptors {
		paths = append(paths, d.Path)
	}
	return paths
}

// skipDirs are never descended into.
var skipDirs = []string{"bin", "obj", "node_modules"}
