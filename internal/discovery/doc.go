// Package discovery finds the project descriptors of a solution tree. It walks
// the tree in sorted order, skipping build output, dependency caches, hidden
// directories and user-configured exclude globs, and returns every file whose
// extension marks it as a descriptor.
package discovery
