// Package cpm implements central package management for a solution tree:
// it scans PackageReference declarations out of project descriptors,
// aggregates them into one version per dependency, rewrites descriptors to
// inherit that version (or to carry an explicit VersionOverride) and renders
// the central Directory.Packages.props manifest.
package cpm
