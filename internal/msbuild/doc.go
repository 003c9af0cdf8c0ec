// Package msbuild reads and edits MSBuild project files (*.csproj,
// Directory.Packages.props and friends) as XML documents that round-trip:
// comments, whitespace, the XML declaration and attribute order of every node
// that is not edited are written back as they were read.
package msbuild
