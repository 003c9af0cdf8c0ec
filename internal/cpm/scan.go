package cpm

import (
	"context"

	"github.com/indaco/scafsln/internal/msbuild"
	"github.com/indaco/scafsln/internal/semver"
)

// MSBuild names used by central package management.
const (
	ElementPackageReference = "PackageReference"
	ElementPackageVersion   = "PackageVersion"
	AttrInclude             = "Include"
	AttrVersion             = "Version"
	AttrVersionOverride     = "VersionOverride"
)

// SourceManifest marks references that were read from an existing manifest.
const SourceManifest = "manifest"

// PackageReference is one dependency declaration read from a descriptor.
type PackageReference struct {
	Name        string
	Version     string
	Constrained bool
	// Source is the descriptor path, or SourceManifest.
	Source string
}

// declaration pairs a reference with the element it was read from.
type declaration struct {
	el  *msbuild.Element
	ref PackageReference
}

// declarations returns every PackageReference element carrying both an
// Include and a Version attribute, in document order.
func declarations(doc *msbuild.Document) []declaration {
	var out []declaration
	for _, el := range doc.ElementsNamed(ElementPackageReference) {
		name, ok := el.Attr(AttrInclude)
		if !ok {
			continue
		}
		version, ok := el.Attr(AttrVersion)
		if !ok {
			continue
		}
		out = append(out, declaration{
			el: el,
			ref: PackageReference{
				Name:        name,
				Version:     version,
				Constrained: semver.IsConstrained(version),
				Source:      doc.Path,
			},
		})
	}
	return out
}

// ScanDocument returns the references declared in doc.
func ScanDocument(doc *msbuild.Document) []PackageReference {
	decls := declarations(doc)
	refs := make([]PackageReference, 0, len(decls))
	for _, d := range decls {
		refs = append(refs, d.ref)
	}
	return refs
}

// Scanner reads references from descriptors on disk.
type Scanner struct {
	editor *msbuild.Editor
}

// NewScanner creates a Scanner that loads descriptors through editor.
func NewScanner(editor *msbuild.Editor) *Scanner {
	return &Scanner{editor: editor}
}

// Scan loads the descriptor at path and returns its references. A malformed
// descriptor fails with *core.ParseError.
func (s *Scanner) Scan(ctx context.Context, path string) ([]PackageReference, error) {
	doc, err := s.editor.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return ScanDocument(doc), nil
}
