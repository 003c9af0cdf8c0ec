package cpm

import (
	"context"
	"encoding/xml"
	"errors"
	"io/fs"
	"strings"

	"github.com/indaco/scafsln/internal/msbuild"
)

// RenderManifest renders a Directory.Packages.props enabling central package
// management with one PackageVersion per entry, in the given order.
func RenderManifest(entries []Entry) []byte {
	var sb strings.Builder
	sb.WriteString("<Project>\n")
	sb.WriteString("  <PropertyGroup>\n")
	sb.WriteString("    <ManagePackageVersionsCentrally>true</ManagePackageVersionsCentrally>\n")
	sb.WriteString("  </PropertyGroup>\n")
	sb.WriteString("  <ItemGroup>\n")
	for _, e := range entries {
		sb.WriteString(`    <PackageVersion Include="`)
		writeAttrValue(&sb, e.Name)
		sb.WriteString(`" Version="`)
		writeAttrValue(&sb, e.Version)
		sb.WriteString("\" />\n")
	}
	sb.WriteString("  </ItemGroup>\n")
	sb.WriteString("</Project>\n")
	return []byte(sb.String())
}

func writeAttrValue(sb *strings.Builder, s string) {
	// strings.Builder never fails.
	_ = xml.EscapeText(sb, []byte(s))
}

// ManifestEntries returns the PackageVersion entries of a parsed manifest in
// document order.
func ManifestEntries(doc *msbuild.Document) []Entry {
	var out []Entry
	for _, el := range doc.ElementsNamed(ElementPackageVersion) {
		name, ok := el.Attr(AttrInclude)
		if !ok {
			continue
		}
		version, ok := el.Attr(AttrVersion)
		if !ok {
			continue
		}
		out = append(out, Entry{Name: name, Version: version})
	}
	return out
}

// ReadManifest loads the manifest at path. A missing manifest is not an
// error: exists is false and entries is empty.
func ReadManifest(ctx context.Context, editor *msbuild.Editor, path string) (entries []Entry, exists bool, err error) {
	doc, err := editor.Load(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return ManifestEntries(doc), true, nil
}
