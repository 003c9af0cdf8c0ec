package cpm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/indaco/scafsln/internal/msbuild"
)

// project renders a descriptor with one PackageReference per name/version pair.
func project(pairs ...string) string {
	var sb strings.Builder
	sb.WriteString("<Project Sdk=\"Microsoft.NET.Sdk\">\n  <ItemGroup>\n")
	for i := 0; i+1 < len(pairs); i += 2 {
		fmt.Fprintf(&sb, "    <PackageReference Include=%q Version=%q />\n", pairs[i], pairs[i+1])
	}
	sb.WriteString("  </ItemGroup>\n</Project>\n")
	return sb.String()
}

func mustParse(t *testing.T, path, content string) *msbuild.Document {
	t.Helper()
	doc, err := msbuild.Parse(path, []byte(content))
	if err != nil {
		t.Fatalf("Parse(%s): %v", path, err)
	}
	return doc
}

func ref(name, version, source string, constrained bool) PackageReference {
	return PackageReference{Name: name, Version: version, Source: source, Constrained: constrained}
}
