package cpm

import (
	"context"
	"errors"
	"testing"

	"github.com/indaco/scafsln/internal/core"
	"github.com/indaco/scafsln/internal/msbuild"
)

func TestRenderManifest(t *testing.T) {
	got := string(RenderManifest([]Entry{
		{Name: "Newtonsoft.Json", Version: "13.0.3"},
		{Name: "Microsoft.CodeAnalysis.NetAnalyzers", Version: "9.0.0"},
	}))

	want := `<Project>
  <PropertyGroup>
    <ManagePackageVersionsCentrally>true</ManagePackageVersionsCentrally>
  </PropertyGroup>
  <ItemGroup>
    <PackageVersion Include="Newtonsoft.Json" Version="13.0.3" />
    <PackageVersion Include="Microsoft.CodeAnalysis.NetAnalyzers" Version="9.0.0" />
  </ItemGroup>
</Project>
`
	if got != want {
		t.Errorf("RenderManifest mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderManifest_EscapesAndRoundTrips(t *testing.T) {
	entries := []Entry{{Name: `Odd&"Name`, Version: "1.0.0"}, {Name: "Range", Version: "[1.0,2.0)"}}
	doc, err := msbuild.Parse("m.props", RenderManifest(entries))
	if err != nil {
		t.Fatalf("rendered manifest does not parse: %v", err)
	}
	got := ManifestEntries(doc)
	if len(got) != 2 || got[0] != entries[0] || got[1] != entries[1] {
		t.Errorf("ManifestEntries = %+v, want %+v", got, entries)
	}
}

func TestReadManifest(t *testing.T) {
	ctx := context.Background()
	mfs := core.NewMockFileSystem()
	mfs.SetFile("/sln/Directory.Packages.props", RenderManifest([]Entry{{Name: "A", Version: "1.0.0"}}))
	mfs.SetFile("/bad/Directory.Packages.props", []byte("<Project"))
	ed := msbuild.NewEditor(mfs)

	entries, exists, err := ReadManifest(ctx, ed, "/sln/Directory.Packages.props")
	if err != nil || !exists || len(entries) != 1 {
		t.Errorf("ReadManifest = %+v, %v, %v", entries, exists, err)
	}

	entries, exists, err = ReadManifest(ctx, ed, "/none/Directory.Packages.props")
	if err != nil || exists || entries != nil {
		t.Errorf("missing manifest = %+v, %v, %v", entries, exists, err)
	}

	if _, _, err := ReadManifest(ctx, ed, "/bad/Directory.Packages.props"); !errors.Is(err, core.ErrParse) {
		t.Errorf("expected ErrParse, got %v", err)
	}
}
