package cpm

import "testing"

func TestDetectMismatches(t *testing.T) {
	refs := []PackageReference{
		ref("A", "2.0.0", "/sln/z.csproj", false),
		ref("A", "1.0.0", "/sln/y.csproj", false),
		ref("B", "1.0.0", "/sln/y.csproj", false),
		ref("B", "0.9.0", "/sln/a.csproj", false),
		ref("C", "[1,2)", "/sln/a.csproj", true),
	}
	table := Aggregate(refs, AggregateOptions{})

	got := DetectMismatches(refs, table)
	want := []Mismatch{
		{Source: "/sln/a.csproj", Name: "B", ExpectedVersion: "1.0.0", ActualVersion: "0.9.0"},
		{Source: "/sln/y.csproj", Name: "A", ExpectedVersion: "2.0.0", ActualVersion: "1.0.0"},
	}
	if len(got) != len(want) {
		t.Fatalf("DetectMismatches = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if DetectMismatches(refs, nil) != nil {
		t.Error("nil table should yield nil")
	}
}
