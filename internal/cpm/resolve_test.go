package cpm

import (
	"strings"
	"testing"
)

func TestAggregate_HighestPlainWins(t *testing.T) {
	refs := []PackageReference{
		ref("Newtonsoft.Json", "13.0.1", "a", false),
		ref("Serilog", "3.0.0", "a", false),
		ref("Newtonsoft.Json", "13.0.3", "b", false),
		ref("Newtonsoft.Json", "[13.0.1,14.0.0)", "c", true),
	}

	table := Aggregate(refs, AggregateOptions{})

	res, ok := table.Get("Newtonsoft.Json")
	if !ok || !res.Resolved || res.Version != "13.0.3" || res.Source != "b" {
		t.Errorf("Newtonsoft.Json = %+v", res)
	}
	if got := strings.Join(table.Names(), ","); got != "Newtonsoft.Json,Serilog" {
		t.Errorf("Names() = %q", got)
	}
}

func TestAggregate_TieKeepsFirstSeen(t *testing.T) {
	refs := []PackageReference{
		ref("Pkg", "1.0", "a", false),
		ref("Pkg", "1.0.0", "b", false),
	}
	res, _ := Aggregate(refs, AggregateOptions{}).Get("Pkg")
	if res.Version != "1.0" || res.Source != "a" {
		t.Errorf("got %+v, want first seen 1.0 from a", res)
	}
}

func TestAggregate_OnlyConstrainedIsUnresolved(t *testing.T) {
	refs := []PackageReference{
		ref("Ranged", "[1.0,2.0)", "a", true),
		ref("Ranged", "1.*", "b", true),
	}
	table := Aggregate(refs, AggregateOptions{})

	res, ok := table.Get("Ranged")
	if !ok || res.Resolved || res.Version != "" {
		t.Errorf("Ranged = %+v, want unresolved", res)
	}
	if len(table.Entries()) != 0 {
		t.Errorf("Entries() = %+v, want none", table.Entries())
	}
	if got := table.Unresolved(); len(got) != 1 || got[0] != "Ranged" {
		t.Errorf("Unresolved() = %v", got)
	}
}

func TestAggregate_Pin(t *testing.T) {
	pin := Pin{Name: "Microsoft.CodeAnalysis.NetAnalyzers", Version: "9.0.0"}

	t.Run("appended when absent", func(t *testing.T) {
		table := Aggregate([]PackageReference{ref("A", "1.0.0", "a", false)}, AggregateOptions{Pin: pin})
		entries := table.Entries()
		if len(entries) != 2 || entries[1] != (Entry{Name: pin.Name, Version: "9.0.0"}) {
			t.Errorf("Entries() = %+v", entries)
		}
	})

	t.Run("overrides declared and keeps position", func(t *testing.T) {
		refs := []PackageReference{
			ref(pin.Name, "10.0.0", "a", false),
			ref("A", "1.0.0", "a", false),
		}
		table := Aggregate(refs, AggregateOptions{Pin: pin})
		entries := table.Entries()
		if entries[0] != (Entry{Name: pin.Name, Version: "9.0.0"}) {
			t.Errorf("Entries()[0] = %+v", entries[0])
		}
		res, _ := table.Get(pin.Name)
		if !res.Pinned {
			t.Error("expected Pinned")
		}
	})

	t.Run("empty tree yields only the pin", func(t *testing.T) {
		entries := Aggregate(nil, AggregateOptions{Pin: pin}).Entries()
		if len(entries) != 1 || entries[0].Name != pin.Name {
			t.Errorf("Entries() = %+v", entries)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		if n := Aggregate(nil, AggregateOptions{}).Len(); n != 0 {
			t.Errorf("Len() = %d, want 0", n)
		}
	})
}

func TestAggregate_Seed(t *testing.T) {
	seed := []Entry{
		{Name: "Kept", Version: "2.0.0"},
		{Name: "Ranged", Version: "[1.0,2.0)"},
		{Name: "Upgraded", Version: "1.0.0"},
	}
	refs := []PackageReference{
		ref("New", "1.0.0", "a", false),
		ref("Upgraded", "1.5.0", "a", false),
		ref("Kept", "1.0.0", "b", false),
	}

	table := Aggregate(refs, AggregateOptions{Seed: seed})

	want := []Entry{
		{Name: "Kept", Version: "2.0.0"},
		{Name: "Ranged", Version: "[1.0,2.0)"},
		{Name: "Upgraded", Version: "1.5.0"},
		{Name: "New", Version: "1.0.0"},
	}
	got := table.Entries()
	if len(got) != len(want) {
		t.Fatalf("Entries() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entries()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if res, _ := table.Get("Ranged"); res.Source != SourceManifest {
		t.Errorf("Ranged source = %q", res.Source)
	}
}

func TestAggregate_CaseConflicts(t *testing.T) {
	refs := []PackageReference{
		ref("Newtonsoft.Json", "13.0.1", "a", false),
		ref("newtonsoft.json", "12.0.0", "b", false),
		ref("Serilog", "3.0.0", "a", false),
	}
	table := Aggregate(refs, AggregateOptions{})

	if table.Len() != 3 {
		t.Errorf("Len() = %d, want names kept distinct", table.Len())
	}
	conflicts := table.CaseConflicts()
	if len(conflicts) != 1 || strings.Join(conflicts[0].Names, ",") != "Newtonsoft.Json,newtonsoft.json" {
		t.Errorf("CaseConflicts() = %+v", conflicts)
	}
}
