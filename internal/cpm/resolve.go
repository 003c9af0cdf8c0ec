package cpm

import (
	"slices"
	"strings"

	"github.com/indaco/scafsln/internal/semver"
)

// Pin forces a dependency into the manifest at a fixed version.
// An empty Name disables it.
type Pin struct {
	Name    string
	Version string
}

// Resolution is the decision for one dependency name.
type Resolution struct {
	// Version is the authoritative version; empty when unresolved.
	Version string
	// Resolved is false when every declaration was constrained.
	Resolved bool
	// Pinned is true when Version came from the Pin.
	Pinned bool
	// Source is where Version was declared (a descriptor path,
	// SourceManifest, or "pin").
	Source string
}

// Entry is a resolved name/version pair.
type Entry struct {
	Name    string
	Version string
}

// CaseConflict lists dependency names that differ only by letter case.
// They are kept as distinct dependencies.
type CaseConflict struct {
	Names []string
}

// Table maps dependency names to resolutions in order of first encounter.
// Keys are case-sensitive.
type Table struct {
	order         []string
	entries       map[string]Resolution
	caseConflicts []CaseConflict
}

func newTable() *Table {
	return &Table{entries: make(map[string]Resolution)}
}

func (t *Table) set(name string, r Resolution) {
	if _, ok := t.entries[name]; !ok {
		t.order = append(t.order, name)
	}
	t.entries[name] = r
}

// Get returns the resolution for name.
func (t *Table) Get(name string) (Resolution, bool) {
	r, ok := t.entries[name]
	return r, ok
}

// Len returns the number of dependency names, resolved or not.
func (t *Table) Len() int {
	return len(t.order)
}

// Names returns every dependency name in table order.
func (t *Table) Names() []string {
	return slices.Clone(t.order)
}

// Entries returns the resolved dependencies in table order. These are the
// manifest contents.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.order))
	for _, name := range t.order {
		if r := t.entries[name]; r.Resolved {
			out = append(out, Entry{Name: name, Version: r.Version})
		}
	}
	return out
}

// Unresolved returns the names that have no authoritative version.
func (t *Table) Unresolved() []string {
	var out []string
	for _, name := range t.order {
		if !t.entries[name].Resolved {
			out = append(out, name)
		}
	}
	return out
}

// CaseConflicts returns groups of names that differ only by case.
func (t *Table) CaseConflicts() []CaseConflict {
	return t.caseConflicts
}

// AggregateOptions configures Aggregate.
type AggregateOptions struct {
	// Pin is forced into the table and overrides any declared version.
	Pin Pin
	// Seed holds the entries of an existing manifest. They are considered
	// before any descriptor reference, in their manifest order.
	Seed []Entry
	// Comparator orders plain versions; nil uses the default ladder.
	Comparator *semver.Comparator
}

// Aggregate merges references into a Table. For each name the highest plain
// version wins, with ties keeping the first one seen; a name declared only
// with constrained versions is unresolved, unless the seed carries a version
// for it, which is then kept verbatim.
func Aggregate(refs []PackageReference, opts AggregateOptions) *Table {
	cmp := opts.Comparator
	if cmp == nil {
		cmp = semver.NewComparator()
	}

	type group struct {
		plain       []PackageReference
		constrained []PackageReference
	}
	var order []string
	groups := make(map[string]*group)
	add := func(ref PackageReference) {
		g, ok := groups[ref.Name]
		if !ok {
			g = &group{}
			groups[ref.Name] = g
			order = append(order, ref.Name)
		}
		if ref.Constrained {
			g.constrained = append(g.constrained, ref)
		} else {
			g.plain = append(g.plain, ref)
		}
	}

	for _, e := range opts.Seed {
		add(PackageReference{
			Name:        e.Name,
			Version:     e.Version,
			Constrained: semver.IsConstrained(e.Version),
			Source:      SourceManifest,
		})
	}
	for _, ref := range refs {
		add(ref)
	}

	table := newTable()
	for _, name := range order {
		g := groups[name]
		table.set(name, resolveGroup(cmp, g.plain, g.constrained))
	}

	if opts.Pin.Name != "" {
		table.set(opts.Pin.Name, Resolution{
			Version:  opts.Pin.Version,
			Resolved: true,
			Pinned:   true,
			Source:   "pin",
		})
	}

	table.caseConflicts = findCaseConflicts(table.order)
	return table
}

func resolveGroup(cmp *semver.Comparator, plain, constrained []PackageReference) Resolution {
	if len(plain) > 0 {
		best := plain[0]
		for _, ref := range plain[1:] {
			if cmp.Compare(ref.Version, best.Version) > 0 {
				best = ref
			}
		}
		return Resolution{Version: best.Version, Resolved: true, Source: best.Source}
	}

	for _, ref := range constrained {
		if ref.Source == SourceManifest {
			return Resolution{Version: ref.Version, Resolved: true, Source: SourceManifest}
		}
	}
	return Resolution{}
}

func findCaseConflicts(names []string) []CaseConflict {
	var folded []string
	byFold := make(map[string][]string)
	for _, name := range names {
		key := strings.ToLower(name)
		if _, ok := byFold[key]; !ok {
			folded = append(folded, key)
		}
		byFold[key] = append(byFold[key], name)
	}

	var out []CaseConflict
	for _, key := range folded {
		if group := byFold[key]; len(group) > 1 {
			out = append(out, CaseConflict{Names: group})
		}
	}
	return out
}
