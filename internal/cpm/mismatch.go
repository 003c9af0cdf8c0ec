package cpm

import (
	"sort"
)

// Mismatch is a plain declaration whose version differs from the
// authoritative one. After rewriting it becomes a VersionOverride.
type Mismatch struct {
	// Source is the descriptor declaring the version.
	Source string

	// Name is the dependency name.
	Name string

	// ExpectedVersion is the table version.
	ExpectedVersion string

	// ActualVersion is the declared version.
	ActualVersion string
}

// DetectMismatches lists plain declarations that disagree with table,
// sorted by source and then name for stable output.
func DetectMismatches(refs []PackageReference, table *Table) []Mismatch {
	if table == nil {
		return nil
	}

	var mismatches []Mismatch
	for _, ref := range refs {
		if ref.Constrained {
			continue
		}
		res, ok := table.Get(ref.Name)
		if !ok || !res.Resolved || res.Version == ref.Version {
			continue
		}
		mismatches = append(mismatches, Mismatch{
			Source:          ref.Source,
			Name:            ref.Name,
			ExpectedVersion: res.Version,
			ActualVersion:   ref.Version,
		})
	}

	sort.SliceStable(mismatches, func(i, j int) bool {
		if mismatches[i].Source != mismatches[j].Source {
			return mismatches[i].Source < mismatches[j].Source
		}
		return mismatches[i].Name < mismatches[j].Name
	})

	return mismatches
}
