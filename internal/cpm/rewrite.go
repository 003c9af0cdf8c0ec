package cpm

import (
	"context"

	"github.com/indaco/scafsln/internal/msbuild"
)

// Action is what the rewriter did to one declaration.
type Action string

const (
	// ActionInherit removed Version; the manifest version applies.
	ActionInherit Action = "inherit"
	// ActionOverride replaced Version with a VersionOverride of the
	// declared version, which differs from the manifest.
	ActionOverride Action = "override"
	// ActionConstrained moved a range or wildcard into VersionOverride.
	ActionConstrained Action = "constrained"
)

// Change records one rewritten declaration.
type Change struct {
	Name     string
	Action   Action
	Declared string
	// Manifest is the table version, empty for constrained declarations.
	Manifest string
}

// RewriteDocument applies table to doc in memory and returns what changed.
// Declarations without a resolved table entry are left untouched, except
// constrained ones, which always become a VersionOverride.
func RewriteDocument(doc *msbuild.Document, table *Table) []Change {
	var changes []Change
	for _, d := range declarations(doc) {
		ref := d.ref

		if ref.Constrained {
			d.el.RemoveAttr(AttrVersion)
			d.el.SetAttr(AttrVersionOverride, ref.Version)
			changes = append(changes, Change{Name: ref.Name, Action: ActionConstrained, Declared: ref.Version})
			continue
		}

		res, ok := table.Get(ref.Name)
		if !ok || !res.Resolved {
			continue
		}

		d.el.RemoveAttr(AttrVersion)
		change := Change{Name: ref.Name, Action: ActionInherit, Declared: ref.Version, Manifest: res.Version}
		if ref.Version != res.Version {
			d.el.SetAttr(AttrVersionOverride, ref.Version)
			change.Action = ActionOverride
		}
		changes = append(changes, change)
	}
	return changes
}

// Rewriter applies a Table to descriptors on disk.
type Rewriter struct {
	editor *msbuild.Editor
}

// NewRewriter creates a Rewriter that loads and saves through editor.
func NewRewriter(editor *msbuild.Editor) *Rewriter {
	return &Rewriter{editor: editor}
}

// Rewrite rewrites the descriptor at path. The file is saved only when
// something changed, and never when dryRun is set.
func (r *Rewriter) Rewrite(ctx context.Context, path string, table *Table, dryRun bool) ([]Change, error) {
	doc, err := r.editor.Load(ctx, path)
	if err != nil {
		return nil, err
	}

	changes := RewriteDocument(doc, table)
	if len(changes) == 0 || dryRun {
		return changes, nil
	}

	if err := r.editor.Save(ctx, doc); err != nil {
		return nil, err
	}
	return changes, nil
}
