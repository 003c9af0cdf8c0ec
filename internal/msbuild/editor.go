package msbuild

import (
	"context"
	"fmt"

	"github.com/indaco/scafsln/internal/core"
)

// Editor loads and saves documents through a core.FileSystem.
type Editor struct {
	fs core.FileSystem
}

// NewEditor creates an Editor on top of fs.
func NewEditor(fs core.FileSystem) *Editor {
	return &Editor{fs: fs}
}

// Load reads and parses the document at path.
func (e *Editor) Load(ctx context.Context, path string) (*Document, error) {
	if path == "" {
		return nil, &core.InvalidArgumentError{Name: "path", Reason: "must not be empty"}
	}

	data, err := e.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, &core.IOError{Op: "read", Path: path, Err: err}
	}
	return Parse(path, data)
}

// Save serializes doc back to doc.Path.
func (e *Editor) Save(ctx context.Context, doc *Document) error {
	data, err := doc.Bytes()
	if err != nil {
		return fmt.Errorf("failed to serialize %q: %w", doc.Path, err)
	}
	if err := e.fs.WriteFile(ctx, doc.Path, data, core.PermFile); err != nil {
		return &core.IOError{Op: "write", Path: doc.Path, Err: err}
	}
	return nil
}
