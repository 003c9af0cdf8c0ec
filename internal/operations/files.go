package operations

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/indaco/scafsln/internal/core"
)

// validateRoot checks root before any other I/O.
func validateRoot(ctx context.Context, fsys core.FileSystem, root string) error {
	if strings.TrimSpace(root) == "" {
		return &core.InvalidArgumentError{Name: "root", Reason: "path cannot be empty or whitespace"}
	}
	info, err := fsys.Stat(ctx, root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &core.NotFoundError{Path: root, What: "directory"}
		}
		return &core.IOError{Op: "stat", Path: root, Err: err}
	}
	if !info.IsDir() {
		return &core.NotFoundError{Path: root, What: "directory"}
	}
	return nil
}

// writeIfChanged writes data to root/rel unless the file already holds
// exactly data. Nothing is written on a dry run.
func writeIfChanged(ctx context.Context, fsys core.FileSystem, root, rel string, data []byte, dryRun bool) (Artifact, error) {
	path := filepath.Join(root, rel)
	art := Artifact{Path: path, RelPath: rel}

	existing, err := fsys.ReadFile(ctx, path)
	switch {
	case err == nil:
		art.Existed = true
		if bytes.Equal(existing, data) {
			return art, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return art, &core.IOError{Op: "read", Path: path, Err: err}
	}

	art.Changed = true
	if dryRun {
		return art, nil
	}

	if dir := filepath.Dir(path); dir != root {
		if err := fsys.MkdirAll(ctx, dir, core.PermDir); err != nil {
			return art, &core.IOError{Op: "create directory", Path: dir, Err: err}
		}
	}
	if err := fsys.WriteFile(ctx, path, data, core.PermFile); err != nil {
		return art, &core.IOError{Op: "write", Path: path, Err: err}
	}
	return art, nil
}
