package discovery

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/indaco/scafsln/internal/config"
	"github.com/indaco/scafsln/internal/core"
)

// Service provides descriptor discovery.
type Service struct {
	fs       core.FileSystem
	cfg      *config.Config
	maxDepth int
}

// NewService creates a new discovery Service. A nil cfg uses the defaults.
func NewService(fs core.FileSystem, cfg *config.Config) *Service {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Service{
		fs:       fs,
		cfg:      cfg,
		maxDepth: core.MaxDiscoveryDepth,
	}
}

// Discover walks root and returns every descriptor below it.
// Unreadable directories fail the walk with *core.IOError.
func (s *Service) Discover(ctx context.Context, root string) (*Result, error) {
	result := &Result{
		Root:        root,
		Descriptors: make([]Descriptor, 0),
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	exts := s.cfg.GetExtensions()
	excludes := s.cfg.GetExcludePatterns()

	err := s.walkDirectory(ctx, root, 0, excludes, func(path string) {
		if !hasExtension(path, exts) {
			return
		}
		result.Descriptors = append(result.Descriptors, newDescriptor(root, path))
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func newDescriptor(root, path string) Descriptor {
	relPath, err := filepath.Rel(root, path)
	if err != nil {
		relPath = path
	}
	base := filepath.Base(path)
	return Descriptor{
		Name:    strings.TrimSuffix(base, filepath.Ext(base)),
		Path:    path,
		RelPath: relPath,
		Dir:     filepath.Dir(path),
	}
}

// walkDirectory calls fn for every file below dir, in sorted order.
func (s *Service) walkDirectory(ctx context.Context, dir string, depth int, excludes []string, fn func(string)) error {
	if depth > s.maxDepth {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := s.fs.ReadDir(ctx, dir)
	if err != nil {
		return &core.IOError{Op: "read directory", Path: dir, Err: err}
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if s.shouldExclude(name, path, entry.IsDir(), excludes) {
			continue
		}

		if entry.IsDir() {
			if err := s.walkDirectory(ctx, path, depth+1, excludes, fn); err != nil {
				return err
			}
			continue
		}
		fn(path)
	}

	return nil
}

// shouldExclude checks if an entry should be skipped.
func (s *Service) shouldExclude(name, path string, isDir bool, excludes []string) bool {
	if isDir {
		if strings.HasPrefix(name, ".") {
			return true
		}
		if slices.Contains(skipDirs, name) {
			return true
		}
	}

	for _, pattern := range excludes {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
		if matched, _ := filepath.Match(pattern, path); matched {
			return true
		}
	}

	return false
}

func hasExtension(path string, exts []string) bool {
	ext := filepath.Ext(path)
	return slices.ContainsFunc(exts, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}
