package templates

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/indaco/scafsln/internal/core"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// storeVersion is written to new store documents.
const storeVersion = 1

// Override is a user-supplied template.
type Override struct {
	Name    string
	Content string
	Updated string
}

// Store persists template overrides in a JSON document of the form
//
//	{"version": 1, "templates": {"<name>": {"content": "...", "updated": "<RFC 3339>"}}}
type Store struct {
	fs   core.FileSystem
	path string
	now  func() time.Time
}

// NewStore creates a Store backed by the JSON file at path.
func NewStore(fs core.FileSystem, path string) *Store {
	return &Store{fs: fs, path: path, now: time.Now}
}

// Path returns the store location.
func (s *Store) Path() string {
	return s.path
}

// load returns the store document, or nil when it does not exist yet.
func (s *Store) load(ctx context.Context) ([]byte, error) {
	data, err := s.fs.ReadFile(ctx, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &core.IOError{Op: "read", Path: s.path, Err: err}
	}
	if !gjson.ValidBytes(data) {
		return nil, &core.ParseError{Path: s.path, Err: errors.New("invalid JSON")}
	}
	return data, nil
}

func contentPath(name string) string {
	return "templates." + name + ".content"
}

// Override returns the stored override for name and whether one exists.
func (s *Store) Override(ctx context.Context, name string) (string, bool, error) {
	data, err := s.load(ctx)
	if err != nil || data == nil {
		return "", false, err
	}
	res := gjson.GetBytes(data, contentPath(name))
	if !res.Exists() {
		return "", false, nil
	}
	return res.String(), true, nil
}

// Overrides lists every stored override in document order.
func (s *Store) Overrides(ctx context.Context) ([]Override, error) {
	data, err := s.load(ctx)
	if err != nil || data == nil {
		return nil, err
	}
	var out []Override
	gjson.GetBytes(data, "templates").ForEach(func(key, value gjson.Result) bool {
		out = append(out, Override{
			Name:    key.String(),
			Content: value.Get("content").String(),
			Updated: value.Get("updated").String(),
		})
		return true
	})
	return out, nil
}

// SetOverride stores content as the override for name.
func (s *Store) SetOverride(ctx context.Context, name, content string) error {
	if !IsValidTemplate(name) {
		_, err := GetTemplate(name)
		return &core.InvalidArgumentError{Name: "template", Reason: err.Error()}
	}

	data, err := s.load(ctx)
	if err != nil {
		return err
	}
	if data == nil {
		data = fmt.Appendf(nil, `{"version":%d,"templates":{}}`, storeVersion)
	}

	key := "templates." + name
	data, err = sjson.SetBytes(data, key+".content", content)
	if err != nil {
		return fmt.Errorf("failed to update template store: %w", err)
	}
	data, err = sjson.SetBytes(data, key+".updated", s.now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to update template store: %w", err)
	}

	if err := s.fs.MkdirAll(ctx, filepath.Dir(s.path), core.PermDir); err != nil {
		return &core.IOError{Op: "create directory", Path: filepath.Dir(s.path), Err: err}
	}
	if err := s.fs.WriteFile(ctx, s.path, data, core.PermOwnerRW); err != nil {
		return &core.IOError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}

// Reset removes every override. Resetting an empty store is not an error.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.fs.Remove(ctx, s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &core.IOError{Op: "remove", Path: s.path, Err: err}
	}
	return nil
}
