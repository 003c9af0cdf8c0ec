package core

import (
	"context"
	"errors"
	"io/fs"
	"testing"
)

func TestMockFileSystem_ReadDirNested(t *testing.T) {
	m := NewMockFileSystem()
	m.SetFile("/repo/b/B.csproj", []byte("<Project/>"))
	m.SetFile("/repo/a/A.csproj", []byte("<Project/>"))
	m.SetFile("/repo/README.md", []byte("hi"))
	ctx := context.Background()

	entries, err := m.ReadDir(ctx, "/repo")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	want := []string{"README.md", "a", "b"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
	if !entries[1].IsDir() || entries[0].IsDir() {
		t.Error("directory flags are wrong")
	}
}

func TestMockFileSystem_WriteLogAndErrors(t *testing.T) {
	m := NewMockFileSystem()
	m.SetDir("/repo")
	ctx := context.Background()

	if err := m.WriteFile(ctx, "/repo/x.txt", []byte("x"), PermFile); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if got := m.Writes(); len(got) != 1 || got[0] != "/repo/x.txt" {
		t.Errorf("Writes() = %v", got)
	}

	if err := m.WriteFile(ctx, "/nope/x.txt", nil, PermFile); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected ErrNotExist for missing parent, got %v", err)
	}

	m.ReadErrors["/repo/x.txt"] = fs.ErrPermission
	if _, err := m.ReadFile(ctx, "/repo/x.txt"); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("expected injected error, got %v", err)
	}

	m.ResetWrites()
	if len(m.Writes()) != 0 {
		t.Error("expected empty write log after reset")
	}
}

func TestMockFileSystem_CanceledContext(t *testing.T) {
	m := NewMockFileSystem()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Stat(ctx, "/"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
