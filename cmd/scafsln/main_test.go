package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"scafsln": main,
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   filepath.Join("testdata", "script"),
		Setup: setupScript,
	})
}

func setupScript(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("XDG_CONFIG_HOME", filepath.Join(homeDir, ".config"))
	env.Setenv("SCAFSLN_TEMPLATES", filepath.Join(homeDir, "templates.json"))
	return nil
}

func TestRunCLI_InvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile(".scafsln.yaml", []byte("scan:\n  workers: -2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := runCLI([]string{"scafsln", "plan"})
	if err == nil || !strings.Contains(err.Error(), "workers must be at least 1") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRunCLI_MissingConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	err := runCLI([]string{"scafsln", "--config", "absent.yaml", "plan"})
	if err == nil || !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("unexpected error: %v", err)
	}
}
