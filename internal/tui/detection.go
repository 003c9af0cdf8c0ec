package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs are set by common CI systems.
var ciEnvs = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"BUILDKITE",
	"TF_BUILD",         // Azure Pipelines
	"TEAMCITY_VERSION", // TeamCity
	"JENKINS_HOME",
}

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value
}

// IsInteractive reports whether prompts and spinners may be shown: stdout
// must be a terminal and no CI environment variable may be set.
func IsInteractive() bool {
	if !isTerminal() {
		return false
	}
	return !InCI()
}

// InCI reports whether a CI environment variable is set.
func InCI() bool {
	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}
