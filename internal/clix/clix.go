// Package clix holds helpers shared by the command actions.
package clix

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/indaco/scafsln/internal/config"
	"github.com/indaco/scafsln/internal/core"
	"github.com/indaco/scafsln/internal/printer"
	"github.com/indaco/scafsln/internal/templates"
	"github.com/urfave/cli/v3"
)

// RootPath returns the solution root named by the first argument, or the
// working directory when there is none. The result is absolute.
func RootPath(cmd *cli.Command) (string, error) {
	arg := cmd.Args().First()
	if arg == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", arg, err)
	}
	return abs, nil
}

// Logger returns the logger installed on ctx by the root command.
func Logger(ctx context.Context) *log.Logger {
	return log.FromContext(ctx)
}

// Printer returns a printer writing to the root command's output.
func Printer(cmd *cli.Command) *printer.Printer {
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	return printer.New(w)
}

// TemplateStore opens the template override store configured by cfg.
func TemplateStore(cfg *config.Config) *templates.Store {
	return templates.NewStore(core.NewOSFileSystem(), cfg.GetTemplatesPath())
}
