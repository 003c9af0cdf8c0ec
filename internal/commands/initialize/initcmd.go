// Package initialize implements the init-sln command.
package initialize

import (
	"context"
	"fmt"

	"github.com/indaco/scafsln/internal/clix"
	"github.com/indaco/scafsln/internal/config"
	"github.com/indaco/scafsln/internal/core"
	"github.com/indaco/scafsln/internal/operations"
	"github.com/indaco/scafsln/internal/printer"
	"github.com/indaco/scafsln/internal/templates"
	"github.com/indaco/scafsln/internal/tui"
	"github.com/urfave/cli/v3"
)

// scaffoldFlags maps option flags to the template they generate, in
// generation order.
var scaffoldFlags = []struct {
	flag     string
	template string
}{
	{"gitignore", templates.NameGitignore},
	{"editorconfig", templates.NameEditorconfig},
	{"instructions", templates.NameCopilotInstructions},
}

// Run returns the "init-sln" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "init-sln",
		Usage:     "Scaffold solution files and convert to central package management",
		ArgsUsage: "[path]",
		UsageText: `scafsln init-sln [options] [path]

Generates files at the root of a .NET solution tree (default: current
directory):
  --gitignore      .gitignore
  --editorconfig   .editorconfig
  --instructions   .github/copilot-instructions.md
  --cpm            Directory.Packages.props, Directory.Build.props and
                   rewritten project files`,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "cpm", Aliases: []string{"c"}, Usage: "Convert to central package management"},
			&cli.BoolFlag{Name: "gitignore", Aliases: []string{"g"}, Usage: "Generate .gitignore"},
			&cli.BoolFlag{Name: "editorconfig", Aliases: []string{"e"}, Usage: "Generate .editorconfig"},
			&cli.BoolFlag{Name: "instructions", Aliases: []string{"i"}, Usage: "Generate Copilot instructions"},
			&cli.BoolFlag{Name: "all", Aliases: []string{"a"}, Usage: "Generate everything"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitCmd(ctx, cmd, cfg)
		},
	}
}

func runInitCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	out := clix.Printer(cmd)
	all := cmd.Bool("all")

	var selected []string
	for _, f := range scaffoldFlags {
		if all || cmd.Bool(f.flag) {
			selected = append(selected, f.template)
		}
	}
	withCPM := all || cmd.Bool("cpm")

	if len(selected) == 0 && !withCPM {
		out.Line("Nothing to do. Pick at least one option:")
		out.Line(printer.Faint("  scafsln init-sln --all [path]"))
		out.Line(printer.Faint("  scafsln init-sln --cpm --gitignore [path]"))
		return nil
	}

	root, err := clix.RootPath(cmd)
	if err != nil {
		return err
	}

	logger := clix.Logger(ctx)
	fs := core.NewOSFileSystem()
	resolver := templates.NewResolver(clix.TemplateStore(cfg), logger)

	failed := 0
	scaffolder := operations.NewScaffolder(fs, operations.ScaffoldOptions{Resolver: resolver, Logger: logger})
	for _, name := range selected {
		art, err := scaffolder.Scaffold(ctx, root, name)
		if err != nil {
			out.Errorf("%s: %v", name, err)
			failed++
			continue
		}
		printArtifact(out, art)
	}

	if withCPM {
		centralizer := operations.NewCentralizer(fs, operations.CentralizeOptions{
			Config:   cfg,
			Resolver: resolver,
			Logger:   logger,
		})
		var result *operations.Result
		err := tui.WithSpinner(ctx, "Centralizing package versions...", func(ctx context.Context) error {
			var err error
			result, err = centralizer.Resolve(ctx, root)
			return err
		})
		if err != nil {
			out.Errorf("central package management: %v", err)
			failed++
		} else {
			PrintResult(out, result)
		}
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("init-sln: %d of %d artifacts failed", failed, len(selected)+boolCount(withCPM)), 1)
	}
	return nil
}

func boolCount(b bool) int {
	if b {
		return 1
	}
	return 0
}

func printArtifact(out *printer.Printer, art operations.Artifact) {
	switch {
	case !art.Changed:
		out.Skippedf("%s is up to date", art.RelPath)
	case art.Existed:
		out.Successf("Updated %s", art.RelPath)
	default:
		out.Successf("Created %s", art.RelPath)
	}
}

// PrintResult reports a centralization run, one line per artifact.
func PrintResult(out *printer.Printer, r *operations.Result) {
	out.Successf("Scanned %d project files (%d package references)", len(r.Descriptors), r.References)
	for _, f := range r.Files {
		out.Successf("Rewrote %s %s", f.RelPath, printer.Faint(fmt.Sprintf("(%d changes)", len(f.Changes))))
	}
	printArtifact(out, r.Manifest)
	printArtifact(out, r.BuildProps)

	for _, name := range r.Unresolved {
		out.Warningf("%s has only ranged or wildcard versions; kept as VersionOverride", name)
	}
	for _, c := range r.CaseConflicts {
		out.Warningf("package names differ only by case: %v", c.Names)
	}
}
