// Package configcmd implements the config command group: template
// overrides and the configuration file.
package configcmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/indaco/scafsln/internal/clix"
	"github.com/indaco/scafsln/internal/config"
	"github.com/indaco/scafsln/internal/core"
	"github.com/indaco/scafsln/internal/printer"
	"github.com/indaco/scafsln/internal/templates"
	"github.com/indaco/scafsln/internal/tui"
	"github.com/urfave/cli/v3"
)

// confirmFn is replaced in tests.
var confirmFn = tui.Confirm

// Run returns the "config" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage template overrides and the configuration file",
		Commands: []*cli.Command{
			listCmd(cfg),
			showCmd(cfg),
			setCmd(cfg),
			resetCmd(cfg),
			initCmd(),
		},
	}
}

func listCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List templates and whether they are overridden",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			store := clix.TemplateStore(cfg)
			overrides, err := store.Overrides(ctx)
			if err != nil {
				return cli.Exit(fmt.Sprintf("failed to read template store: %v", err), 1)
			}
			updated := make(map[string]string, len(overrides))
			for _, o := range overrides {
				updated[o.Name] = o.Updated
			}

			out := clix.Printer(cmd)
			out.Section("Templates")
			for _, t := range templates.AllTemplates() {
				state := printer.Faint("default")
				if when, ok := updated[t.Name]; ok {
					state = printer.Success("override") + printer.Faint(" ("+when+")")
				}
				out.Linef("  %-22s %s", t.Name, state)
				out.Linef("  %-22s %s", "", printer.Faint(t.Description))
			}
			out.Line("")
			out.Line(printer.Faint("Store: " + store.Path()))
			return nil
		},
	}
}

func showCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the effective content of a template",
		ArgsUsage: "<template>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				return cli.Exit("missing template name (available: "+strings.Join(templates.TemplateNames(), ", ")+")", 1)
			}
			resolver := templates.NewResolver(clix.TemplateStore(cfg), clix.Logger(ctx))
			content, _, err := resolver.Resolve(ctx, name)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Fprint(cmd.Root().Writer, content)
			return nil
		},
	}
}

func setCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Override a template with the content of a file",
		ArgsUsage: "<template> <file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return cli.Exit("usage: scafsln config set <template> <file>", 1)
			}
			name, file := cmd.Args().Get(0), cmd.Args().Get(1)

			data, err := core.NewOSFileSystem().ReadFile(ctx, file)
			if err != nil {
				return cli.Exit(fmt.Sprintf("failed to read %s: %v", file, err), 1)
			}

			store := clix.TemplateStore(cfg)
			if err := store.SetOverride(ctx, name, string(data)); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			clix.Printer(cmd).Successf("Template %q now uses %s", name, file)
			return nil
		},
	}
}

func resetCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "Remove every template override",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "Skip the confirmation prompt"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out := clix.Printer(cmd)
			if !cmd.Bool("yes") {
				ok, err := confirmFn("Reset all templates?", "Every template override will be deleted.")
				if errors.Is(err, tui.ErrNotInteractive) {
					return cli.Exit("refusing to reset without --yes in a non-interactive session", 1)
				}
				if err != nil {
					return err
				}
				if !ok {
					out.Skippedf("Reset canceled")
					return nil
				}
			}

			if err := clix.TemplateStore(cfg).Reset(ctx); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			out.Successf("Templates reset to defaults")
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a configuration file with the default settings",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Usage: "File format: yaml or toml", Value: "yaml"},
			&cli.BoolFlag{Name: "force", Usage: "Overwrite an existing file"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var path string
			switch cmd.String("format") {
			case "yaml":
				path = ".scafsln.yaml"
			case "toml":
				path = ".scafsln.toml"
			default:
				return cli.Exit(fmt.Sprintf("unsupported format %q (use yaml or toml)", cmd.String("format")), 1)
			}

			if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
				return cli.Exit(fmt.Sprintf("%s already exists (use --force to overwrite)", path), 1)
			}
			if err := config.SaveConfigFn(config.Default(), path); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			clix.Printer(cmd).Successf("Created %s", path)
			return nil
		},
	}
}
