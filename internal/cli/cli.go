// Package cli assembles the scafsln root command.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/indaco/scafsln/internal/commands/configcmd"
	"github.com/indaco/scafsln/internal/commands/initialize"
	"github.com/indaco/scafsln/internal/commands/plan"
	"github.com/indaco/scafsln/internal/config"
	"github.com/indaco/scafsln/internal/logging"
	"github.com/indaco/scafsln/internal/printer"
	"github.com/indaco/scafsln/internal/tui"
	urfavecli "github.com/urfave/cli/v3"
)

// Version is set at build time.
var Version = "dev"

// New builds the root command. cfg starts with the defaults and is replaced
// in place by the file selected with --config (or found in the working
// directory) before any subcommand runs.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "scafsln",
		Version:               Version,
		Usage:                 "Scaffold .NET solutions and centralize package versions",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&urfavecli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
			&urfavecli.StringFlag{
				Name:        "config",
				Usage:       "Path to a configuration file",
				DefaultText: ".scafsln.yaml or .scafsln.toml",
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color"))

			loaded, err := config.LoadConfigFn(cmd.String("config"))
			if err != nil {
				return ctx, urfavecli.Exit(err.Error(), 1)
			}
			results := config.NewValidator(loaded).Validate()
			if config.HasErrors(results) {
				return ctx, urfavecli.Exit(fmt.Sprintf("invalid configuration: %s", config.FirstError(results)), 1)
			}
			*cfg = *loaded

			logger := logging.New(logging.Options{Verbose: cmd.Bool("verbose"), Output: cmd.Root().ErrWriter})
			for _, r := range results {
				if r.Warning {
					logger.Warn(r.Message, "section", r.Category)
				}
			}
			if !tui.SetTheme(cfg.GetTheme()) {
				logger.Warn("unknown theme, using default", "theme", cfg.GetTheme())
			}
			return log.WithContext(ctx, logger), nil
		},
		Commands: []*urfavecli.Command{
			initialize.Run(cfg),
			plan.Run(cfg),
			configcmd.Run(cfg),
		},
	}
}
