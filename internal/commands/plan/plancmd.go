package plan

import (
	"context"
	"fmt"

	"github.com/indaco/scafsln/internal/clix"
	"github.com/indaco/scafsln/internal/config"
	"github.com/indaco/scafsln/internal/core"
	"github.com/indaco/scafsln/internal/operations"
	"github.com/indaco/scafsln/internal/templates"
	"github.com/urfave/cli/v3"
)

// Run returns the "plan" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "plan",
		Usage:     "Show what init-sln --cpm would change without writing files",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, table",
				Value:   "text",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runPlanCmd(ctx, cmd, cfg)
		},
	}
}

func runPlanCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	root, err := clix.RootPath(cmd)
	if err != nil {
		return err
	}

	logger := clix.Logger(ctx)
	centralizer := operations.NewCentralizer(core.NewOSFileSystem(), operations.CentralizeOptions{
		Config:   cfg,
		Resolver: templates.NewResolver(clix.TemplateStore(cfg), logger),
		Logger:   logger,
		DryRun:   true,
	})

	result, err := centralizer.Resolve(ctx, root)
	if err != nil {
		return cli.Exit(fmt.Sprintf("plan failed: %v", err), 1)
	}

	out, err := NewFormatter(ParseOutputFormat(cmd.String("format"))).FormatResult(result)
	if err != nil {
		return err
	}
	clix.Printer(cmd).Line(out)
	return nil
}
