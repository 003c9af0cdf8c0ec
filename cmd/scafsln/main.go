package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/indaco/scafsln/internal/cli"
	"github.com/indaco/scafsln/internal/config"
	urfavecli "github.com/urfave/cli/v3"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		code := 1
		var exitErr urfavecli.ExitCoder
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		os.Exit(code)
	}
}

// runCLI builds and runs the root command. Errors are returned instead of
// exiting the process.
func runCLI(args []string) error {
	app := cli.New(config.Default())
	app.ExitErrHandler = func(context.Context, *urfavecli.Command, error) {}
	return app.Run(context.Background(), args)
}
