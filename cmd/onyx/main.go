package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args); err != nil {
		stop()
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints errors that cli has not handled already. Exit errors
// are printed by cli.HandleExitCoder.
func reportError(w io.Writer, err error) {
	if _, ok := err.(cli.ExitCoder); ok {
		return
	}
	fmt.Fprintln(w, color.RedString("onyx: %v", err))
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:                   "onyx",
		Usage:                  "Parse and format Onyx source files",
		UseShortOptionHandling: true,
		Writer:                 stdout,
		ErrWriter:              stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   ".onyx.yaml",
				Usage:   "Load parser settings from `FILE`",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "Write the parser trace to stderr",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
			&cli.BoolFlag{
				Name:  "report-unresolved",
				Usage: "Report identifiers that are not declared",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("no-color") {
				color.NoColor = true
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "Parse a file and print its syntax tree",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "spew",
						Aliases: []string{"s"},
						Usage:   "Dump the declarations with go-spew instead of printing an S-expression",
					},
				},
				Action: parseCmd,
			},
			{
				Name:      "tokens",
				Usage:     "Print the tokens of a file",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "comments",
						Usage: "Include comment tokens",
					},
				},
				Action: tokensCmd,
			},
			{
				Name:      "fmt",
				Usage:     "Print a file in canonical formatting",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "write",
						Aliases: []string{"w"},
						Usage:   "Write the result back to the file",
					},
				},
				Action: fmtCmd,
			},
			{
				Name:      "watch",
				Usage:     "Parse a file again whenever it changes",
				ArgsUsage: "FILE",
				Action:    watchCmd,
			},
		},
	}
}
