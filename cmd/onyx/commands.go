package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/akrennmair/onyx/ast"
	"github.com/akrennmair/onyx/lexer"
	"github.com/akrennmair/onyx/msgs"
	"github.com/akrennmair/onyx/parser"
	"github.com/akrennmair/onyx/printer"
	"github.com/akrennmair/onyx/token"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	MaxDepth:                12,
}

func fileArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", cli.Exit(color.RedString("usage: %s %s %s", c.App.Name, c.Command.Name, c.Command.ArgsUsage), 2)
	}
	return c.Args().First(), nil
}

func loadConfig(c *cli.Context) (parser.Config, error) {
	cfg, err := parser.LoadConfig(c.String("config"))
	if err != nil {
		return parser.Config{}, cli.Exit(color.RedString("loading config failed: %v", err), 1)
	}

	if c.IsSet("report-unresolved") {
		cfg.ReportUnresolved = c.Bool("report-unresolved")
	}

	return cfg, nil
}

// parseFile parses the file at path. Diagnostics are printed to the error
// writer; the returned count tells the caller whether there were any.
func parseFile(c *cli.Context, cfg parser.Config, path string) (*ast.Program, int, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, cli.Exit(color.RedString("reading %s failed: %v", path, err), 1)
	}

	diags := &msgs.Messages{}

	p := parser.NewParser(lexer.Lex(path, string(source)), diags)
	p.Configure(cfg)
	if c.Bool("trace") {
		p.SetLogOutput(c.App.ErrWriter)
	}

	prog, err := p.Parse()
	if err != nil {
		return nil, 0, cli.Exit(color.RedString("parsing %s failed: %v", path, err), 1)
	}

	if err := diags.Print(c.App.ErrWriter); err != nil {
		return nil, 0, err
	}
	if dropped := p.Reported() - diags.Len(); dropped > 0 {
		fmt.Fprintf(c.App.ErrWriter, "... and %d more\n", dropped)
	}

	return prog, p.Reported(), nil
}

func diagnosticsExit(path string, n int) error {
	return cli.Exit(color.RedString("%s: %d diagnostic(s)", path, n), 1)
}

func parseCmd(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	prog, n, err := parseFile(c, cfg, path)
	if err != nil {
		return err
	}

	if c.Bool("spew") {
		spewConfig.Fdump(c.App.Writer, prog.Decls())
	} else {
		fmt.Fprintln(c.App.Writer, ast.Sexpr(prog))
	}

	if n > 0 {
		return diagnosticsExit(path, n)
	}
	return nil
}

func tokensCmd(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return cli.Exit(color.RedString("reading %s failed: %v", path, err), 1)
	}

	for _, t := range lexer.Lex(path, string(source)) {
		if t.Kind == token.Comment && !c.Bool("comments") {
			continue
		}
		fmt.Fprintf(c.App.Writer, "%s\t%s\t%q\n", t.Pos, t.Kind, t.Text)
	}

	return nil
}

func fmtCmd(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	prog, n, err := parseFile(c, cfg, path)
	if err != nil {
		return err
	}
	if n > 0 {
		return diagnosticsExit(path, n)
	}

	source, err := printer.Print(prog)
	if err != nil {
		return cli.Exit(color.RedString("formatting %s failed: %v", path, err), 1)
	}

	if !c.Bool("write") {
		fmt.Fprint(c.App.Writer, source)
		return nil
	}

	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		return cli.Exit(color.RedString("couldn't write %s: %v", path, err), 1)
	}
	return nil
}
