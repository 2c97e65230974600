package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	color.NoColor = true

	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"onyx", "--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()

	exitErr, ok := err.(cli.ExitCoder)
	require.True(t, ok, "expected exit error, got %T: %v", err, err)
	return exitErr.ExitCode()
}

func TestParseCommand(t *testing.T) {
	path := writeFile(t, "ok.onyx", `main :: proc () -> void { return; }`)

	stdout, stderr, err := run(t, "parse", path)
	require.NoError(t, err)
	require.Empty(t, stderr)
	require.Equal(t, "(program (funcdef main (params) void (block (return))))\n", stdout)

	stdout, _, err = run(t, "parse", "--spew", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "FuncDef")
}

func TestParseCommandDiagnostics(t *testing.T) {
	path := writeFile(t, "bad.onyx", `main :: proc () -> nope { y = 1; }`)

	_, stderr, err := run(t, "parse", path)
	require.Error(t, err)
	require.Equal(t, 1, exitCode(t, err))
	require.Contains(t, stderr, "error: unknown type 'nope'")
	require.NotContains(t, stderr, "unresolved")

	_, stderr, err = run(t, "--report-unresolved", "parse", path)
	require.Error(t, err)
	require.Contains(t, stderr, "error: unresolved symbol 'y'")
}

func TestParseCommandConfig(t *testing.T) {
	path := writeFile(t, "bad.onyx", `main :: proc () -> void { y = 1; }`)
	cfg := writeFile(t, "onyx.yaml", "report_unresolved: true\n")

	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run([]string{"onyx", "--config", cfg, "parse", path})
	require.Error(t, err)
	require.Contains(t, stderr.String(), "unresolved symbol 'y'")
}

func TestParseCommandFatal(t *testing.T) {
	path := writeFile(t, "use.onyx", `use core;`)

	_, _, err := run(t, "parse", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "use is not implemented")
}

func TestUsage(t *testing.T) {
	_, _, err := run(t, "parse")
	require.Error(t, err)
	require.Equal(t, 2, exitCode(t, err))

	_, _, err = run(t, "parse", filepath.Join(t.TempDir(), "missing.onyx"))
	require.Error(t, err)
	require.Equal(t, 1, exitCode(t, err))
}

func TestParseCommandMaxDiagnostics(t *testing.T) {
	path := writeFile(t, "many.onyx", `a :: proc () -> x --- b :: proc () -> y --- c :: proc () -> z ---`)
	cfg := writeFile(t, "onyx.yaml", "max_diagnostics: 1\n")

	var stdout, stderr bytes.Buffer
	app := newApp(&stdout, &stderr)
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run([]string{"onyx", "--config", cfg, "parse", path})
	require.Error(t, err)
	require.Contains(t, err.Error(), "3 diagnostic(s)")
	require.Contains(t, stderr.String(), "unknown type 'x'")
	require.NotContains(t, stderr.String(), "unknown type 'y'")
	require.Contains(t, stderr.String(), "... and 2 more\n")
}

func TestReportError(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	reportError(&buf, errors.New("flag provided but not defined: -x"))
	require.Equal(t, "onyx: flag provided but not defined: -x\n", buf.String())

	buf.Reset()
	reportError(&buf, cli.Exit("already printed", 1))
	require.Empty(t, buf.String())
}

func TestTokensCommand(t *testing.T) {
	path := writeFile(t, "t.onyx", "x // c\n")

	stdout, _, err := run(t, "tokens", path)
	require.NoError(t, err)
	require.Equal(t, path+":1:1\tsymbol\t\"x\"\n"+path+":2:1\tend of stream\t\"\"\n", stdout)

	stdout, _, err = run(t, "tokens", "--comments", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "\"// c\"")
}

func TestFmtCommand(t *testing.T) {
	path := writeFile(t, "f.onyx", `f :: proc (a : i32) -> i32 { return a; }`)
	expected := "f :: proc (a : i32) -> i32 {\n\treturn a;\n}\n"

	stdout, _, err := run(t, "fmt", path)
	require.NoError(t, err)
	require.Equal(t, expected, stdout)

	_, _, err = run(t, "fmt", "-w", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, expected, string(content))
}

func TestWatchFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "w.onyx")
	require.NoError(t, os.WriteFile(path, []byte("f :: proc () -> void ---\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	deadline := time.After(5 * time.Second)
	for {
		require.NoError(t, os.WriteFile(path, []byte("g :: proc () -> void ---\n"), 0o644))

		select {
		case <-changed:
			cancel()
			require.NoError(t, <-done)
			return
		case err := <-done:
			t.Skip("fsnotify not supported: ", err)
		case <-time.After(100 * time.Millisecond):
		case <-deadline:
			t.Fatal("timeout waiting for change notification")
		}
	}
}
