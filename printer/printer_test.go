package printer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akrennmair/onyx/ast"
	"github.com/akrennmair/onyx/msgs"
	"github.com/akrennmair/onyx/parser"
)

func parse(t *testing.T, name, source string) *ast.Program {
	t.Helper()

	var diags msgs.Messages
	prog, err := parser.Parse(name, source, &diags, parser.Config{})
	require.NoError(t, err, "parsing source failed")
	require.Zero(t, diags.Len(), "unexpected diagnostics: %v", diags.List())
	return prog
}

func TestPrint(t *testing.T) {
	sourceFiles, err := filepath.Glob("testdata/*.onyx")
	require.NoError(t, err)
	require.NotEmpty(t, sourceFiles)

	for _, sourceFile := range sourceFiles {
		t.Run(sourceFile, func(t *testing.T) {
			writeMode := false

			fileContent, err := os.ReadFile(sourceFile)
			require.NoError(t, err)

			goldenFile := sourceFile + ".golden"

			goldenFileContent, err := os.ReadFile(goldenFile)
			if err != nil {
				writeMode = true
			}

			prog := parse(t, sourceFile, string(fileContent))

			source, err := Print(prog)
			require.NoError(t, err, "print failed")

			if writeMode {
				t.Logf("Writing printer output to missing golden file %s", goldenFile)
				require.NoError(t, os.WriteFile(goldenFile, []byte(source), 0o644))
			} else {
				require.Equal(t, string(goldenFileContent), source, "printer output doesn't match golden file")
			}

			reparsed := parse(t, goldenFile, source)
			require.Equal(t, ast.Sexpr(prog), ast.Sexpr(reparsed), "printed source doesn't parse to the same program")
		})
	}
}

func TestPrintIdempotent(t *testing.T) {
	prog := parse(t, "a.onyx", `f :: proc (a : i32) -> i32 { b : i32 = a - 1; { b = b * b; }; return f(b); }`)

	first, err := Print(prog)
	require.NoError(t, err)

	second, err := Print(parse(t, "b.onyx", first))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestPrintEmpty(t *testing.T) {
	source, err := Print(parse(t, "empty.onyx", "// nothing\n"))
	require.NoError(t, err)
	require.Empty(t, source)
}

func TestPrintErrors(t *testing.T) {
	testData := []struct {
		name   string
		source string
	}{
		{"error node", `f :: proc () -> void { x : i32 = 1 + ; }`},
		{"unresolved value", `f :: proc () -> void { x : i32 = y; }`},
	}

	for _, testEntry := range testData {
		t.Run(testEntry.name, func(t *testing.T) {
			prog, err := parser.Parse("bad.onyx", testEntry.source, nil, parser.Config{})
			require.NoError(t, err)

			_, err = Print(prog)
			require.Error(t, err)
		})
	}
}
