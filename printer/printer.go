// Package printer renders a parsed program back to source text.
package printer

import (
	"bytes"
	"fmt"

	"github.com/akrennmair/onyx/ast"
)

// Print formats prog. Programs containing error nodes or unresolved
// expressions cannot be printed. Declarations without an initializer are
// not part of the AST and are therefore lost.
func Print(prog *ast.Program) (string, error) {
	for _, decl := range prog.Decls() {
		if _, ok := decl.(*ast.FuncDef); !ok {
			return "", fmt.Errorf("can't print top-level %s", decl.Head().Kind)
		}
	}

	var buf bytes.Buffer

	if err := printerTemplate.ExecuteTemplate(&buf, "main", prog); err != nil {
		return "", fmt.Errorf("failed to generate source code: %w", err)
	}

	return buf.String(), nil
}
