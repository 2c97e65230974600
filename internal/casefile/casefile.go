// Package casefile extracts parser test cases from markdown documents.
//
// A case starts at a heading "Test: NAME" and consists of one onyx fence
// with the input, an ast fence with the expected S-expression and an
// optional diagnostics fence listing one diagnostic kind per line.
package casefile

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	fenceInput       = "onyx"
	fenceAST         = "ast"
	fenceDiagnostics = "diagnostics"

	headingPrefix = "Test: "
)

type Case struct {
	Name        string
	Line        int // line of the heading
	Input       string
	AST         string
	Diagnostics []string
}

// Extract returns the cases of a markdown document in order.
func Extract(source []byte) ([]Case, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var (
		cases []Case
		curr  *Case
	)

	finish := func() error {
		if curr == nil {
			return nil
		}
		if curr.Input == "" {
			return fmt.Errorf("line %d: test '%s' has no %s fence", curr.Line, curr.Name, fenceInput)
		}
		if curr.AST == "" {
			return fmt.Errorf("line %d: test '%s' has no %s fence", curr.Line, curr.Name, fenceAST)
		}
		cases = append(cases, *curr)
		return nil
	}

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			heading := nodeText(n, source)
			if !strings.HasPrefix(heading, headingPrefix) {
				return ast.WalkSkipChildren, nil
			}
			if err := finish(); err != nil {
				return ast.WalkStop, err
			}
			curr = &Case{
				Name: strings.TrimSpace(strings.TrimPrefix(heading, headingPrefix)),
				Line: lineOf(n, source),
			}
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			lang := string(n.Language(source))
			line := lineOf(n, source)

			if curr == nil {
				if lang == fenceInput || lang == fenceAST || lang == fenceDiagnostics {
					return ast.WalkStop, fmt.Errorf("line %d: %s fence outside of a test", line, lang)
				}
				return ast.WalkContinue, nil
			}

			content := strings.TrimRight(blockContent(n, source), "\n")

			switch lang {
			case fenceInput:
				if curr.Input != "" {
					return ast.WalkStop, fmt.Errorf("line %d: test '%s' has more than one %s fence", line, curr.Name, lang)
				}
				curr.Input = content
			case fenceAST:
				if curr.AST != "" {
					return ast.WalkStop, fmt.Errorf("line %d: test '%s' has more than one %s fence", line, curr.Name, lang)
				}
				curr.AST = strings.Join(strings.Fields(content), " ")
			case fenceDiagnostics:
				for _, l := range strings.Split(content, "\n") {
					if l = strings.TrimSpace(l); l != "" {
						curr.Diagnostics = append(curr.Diagnostics, l)
					}
				}
			default:
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence language '%s' in test '%s'", line, lang, curr.Name)
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	if err := finish(); err != nil {
		return nil, err
	}
	return cases, nil
}

// ExtractFile reads the markdown file at path and extracts its cases.
func ExtractFile(path string) ([]Case, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cases, err := Extract(source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

func nodeText(node ast.Node, source []byte) string {
	var buf bytes.Buffer

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})

	return buf.String()
}

func blockContent(block *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer

	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}

	return buf.String()
}

// lineOf returns the line of the node's first content line, or 1 if it has
// none.
func lineOf(node ast.Node, source []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}
	start := node.Lines().At(0).Start
	return bytes.Count(source[:start], []byte("\n")) + 1
}
