package parser

import (
	"fmt"
	"io"
	"log"
	"runtime"

	"github.com/akrennmair/onyx/ast"
	"github.com/akrennmair/onyx/lexer"
	"github.com/akrennmair/onyx/msgs"
	"github.com/akrennmair/onyx/token"
)

// Parser turns a token array into an AST. A Parser performs a single parse
// and must not be used from more than one goroutine; independent parsers
// may run concurrently.
type Parser struct {
	cursor

	arena  *ast.Arena
	scopes *scopeTable
	sink   msgs.Sink
	config Config
	logger *log.Logger

	reported int

	errorNode *ast.Error
}

// FatalError is returned by Parse for conditions the parser cannot
// continue from: unimplemented constructs and broken internal invariants.
type FatalError struct {
	Pos token.Pos
	Msg string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: fatal: %s", e.Pos, e.Msg)
}

type discardSink struct{}

func (discardSink) Add(msgs.Kind, token.Pos, ...string) {}

// NewParser creates a parser over tokens. Diagnostics go to sink; a nil sink
// discards them.
func NewParser(tokens []token.Token, sink msgs.Sink) *Parser {
	if sink == nil {
		sink = discardSink{}
	}

	logger := log.New(io.Discard, "parser ", log.LstdFlags|log.Lshortfile)
	arena := ast.NewArena()

	p := &Parser{
		cursor: newCursor(tokens),
		arena:  arena,
		scopes: newScopeTable(arena, logger),
		sink:   sink,
		logger: logger,
	}
	p.errorNode = arena.NewError()
	return p
}

// Parse lexes source and parses the result.
func Parse(name, source string, sink msgs.Sink, cfg Config) (*ast.Program, error) {
	p := NewParser(lexer.Lex(name, source), sink)
	p.Configure(cfg)
	return p.Parse()
}

func (p *Parser) SetLogOutput(w io.Writer) {
	p.logger.SetOutput(w)
}

func (p *Parser) Configure(cfg Config) {
	p.config = cfg
}

// Reported returns the number of diagnostics found so far, including the
// ones withheld from the sink because of Config.MaxDiagnostics.
func (p *Parser) Reported() int {
	return p.reported
}

// Arena returns the arena owning all nodes of the parse.
func (p *Parser) Arena() *ast.Arena {
	return p.arena
}

// Free releases the parser's tables and node storage. The AST must not be
// used afterwards.
func (p *Parser) Free() {
	p.scopes.identifiers = nil
	p.scopes.curr = nil
	p.arena.Release()
}

func (p *Parser) recover(errp *error) {
	e := recover()
	if e != nil {
		// rethrow runtime errors
		if _, ok := e.(runtime.Error); ok {
			panic(e)
		}
		err, ok := e.(error)
		if !ok {
			panic(e)
		}
		p.logger.Printf("aborting: %v", err)
		*errp = err
	}
}

func (p *Parser) fatalf(pos token.Pos, format string, args ...interface{}) {
	panic(&FatalError{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

// Parse parses top-level declarations until the end of the stream. A
// non-nil error is only returned for fatal conditions; everything else is
// reported to the sink and the returned program is a best effort.
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer func() {
		if err != nil {
			prog = nil
		}
	}()
	defer p.recover(&err)

	prog = p.arena.NewProgram()

	var last ast.Node = prog
	for p.current().Kind != token.EndStream {
		decl := p.parseTopLevelStatement()
		if decl == nil || isErrorNode(decl) {
			continue
		}
		last.Head().Next = decl
		last = decl
	}

	return prog, nil
}

func isErrorNode(n ast.Node) bool {
	_, ok := n.(*ast.Error)
	return ok
}
