// Package msgs collects and renders the diagnostics produced while parsing.
package msgs

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/akrennmair/onyx/token"
)

// Kind identifies a class of diagnostic.
type Kind int

const (
	ExpectedToken Kind = iota
	UnexpectedToken
	UnknownType
	UnresolvedSymbol
	RedeclaredType
)

var kindFormats = [...]struct {
	name   string
	format string
}{
	ExpectedToken:    {"ExpectedToken", "expected token '%s', got '%s'"},
	UnexpectedToken:  {"UnexpectedToken", "unexpected token '%s'"},
	UnknownType:      {"UnknownType", "unknown type '%s'"},
	UnresolvedSymbol: {"UnresolvedSymbol", "unresolved symbol '%s'"},
	RedeclaredType:   {"RedeclaredType", "'%s' is a built-in type and cannot be redeclared"},
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindFormats) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindFormats[k].name
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, f := range kindFormats {
		if f.name == s {
			return Kind(k), true
		}
	}
	return 0, false
}

// Sink receives diagnostics. Implementations only need to tolerate
// sequential calls.
type Sink interface {
	Add(kind Kind, pos token.Pos, args ...string)
}

// Message is a single recorded diagnostic.
type Message struct {
	Kind Kind
	Pos  token.Pos
	Args []string
}

// Text formats the message without its position.
func (m Message) Text() string {
	if m.Kind < 0 || int(m.Kind) >= len(kindFormats) {
		return strings.Join(m.Args, " ")
	}
	args := make([]interface{}, strings.Count(kindFormats[m.Kind].format, "%s"))
	for i := range args {
		if i < len(m.Args) {
			args[i] = m.Args[i]
		} else {
			args[i] = "?"
		}
	}
	return fmt.Sprintf(kindFormats[m.Kind].format, args...)
}

func (m Message) String() string {
	return fmt.Sprintf("%s: error: %s", m.Pos, m.Text())
}

// Messages is a Sink that keeps every diagnostic in submission order.
type Messages struct {
	list []Message
}

func (m *Messages) Add(kind Kind, pos token.Pos, args ...string) {
	m.list = append(m.list, Message{Kind: kind, Pos: pos, Args: args})
}

// Len returns the number of collected diagnostics.
func (m *Messages) Len() int {
	return len(m.list)
}

// List returns the collected diagnostics.
func (m *Messages) List() []Message {
	return m.list
}

// Kinds returns the kinds of the collected diagnostics in order.
func (m *Messages) Kinds() []Kind {
	var kinds []Kind
	for _, msg := range m.list {
		kinds = append(kinds, msg.Kind)
	}
	return kinds
}

// Has reports whether a diagnostic of the given kind was collected.
func (m *Messages) Has(kind Kind) bool {
	for _, msg := range m.list {
		if msg.Kind == kind {
			return true
		}
	}
	return false
}

var (
	posColor   = color.New(color.Bold)
	errorColor = color.New(color.FgRed, color.Bold)
)

// Print writes one line per collected diagnostic to w. Coloring follows
// color.NoColor.
func (m *Messages) Print(w io.Writer) error {
	for _, msg := range m.list {
		if _, err := fmt.Fprintf(w, "%s %s %s\n",
			posColor.Sprintf("%s:", msg.Pos),
			errorColor.Sprint("error:"),
			msg.Text()); err != nil {
			return err
		}
	}
	return nil
}
