// Package grammars holds example grammars built from the parse combinators.
package grammars

import (
	"slices"

	"github.com/dhamidi/amb/input"
	"github.com/dhamidi/amb/parse"
)

// Grammar is a named parser together with the way it reads its input.
type Grammar struct {
	Name        string
	Description string
	Example     string
	Parser      parse.Parser
	// Input turns source text into the sequence Parser consumes.
	Input func(src string) (input.Sequence, error)
}

// Parse reads src with g.Input and runs the parser on it.
func (g Grammar) Parse(src string) ([]parse.Result, error) {
	in, err := g.Input(src)
	if err != nil {
		return nil, err
	}
	return g.Parser(in), nil
}

var registry = map[string]Grammar{}

func register(g Grammar) {
	if g.Input == nil {
		g.Input = textInput
	}
	registry[g.Name] = g
}

// Lookup returns the grammar registered under name.
func Lookup(name string) (Grammar, bool) {
	g, ok := registry[name]
	return g, ok
}

// Names returns the names of all grammars in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns every grammar, sorted by name.
func All() []Grammar {
	var all []Grammar
	for _, name := range Names() {
		all = append(all, registry[name])
	}
	return all
}

func textInput(src string) (input.Sequence, error) {
	return input.Text(src), nil
}

func init() {
	register(Grammar{
		Name:        "arith",
		Description: "integer arithmetic with + - * / and parentheses, evaluated",
		Example:     "2 * (3 + 4) - 5",
		Parser:      Arith(),
	})
	register(Grammar{
		Name:        "splits",
		Description: "every way to split a word into two non-empty parts",
		Example:     "abcd",
		Parser:      Splits(),
	})
	register(Grammar{
		Name:        "idents",
		Description: "comma separated identifiers",
		Example:     "foo, bar2,baz",
		Parser:      Idents(),
	})
	register(Grammar{
		Name:        "assign",
		Description: "name = value; statements over EBNF-defined tokens",
		Example:     "x = 42; y = x;",
		Parser:      Assign(),
		Input:       assignInput,
	})
}
