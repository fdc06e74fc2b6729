package grammars

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/dhamidi/amb/ebnflex"
	"github.com/dhamidi/amb/input"
	"github.com/dhamidi/amb/parse"
	"golang.org/x/exp/ebnf"
)

//go:embed assign.ebnf
var assignEBNF []byte

var assignLexical = mustGrammar("assign.ebnf", assignEBNF)

func mustGrammar(name string, src []byte) ebnf.Grammar {
	g, err := ebnflex.ParseGrammar(name, bytes.NewReader(src))
	if err != nil {
		panic(err)
	}
	return g
}

// AssignTokens lexes src with the assignment grammar's token kinds,
// dropping whitespace.
func AssignTokens(src string) ([]ebnflex.Token, error) {
	l := ebnflex.NewLexer(assignLexical, []byte(src), "")
	l.SetSkipKinds("Space")
	tokens, err := l.Tokenize()
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	return tokens, nil
}

func assignInput(src string) (input.Sequence, error) {
	tokens, err := AssignTokens(src)
	if err != nil {
		return nil, err
	}
	return ebnflex.Elements(tokens), nil
}

// Binding is one parsed "name = value;" statement.
type Binding struct {
	Name  string
	Value string
}

func (b Binding) String() string {
	return b.Name + "=" + b.Value
}

// Assign parses one or more "name = value;" statements over ebnflex tokens,
// where value is an identifier or a number. The value is the list of
// bindings.
func Assign() parse.Parser {
	ident := parse.Token(ebnflex.Kind("Ident"))
	value := ident.OrElse(parse.Token(ebnflex.Kind("Number")))
	stmt := ident.
		ThenDrop(parse.Token(ebnflex.Lit("Assign", "="))).
		Then(value).
		ThenDrop(parse.Token(ebnflex.Kind("Semi")))

	binding := parse.Apply(func(v parse.Value) parse.Value {
		pair := v.(parse.List)
		return parse.Scalar{X: Binding{Name: literal(pair[0]), Value: literal(pair[1])}}
	}, stmt)

	return parse.OneOrMoreOf(binding)
}

func literal(v parse.Value) string {
	if s, ok := v.(parse.Scalar); ok {
		if tok, ok := s.X.(ebnflex.Token); ok {
			return tok.Literal
		}
	}
	return v.String()
}
