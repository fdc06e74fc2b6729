package ebnflex

import (
	"strings"
	"testing"

	"github.com/dhamidi/amb/input"
	"github.com/google/go-cmp/cmp"
)

func newAssignLexer(t *testing.T, src string) *Lexer {
	t.Helper()
	g, err := LoadGrammar("testdata/assign.ebnf")
	if err != nil {
		t.Fatalf("load grammar: %v", err)
	}
	l := NewLexer(g, []byte(src), "test.txt")
	l.SetSkipKinds("Space")
	return l
}

func TestTokenize(t *testing.T) {
	l := newAssignLexer(t, "x = 42;\ny_1=7;")
	tokens, err := l.Tokenize()
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}

	type kindLit struct{ Kind, Literal string }
	var got []kindLit
	for _, tok := range tokens {
		got = append(got, kindLit{tok.Kind, tok.Literal})
	}
	want := []kindLit{
		{"Ident", "x"},
		{"Assign", "="},
		{"Number", "42"},
		{"Semi", ";"},
		{"Ident", "y_1"},
		{"Assign", "="},
		{"Number", "7"},
		{"Semi", ";"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}

	second := tokens[4].Position
	if second.Line != 2 || second.Column != 1 || second.Offset != 8 {
		t.Errorf("position of %q = %s (offset %d), want 2:1 (offset 8)", tokens[4].Literal, second, second.Offset)
	}
	if got := second.String(); got != "test.txt:2:1" {
		t.Errorf("Position.String() = %q, want %q", got, "test.txt:2:1")
	}
}

func TestTokenizeUnknownCharacter(t *testing.T) {
	l := newAssignLexer(t, "a#é")
	tokens, err := l.Tokenize()
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(tokens), tokens)
	}
	for i, lit := range []string{"#", "é"} {
		tok := tokens[i+1]
		if tok.Kind != "ERROR" || tok.Literal != lit {
			t.Errorf("token %d = %s, want ERROR %q", i+1, tok.Describe(), lit)
		}
	}
}

func TestLongestMatch(t *testing.T) {
	g, err := ParseGrammar("ops", strings.NewReader(`
		Lt = "<" .
		Le = "<=" .
		Shift = "<<" .
	`))
	if err != nil {
		t.Fatalf("parse grammar: %v", err)
	}

	tokens, err := NewLexer(g, []byte("<=<<<"), "").Tokenize()
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}

	var kinds []string
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	if diff := cmp.Diff([]string{"Le", "Shift", "Lt"}, kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenEqual(t *testing.T) {
	tok := Token{Kind: "Ident", Literal: "x", Position: Position{Line: 3, Column: 7}}

	tests := []struct {
		name     string
		expected Token
		other    any
		want     bool
	}{
		{"any literal of kind", Kind("Ident"), tok, true},
		{"same literal", Lit("Ident", "x"), tok, true},
		{"different literal", Lit("Ident", "y"), tok, false},
		{"different kind", Kind("Number"), tok, false},
		{"pointer", Kind("Ident"), &tok, true},
		{"nil pointer", Kind("Ident"), (*Token)(nil), false},
		{"not a token", Kind("Ident"), "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expected.Equal(tt.other); got != tt.want {
				t.Errorf("%v.Equal(%v) = %v, want %v", tt.expected, tt.other, got, tt.want)
			}
		})
	}
}

func TestElements(t *testing.T) {
	tokens := []Token{Lit("Ident", "x"), Lit("Assign", "=")}
	els := Elements(tokens)

	if els.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", els.Len())
	}
	if got := els.String(); got != "x,=" {
		t.Errorf("String() = %q, want %q", got, "x,=")
	}
	var _ input.Sequence = els
}
