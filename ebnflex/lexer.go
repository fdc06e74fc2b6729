// Package ebnflex provides lexical scanning based on EBNF grammars.
//
// Productions whose names start with an uppercase letter are token kinds;
// lowercase productions are fragments they can refer to. At each position
// the lexer emits the longest token any kind matches.
package ebnflex

import (
	"fmt"
	"io"
	"os"
	"slices"
	"unicode/utf8"

	"github.com/dhamidi/amb/input"
	"golang.org/x/exp/ebnf"
)

// Position represents a location in source code.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexical token with its position.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

// Kind returns a token that matches any token of the given kind.
func Kind(kind string) Token {
	return Token{Kind: kind}
}

// Lit returns a token that matches tokens of the given kind and literal.
func Lit(kind, literal string) Token {
	return Token{Kind: kind, Literal: literal}
}

func (t Token) String() string {
	return t.Literal
}

// Describe renders the token with its position and kind, for listings.
func (t Token) Describe() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

// Equal reports whether other is a token of the same kind. If t has a
// literal, other's literal must match it too. Positions are ignored.
func (t Token) Equal(other any) bool {
	var o Token
	switch v := other.(type) {
	case Token:
		o = v
	case *Token:
		if v == nil {
			return false
		}
		o = *v
	default:
		return false
	}
	if t.Kind != o.Kind {
		return false
	}
	return t.Literal == "" || t.Literal == o.Literal
}

var _ input.Equaler = Token{}

// Elements converts tokens into an input sequence for token grammars.
func Elements(tokens []Token) input.Elements {
	els := make(input.Elements, len(tokens))
	for i, tok := range tokens {
		els[i] = tok
	}
	return els
}

// memoKey is used for memoization of match results.
type memoKey struct {
	name   string
	offset int
}

// Lexer tokenizes input based on an EBNF grammar.
type Lexer struct {
	grammar  ebnf.Grammar
	kinds    []string
	skip     map[string]bool
	input    []byte
	filename string
	pos      int
	line     int
	column   int
	memo     map[memoKey]int  // match length per production and offset, -1 for no match
	visiting map[memoKey]bool // cycle detection
}

// NewLexer creates a lexer for the given grammar and input.
func NewLexer(grammar ebnf.Grammar, src []byte, filename string) *Lexer {
	var kinds []string
	for name, prod := range grammar {
		if prod.Expr != nil && isKind(name) {
			kinds = append(kinds, name)
		}
	}
	// Sorted so that equally long matches always resolve to the same kind.
	slices.Sort(kinds)

	return &Lexer{
		grammar:  grammar,
		kinds:    kinds,
		skip:     make(map[string]bool),
		input:    src,
		filename: filename,
		line:     1,
		column:   1,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

func isKind(name string) bool {
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}

// LoadGrammar loads an EBNF grammar from a file.
func LoadGrammar(filename string) (ebnf.Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	return ParseGrammar(filename, f)
}

// ParseGrammar reads an EBNF grammar from r.
func ParseGrammar(name string, r io.Reader) (ebnf.Grammar, error) {
	grammar, err := ebnf.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return grammar, nil
}

// SetSkipKinds sets token kinds, such as whitespace, that Tokenize drops.
func (l *Lexer) SetSkipKinds(kinds ...string) {
	l.skip = make(map[string]bool, len(kinds))
	for _, k := range kinds {
		l.skip[k] = true
	}
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return Position{
		Filename: l.filename,
		Offset:   l.pos,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) advance(n int) {
	for _, r := range string(l.input[l.pos : l.pos+n]) {
		if r == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
	}
	l.pos += n
}

// NextToken returns the next token from the input, or io.EOF at the end.
// Input that no token kind matches is returned one character at a time as
// tokens of kind "ERROR".
func (l *Lexer) NextToken() (Token, error) {
	if l.pos >= len(l.input) {
		return Token{Kind: "EOF", Position: l.Position()}, io.EOF
	}

	startPos := l.Position()
	start := l.pos

	// Reset per token to bound memory.
	l.memo = make(map[memoKey]int)

	var bestKind string
	var bestLen int
	for _, name := range l.kinds {
		l.visiting = make(map[memoKey]bool)
		if n := l.matchName(name, start); n > bestLen {
			bestLen = n
			bestKind = name
		}
	}

	if bestLen == 0 {
		_, size := utf8.DecodeRune(l.input[start:])
		l.advance(size)
		return Token{
			Kind:     "ERROR",
			Literal:  string(l.input[start : start+size]),
			Position: startPos,
		}, nil
	}

	l.advance(bestLen)
	return Token{
		Kind:     bestKind,
		Literal:  string(l.input[start : start+bestLen]),
		Position: startPos,
	}, nil
}

// Tokenize reads all tokens up to the end of input. Skipped kinds and the
// final EOF token are not included.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		if l.skip[tok.Kind] {
			continue
		}
		tokens = append(tokens, tok)
	}
}

// match returns the length of the longest match of expr at offset, or 0.
func (l *Lexer) match(expr ebnf.Expression, offset int) int {
	switch e := expr.(type) {
	case *ebnf.Token:
		return l.matchLiteral(e.String, offset)

	case *ebnf.Range:
		return l.matchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		pos := offset
		for _, item := range e {
			n := l.match(item, pos)
			if n == 0 && !nullable(item) {
				return 0
			}
			pos += n
		}
		return pos - offset

	case ebnf.Alternative:
		best := 0
		for _, alt := range e {
			if n := l.match(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *ebnf.Repetition:
		pos := offset
		for {
			n := l.match(e.Body, pos)
			if n == 0 {
				break
			}
			pos += n
		}
		return pos - offset

	case *ebnf.Option:
		return l.match(e.Body, offset)

	case *ebnf.Group:
		return l.match(e.Body, offset)

	case *ebnf.Name:
		return l.matchName(e.String, offset)

	default:
		return 0
	}
}

// nullable reports whether expr may match the empty string, so that a
// zero-length match inside a sequence is not treated as failure.
func nullable(expr ebnf.Expression) bool {
	switch e := expr.(type) {
	case *ebnf.Repetition, *ebnf.Option:
		return true
	case *ebnf.Group:
		return nullable(e.Body)
	case ebnf.Sequence:
		for _, item := range e {
			if !nullable(item) {
				return false
			}
		}
		return true
	case ebnf.Alternative:
		for _, alt := range e {
			if nullable(alt) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// matchName matches a named production with memoization and cycle detection.
func (l *Lexer) matchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}

	if result, ok := l.memo[key]; ok {
		if result == -1 {
			return 0
		}
		return result
	}

	// Left recursion: the production is already being matched here.
	if l.visiting[key] {
		return 0
	}

	prod, ok := l.grammar[name]
	if !ok || prod.Expr == nil {
		l.memo[key] = -1
		return 0
	}

	l.visiting[key] = true
	result := l.match(prod.Expr, offset)
	delete(l.visiting, key)

	if result == 0 {
		l.memo[key] = -1
	} else {
		l.memo[key] = result
	}
	return result
}

func (l *Lexer) matchLiteral(lit string, offset int) int {
	if lit == "" || offset+len(lit) > len(l.input) {
		return 0
	}
	if string(l.input[offset:offset+len(lit)]) == lit {
		return len(lit)
	}
	return 0
}

// matchRange matches a single character in a range such as "a" … "z".
func (l *Lexer) matchRange(begin, end string, offset int) int {
	if offset >= len(l.input) {
		return 0
	}
	lo, loSize := utf8.DecodeRuneInString(begin)
	hi, hiSize := utf8.DecodeRuneInString(end)
	if loSize != len(begin) || hiSize != len(end) {
		return 0
	}
	r, size := utf8.DecodeRune(l.input[offset:])
	if r >= lo && r <= hi {
		return size
	}
	return 0
}
