package grammars

import (
	"math"
	"strconv"

	"github.com/dhamidi/amb/input"
	"github.com/dhamidi/amb/parse"
)

func isDigit(el any) bool {
	s, ok := el.(string)
	return ok && len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

func isLetter(el any) bool {
	s, ok := el.(string)
	if !ok || len(s) != 1 {
		return false
	}
	c := s[0]
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

var (
	digit  = parse.Satisfy(isDigit)
	letter = parse.Satisfy(isLetter)
	alnum  = letter.Or(digit)
)

// greedy keeps only the first result of p. Over the repetition combinators
// that is the longest run, which turns an ambiguous lexeme into a
// deterministic one.
func greedy(p parse.Parser) parse.Parser {
	return func(in input.Sequence) []parse.Result {
		if results := p(in); len(results) > 0 {
			return results[:1]
		}
		return nil
	}
}

// filterMap applies f to every result of p and drops the results f rejects.
func filterMap(p parse.Parser, f func(parse.Value) (parse.Value, bool)) parse.Parser {
	return func(in input.Sequence) []parse.Result {
		var out []parse.Result
		for _, r := range p(in) {
			if v, ok := f(r.Value); ok {
				out = append(out, parse.Result{Remaining: r.Remaining, Value: v})
			}
		}
		return out
	}
}

// ref defers to *p at parse time, for recursive grammars.
func ref(p *parse.Parser) parse.Parser {
	return func(in input.Sequence) []parse.Result {
		return (*p)(in)
	}
}

var spaces = greedy(parse.ZeroOrMoreCharacters(parse.Symbol(" ")))

// lexeme is p followed by optional spaces, keeping p's value.
func lexeme(p parse.Parser) parse.Parser {
	return p.ThenDrop(spaces)
}

func sym(s string) parse.Parser {
	return lexeme(parse.Symbol(s))
}

// Arith parses integer arithmetic and evaluates it. Operators associate to
// the left and * / bind tighter than + -. Division by zero and integer
// overflow, of a literal or of an intermediate result, make the parse fail.
func Arith() parse.Parser {
	var expr parse.Parser

	number := filterMap(lexeme(greedy(parse.OneOrMoreCharacters(digit))), func(v parse.Value) (parse.Value, bool) {
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return nil, false
		}
		return parse.Scalar{X: n}, true
	})

	var factor parse.Parser
	negated := filterMap(sym("-").ThenReturn(ref(&factor)), func(v parse.Value) (parse.Value, bool) {
		n, ok := apply("-", 0, intOf(v))
		if !ok {
			return nil, false
		}
		return parse.Scalar{X: n}, true
	})
	parens := sym("(").ThenReturn(ref(&expr)).ThenDrop(sym(")"))
	factor = parse.StrictAlt(number, parens).OrElse(negated)

	term := chainLeft(factor, sym("*").OrElse(sym("/")))
	expr = chainLeft(term, sym("+").OrElse(sym("-")))

	return spaces.ThenReturn(expr)
}

// chainLeft parses operand { op operand } and folds the operations from the
// left. The repetition is greedy, so only the longest chain is kept.
func chainLeft(operand, op parse.Parser) parse.Parser {
	rest := greedy(parse.ZeroOrMoreOf(op.Then(operand)))
	return filterMap(operand.Then(rest), func(v parse.Value) (parse.Value, bool) {
		pair := v.(parse.List)
		acc := intOf(pair[0])
		// ConcatSeq flattens the (op, operand) pairs into one list.
		ops := pair[1].(parse.List)
		for i := 0; i+1 < len(ops); i += 2 {
			var ok bool
			if acc, ok = apply(ops[i].String(), acc, intOf(ops[i+1])); !ok {
				return nil, false
			}
		}
		return parse.Scalar{X: acc}, true
	})
}

// apply evaluates a op b. It reports false on division by zero and when the
// result does not fit in an int.
func apply(op string, a, b int) (int, bool) {
	switch op {
	case "+":
		s := a + b
		return s, (s > a) == (b > 0)
	case "-":
		d := a - b
		return d, (d < a) == (b > 0)
	case "*":
		if a == 0 || b == 0 {
			return 0, true
		}
		if (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
			return 0, false
		}
		p := a * b
		return p, p/b == a
	case "/":
		if b == 0 || (a == math.MinInt && b == -1) {
			return 0, false
		}
		return a / b, true
	}
	return 0, false
}

func intOf(v parse.Value) int {
	s, ok := v.(parse.Scalar)
	if !ok {
		return 0
	}
	n, _ := s.X.(int)
	return n
}

// Splits parses a word as two consecutive non-empty words. A word of n
// letters has n-1 complete parses, one per split point.
func Splits() parse.Parser {
	word := parse.OneOrMoreCharacters(letter)
	return word.Then(word)
}

// Idents parses identifiers separated by commas, each optionally followed by
// a space. The value is the list of identifiers.
func Idents() parse.Parser {
	ident := letter.ThenAppend(parse.ZeroOrMoreCharacters(alnum))
	sep := parse.Symbol(",").ThenDrop(parse.Optional(parse.Symbol(" ")))
	return ident.ThenConcat(parse.ZeroOrMoreOf(sep.ThenReturn(ident)))
}
