package parse

import (
	"github.com/dhamidi/amb/input"
)

// Parser maps an input sequence to every way it can be parsed at its start.
// An empty result slice means the parse failed at this position.
type Parser func(in input.Sequence) []Result

// Parse runs the parser on in.
func (p Parser) Parse(in input.Sequence) []Result {
	return p(in)
}

// Or is Alt(p, q).
func (p Parser) Or(q Parser) Parser { return Alt(p, q) }

// OrElse is StrictAlt(p, q).
func (p Parser) OrElse(q Parser) Parser { return StrictAlt(p, q) }

// Then is Seq(p, q).
func (p Parser) Then(q Parser) Parser { return Seq(p, q) }

// ThenConcat is ConcatSeq(p, q).
func (p Parser) ThenConcat(q Parser) Parser { return ConcatSeq(p, q) }

// ThenAppend is Plus(p, q).
func (p Parser) ThenAppend(q Parser) Parser { return Plus(p, q) }

// ThenDrop is TakeFirstValueOfSeq(p, q).
func (p Parser) ThenDrop(q Parser) Parser { return TakeFirstValueOfSeq(p, q) }

// ThenReturn is TakeSecondValueOfSeq(p, q).
func (p Parser) ThenReturn(q Parser) Parser { return TakeSecondValueOfSeq(p, q) }

// Satisfy consumes one element if pred accepts it. The element becomes the
// value. pred is not called on empty input.
func Satisfy(pred func(el any) bool) Parser {
	return func(in input.Sequence) []Result {
		if in.Len() == 0 {
			return nil
		}
		head := in.Head()
		if !pred(head) {
			return nil
		}
		return []Result{NewResult(in.Tail(), head)}
	}
}

// Symbol consumes one element equal to expected.
func Symbol(expected any) Parser {
	return Satisfy(func(el any) bool {
		return input.Equal(expected, el)
	})
}

// Token consumes one element that expected considers equal to itself.
func Token(expected input.Equaler) Parser {
	return Satisfy(expected.Equal)
}

// Succeed consumes nothing and produces v.
func Succeed(v any) Parser {
	value := Of(v)
	return func(in input.Sequence) []Result {
		return []Result{{Remaining: in, Value: value}}
	}
}

// Epsilon consumes nothing and produces a nil scalar.
var Epsilon = Succeed(nil)

// Fail never succeeds.
var Fail Parser = func(in input.Sequence) []Result {
	return nil
}

// Alt returns all results of p1 followed by all results of p2. Ambiguity is
// preserved: nothing is deduplicated or reordered.
func Alt(p1, p2 Parser) Parser {
	return func(in input.Sequence) []Result {
		first := p1(in)
		second := p2(in)
		if len(second) == 0 {
			return first
		}
		out := make([]Result, 0, len(first)+len(second))
		out = append(out, first...)
		return append(out, second...)
	}
}

// StrictAlt returns the results of p1, or those of p2 if p1 failed.
func StrictAlt(p1, p2 Parser) Parser {
	return func(in input.Sequence) []Result {
		if results := p1(in); len(results) > 0 {
			return results
		}
		return p2(in)
	}
}

// Seq runs p2 on the remainder of every result of p1 and pairs the values.
// Results are ordered by p1's results first, then by p2's.
func Seq(p1, p2 Parser) Parser {
	return func(in input.Sequence) []Result {
		var out []Result
		for _, r1 := range p1(in) {
			for _, r2 := range p2(r1.Remaining) {
				out = append(out, Result{
					Remaining: r2.Remaining,
					Value:     Pair(r1.Value, r2.Value),
				})
			}
		}
		return out
	}
}

// Apply maps f over the value of every result of p.
func Apply(f func(Value) Value, p Parser) Parser {
	return func(in input.Sequence) []Result {
		results := p(in)
		if len(results) == 0 {
			return nil
		}
		out := make([]Result, len(results))
		for i, r := range results {
			out[i] = Result{Remaining: r.Remaining, Value: f(r.Value)}
		}
		return out
	}
}

// ConcatSeq is Seq with the pair flattened into a single list, so chains of
// ConcatSeq build flat lists instead of nested pairs.
func ConcatSeq(p1, p2 Parser) Parser {
	return Apply(concatPair, Seq(p1, p2))
}

// Sequence chains parsers with ConcatSeq from left to right. A single parser
// is returned unchanged.
func Sequence(first Parser, rest ...Parser) Parser {
	p := first
	for _, next := range rest {
		p = ConcatSeq(p, next)
	}
	return p
}

// Plus chains parsers with Seq from left to right and combines each pair of
// values with Add. A single parser is returned unchanged.
func Plus(first Parser, rest ...Parser) Parser {
	p := first
	for _, next := range rest {
		p = Apply(addPair, Seq(p, next))
	}
	return p
}

// TakeFirstValueOfSeq is Seq(p1, p2) keeping only p1's value.
func TakeFirstValueOfSeq(p1, p2 Parser) Parser {
	return Apply(firstOf, Seq(p1, p2))
}

// TakeSecondValueOfSeq is Seq(p1, p2) keeping only p2's value.
func TakeSecondValueOfSeq(p1, p2 Parser) Parser {
	return Apply(secondOf, Seq(p1, p2))
}

func addPair(v Value) Value {
	pair := v.(List)
	return Add(pair[0], pair[1])
}

func firstOf(v Value) Value {
	return v.(List)[0]
}

func secondOf(v Value) Value {
	return v.(List)[1]
}
