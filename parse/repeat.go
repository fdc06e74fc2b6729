package parse

import (
	"github.com/dhamidi/amb/input"
)

// ZeroOrMoreOf matches p as many times as possible and also every shorter
// run, down to zero matches. Results are ordered from the longest run to the
// empty one; each value is the flat list of matched values.
//
// p must consume input whenever it succeeds. A parser that can succeed
// without consuming anything makes the recursion diverge.
func ZeroOrMoreOf(p Parser) Parser {
	var many Parser
	many = func(in input.Sequence) []Result {
		return p.ThenConcat(many).Or(Succeed(List{}))(in)
	}
	return many
}

// OneOrMoreOf is ZeroOrMoreOf without the zero-match branch.
func OneOrMoreOf(p Parser) Parser {
	return p.ThenConcat(ZeroOrMoreOf(p))
}

// Optional matches p at most once. The matched branch, with p's value
// wrapped in a one-element list, comes before the skipped branch.
func Optional(p Parser) Parser {
	return Apply(wrap, p).Or(Succeed(List{}))
}

// ZeroOrMoreCharacters is ZeroOrMoreOf with the matched values joined into a
// single string. The zero-match branch produces "".
func ZeroOrMoreCharacters(p Parser) Parser {
	return Apply(joinText, ZeroOrMoreOf(p))
}

// OneOrMoreCharacters is OneOrMoreOf with the matched values joined into a
// single string.
func OneOrMoreCharacters(p Parser) Parser {
	return Apply(joinText, OneOrMoreOf(p))
}

func wrap(v Value) Value {
	return List{v}
}
