// Package parse is a backtracking parser combinator library that keeps every
// valid parse instead of committing to the first one.
//
// # Overview
//
// A Parser is a function from an input sequence to a slice of Results. Each
// Result is one way the parser could match a prefix of the input: it records
// what is left of the input and the Value produced. An empty slice means the
// parser failed; more than one Result means the input is ambiguous at this
// point.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Parser    │────▶│  []Result   │
//	│ (Sequence)  │     │ (composed)  │     │ (all parses)│
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                                               │
//	                                               ▼
//	                                        ┌─────────────┐
//	                                        │  Accepts /  │
//	                                        │ FinalValue  │
//	                                        └─────────────┘
//
// # Building Parsers
//
// Grammars are assembled bottom-up. Satisfy, Symbol, Token, Succeed, Epsilon
// and Fail are the primitives. Alt, StrictAlt, Seq, Apply, ConcatSeq,
// Sequence, Plus, TakeFirstValueOfSeq and TakeSecondValueOfSeq combine
// parsers, and ZeroOrMoreOf, OneOrMoreOf, Optional, ZeroOrMoreCharacters and
// OneOrMoreCharacters repeat them. Every combinator is also available as a
// method, so grammars read left to right:
//
//	digit := parse.Satisfy(func(el any) bool {
//	    s, _ := el.(string)
//	    return s >= "0" && s <= "9"
//	})
//	number := parse.OneOrMoreCharacters(digit)
//	sum := number.ThenDrop(parse.Symbol("+")).Then(number)
//
// # Ordering
//
// Result order is deterministic. Alt returns the results of its first parser
// before those of its second. Seq iterates the results of its first parser in
// order and, for each of them, the results of the second parser on the
// remaining input. The repetition combinators are defined through Alt and
// therefore list the longest run first and the empty run last.
//
// # Values
//
// Values are either a Scalar (a single element or computed value) or a List.
// Seq produces two-element lists; ConcatSeq flattens them so that chains of
// ConcatSeq and the repetition combinators produce flat lists. Plus combines
// values with Add.
//
// # Interpreting Results
//
// Accepts and HasCompleteParse report whether some parse consumed the whole
// input. FinalValue returns the value of the first such parse, or an error
// wrapping ErrNoCompleteParse if there is none.
//
// # Termination
//
// Nothing is memoized and every alternative is explored eagerly. Left
// recursive grammars, highly ambiguous grammars and repetition of a parser
// that can succeed without consuming input may not terminate.
package parse
