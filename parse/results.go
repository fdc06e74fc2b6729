package parse

import (
	"errors"
	"fmt"

	"github.com/dhamidi/amb/input"
)

// ErrNoCompleteParse is returned by FinalValue when no result consumed the
// whole input. Check HasCompleteParse or Accepts first.
var ErrNoCompleteParse = errors.New("no result: parse incomplete or failed")

// HasCompleteParse reports whether some result consumed all of its input.
func HasCompleteParse(results []Result) bool {
	for _, r := range results {
		if r.complete() {
			return true
		}
	}
	return false
}

// FinalValue returns the value of the first complete result.
func FinalValue(results []Result) (Value, error) {
	for _, r := range results {
		if r.complete() {
			return r.Value, nil
		}
	}
	return nil, fmt.Errorf("final value of %d results: %w", len(results), ErrNoCompleteParse)
}

// MustFinalValue is like FinalValue but panics if there is no complete result.
func MustFinalValue(results []Result) Value {
	v, err := FinalValue(results)
	if err != nil {
		panic(err)
	}
	return v
}

// Accepts reports whether p can consume all of in.
func Accepts(p Parser, in input.Sequence) bool {
	return HasCompleteParse(p(in))
}

// EqualsArray reports whether l and r are both sequences with structurally
// equal contents. Lists, element slices and input.Elements count as
// sequences; anything else makes the comparison false.
func EqualsArray(l, r any) bool {
	ls, lok := sequenceOf(l)
	rs, rok := sequenceOf(r)
	if !lok || !rok || len(ls) != len(rs) {
		return false
	}
	for i := range ls {
		left, right := ls[i], rs[i]
		if _, nested := sequenceOf(left); nested {
			if !EqualsArray(left, right) {
				return false
			}
			continue
		}
		if !sameElement(left, right) {
			return false
		}
	}
	return true
}

// ContainsResult reports whether results holds a result equal to needle.
func ContainsResult(needle Result, results []Result) bool {
	for _, r := range results {
		if r.Equal(needle) {
			return true
		}
	}
	return false
}

func sequenceOf(v any) ([]any, bool) {
	switch s := v.(type) {
	case List:
		out := make([]any, len(s))
		for i, el := range s {
			out[i] = el
		}
		return out, true
	case []any:
		return s, true
	case input.Elements:
		return s, true
	}
	return nil, false
}

func sameElement(a, b any) bool {
	if sa, ok := a.(Scalar); ok {
		a = sa.X
	}
	if sb, ok := b.(Scalar); ok {
		b = sb.X
	}
	return input.Equal(a, b)
}
