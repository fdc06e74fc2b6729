package parse

import (
	"fmt"

	"github.com/dhamidi/amb/input"
)

// Result is one successful parse branch: the input left unconsumed and the
// value produced so far.
type Result struct {
	Remaining input.Sequence
	Value     Value
}

// NewResult creates a Result. The value is converted with Of.
func NewResult(remaining input.Sequence, value any) Result {
	return Result{Remaining: remaining, Value: Of(value)}
}

func (r Result) String() string {
	return fmt.Sprintf("{ Remaining: %s | Value: %s }", r.Remaining, r.Value)
}

// Equal reports whether both results have equal remainders and equal values.
func (r Result) Equal(other Result) bool {
	if !input.SameSequence(r.Remaining, other.Remaining) {
		return false
	}
	if r.Value == nil || other.Value == nil {
		return r.Value == nil && other.Value == nil
	}
	return r.Value.Equal(other.Value)
}

// complete reports whether the branch consumed all of its input. A result
// without a remainder is not complete.
func (r Result) complete() bool {
	return r.Remaining != nil && r.Remaining.Len() == 0
}
