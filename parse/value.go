package parse

import (
	"fmt"
	"strings"

	"github.com/dhamidi/amb/input"
)

// Kind distinguishes the two shapes a Value can take.
type Kind int

const (
	KindScalar Kind = iota
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindList:
		return "List"
	default:
		return "Unknown"
	}
}

// Value is the value produced by a parse branch: either a Scalar or a List.
type Value interface {
	Kind() Kind
	String() string
	Equal(other Value) bool
}

// Scalar holds a single input element or a computed value.
type Scalar struct {
	X any
}

func (s Scalar) Kind() Kind { return KindScalar }

func (s Scalar) String() string {
	if s.X == nil {
		return "null"
	}
	return fmt.Sprint(s.X)
}

func (s Scalar) Equal(other Value) bool {
	o, ok := other.(Scalar)
	return ok && input.Equal(s.X, o.X)
}

// List holds an ordered sequence of values. Seq produces two-element lists.
type List []Value

func (l List) Kind() Kind { return KindList }

// String joins the rendered elements with commas.
func (l List) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = v.String()
	}
	return strings.Join(parts, ",")
}

func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	if !ok || len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Of converts x to a Value. Values are returned as is, slices become lists
// and everything else becomes a Scalar.
func Of(x any) Value {
	switch v := x.(type) {
	case Value:
		return v
	case []Value:
		return List(v)
	case []any:
		return ListOf(v...)
	case input.Elements:
		return ListOf(v...)
	case []string:
		l := make(List, len(v))
		for i, s := range v {
			l[i] = Scalar{X: s}
		}
		return l
	default:
		return Scalar{X: x}
	}
}

// ListOf builds a List, converting each element with Of.
func ListOf(xs ...any) List {
	l := make(List, len(xs))
	for i, x := range xs {
		l[i] = Of(x)
	}
	return l
}

// Pair is the value Seq produces for two consecutive parses.
func Pair(a, b Value) List {
	return List{a, b}
}

// asList wraps v as a one-element list unless it already is one.
func asList(v Value) List {
	if l, ok := v.(List); ok {
		return l
	}
	return List{v}
}

// concatPair flattens a pair into one list. Anything that is not a pair is
// returned unchanged.
func concatPair(v Value) Value {
	pair, ok := v.(List)
	if !ok || len(pair) != 2 {
		return v
	}
	a, b := asList(pair[0]), asList(pair[1])
	out := make(List, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Add is the "+" used by Plus: numbers are summed, strings and lists are
// concatenated, a scalar next to a list is appended or prepended to it, and
// any other combination concatenates the rendered forms.
func Add(a, b Value) Value {
	al, aList := a.(List)
	bl, bList := b.(List)
	switch {
	case aList && bList:
		out := make(List, 0, len(al)+len(bl))
		return append(append(out, al...), bl...)
	case aList:
		out := make(List, 0, len(al)+1)
		return append(append(out, al...), b)
	case bList:
		out := make(List, 0, len(bl)+1)
		return append(append(out, a), bl...)
	}

	as, aok := a.(Scalar)
	bs, bok := b.(Scalar)
	if !aok || !bok {
		return Scalar{X: a.String() + b.String()}
	}
	x, y := as.X, bs.X
	if sx, ok := x.(string); ok {
		if sy, ok := y.(string); ok {
			return Scalar{X: sx + sy}
		}
	}
	if ix, ok := toInt(x); ok {
		if iy, ok := toInt(y); ok {
			return Scalar{X: ix + iy}
		}
	}
	if fx, ok := toFloat(x); ok {
		if fy, ok := toFloat(y); ok {
			return Scalar{X: fx + fy}
		}
	}
	return Scalar{X: a.String() + b.String()}
}

func toInt(x any) (int, bool) {
	switch n := x.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	}
	return 0, false
}

func toFloat(x any) (float64, bool) {
	switch n := x.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	if i, ok := toInt(x); ok {
		return float64(i), true
	}
	return 0, false
}

// joinText renders every element of a list and joins them without a
// separator. Non-list values are rendered as they are.
func joinText(v Value) Value {
	l, ok := v.(List)
	if !ok {
		return Scalar{X: v.String()}
	}
	var b strings.Builder
	for _, el := range l {
		b.WriteString(el.String())
	}
	return Scalar{X: b.String()}
}
