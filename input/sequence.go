// Package input provides the ordered, immutable sequences that parsers consume.
package input

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Sequence is an ordered, 0-indexed, immutable collection of elements.
// Head and At must only be called with a valid index; callers check Len first.
type Sequence interface {
	Len() int
	Head() any
	Tail() Sequence
	At(i int) any
	String() string
}

// Equaler is implemented by element types that define their own equality,
// such as lexer tokens that ignore source positions.
type Equaler interface {
	Equal(other any) bool
}

// Text is a character sequence. Each element is a one-rune string.
type Text string

// NFC returns s as Text in Unicode normalization form C, so that composed and
// decomposed spellings of the same character match the same symbols.
func NFC(s string) Text {
	return Text(norm.NFC.String(s))
}

func (t Text) Len() int {
	return utf8.RuneCountInString(string(t))
}

func (t Text) Head() any {
	r, _ := utf8.DecodeRuneInString(string(t))
	return string(r)
}

func (t Text) Tail() Sequence {
	if t == "" {
		return t
	}
	_, size := utf8.DecodeRuneInString(string(t))
	return t[size:]
}

func (t Text) At(i int) any {
	n := 0
	for _, r := range string(t) {
		if n == i {
			return string(r)
		}
		n++
	}
	panic("input: index out of range")
}

func (t Text) String() string {
	return string(t)
}

// Elements is a sequence of arbitrary values, typically tokens.
type Elements []any

func (e Elements) Len() int {
	return len(e)
}

func (e Elements) Head() any {
	return e[0]
}

func (e Elements) Tail() Sequence {
	if len(e) == 0 {
		return e
	}
	return e[1:]
}

func (e Elements) At(i int) any {
	return e[i]
}

// String renders the elements joined by commas. Nested element slices are
// flattened into the same rendering.
func (e Elements) String() string {
	parts := make([]string, len(e))
	for i, el := range e {
		parts[i] = render(el)
	}
	return strings.Join(parts, ",")
}

func render(el any) string {
	switch v := el.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		return Elements(v).String()
	default:
		return fmt.Sprint(v)
	}
}

// Equal reports whether two elements are equal. Nested element slices are
// compared structurally, comparable values with == and values of other
// types, such as maps, with reflect.DeepEqual.
func Equal(a, b any) bool {
	as, aok := slice(a)
	bs, bok := slice(b)
	if aok || bok {
		if !aok || !bok || len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !Equal(as[i], bs[i]) {
				return false
			}
		}
		return true
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

func slice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case Elements:
		return s, true
	}
	return nil, false
}

// SameSequence reports whether two remainders are equal: texts by value,
// element sequences element by element. Text and Elements never equal each
// other; other implementations are compared element by element with Equal.
func SameSequence(a, b Sequence) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case Text:
		y, ok := b.(Text)
		return ok && x == y
	case Elements:
		y, ok := b.(Elements)
		return ok && Equal(x, y)
	}
	switch b.(type) {
	case Text, Elements:
		return false
	}
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !Equal(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}
