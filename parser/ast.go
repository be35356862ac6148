package parser

import (
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/shibukawa/snaprange/tokenizer"
)

// TermKind distinguishes single values from spans
type TermKind int

const (
	SINGLE TermKind = iota
	SPAN
)

func (k TermKind) String() string {
	switch k {
	case SINGLE:
		return "SINGLE"
	case SPAN:
		return "SPAN"
	default:
		return "UNKNOWN"
	}
}

// Term is one comma separated segment of a range expression.
// For SINGLE terms Lower and Upper hold the same value.
type Term struct {
	Kind  TermKind
	Lower int
	Upper int
	Pos   tokenizer.Position
	Raw   string
}

// Reversed reports whether the term is a span with Upper < Lower.
func (t Term) Reversed() bool {
	return t.Upper < t.Lower
}

// Len returns the number of values the term expands to.
// Reversed spans expand to nothing.
func (t Term) Len() int {
	if t.Reversed() {
		return 0
	}

	// bounds are non-negative, so only the +1 can overflow
	diff := t.Upper - t.Lower
	if diff == math.MaxInt {
		return math.MaxInt
	}

	return diff + 1
}

// All iterates over the values of the term in ascending order.
func (t Term) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		if t.Reversed() {
			return
		}

		for v := t.Lower; ; v++ {
			if !yield(v) || v == t.Upper {
				return
			}
		}
	}
}

func (t Term) String() string {
	if t.Kind == SINGLE {
		return strconv.Itoa(t.Lower)
	}

	return strconv.Itoa(t.Lower) + "-" + strconv.Itoa(t.Upper)
}

// Expression is a parsed range expression.
type Expression struct {
	Source string
	Terms  []Term
}

// Len returns the total number of expanded values, saturating at math.MaxInt.
func (e *Expression) Len() int {
	total := 0

	for _, term := range e.Terms {
		n := term.Len()
		if total > math.MaxInt-n {
			return math.MaxInt
		}

		total += n
	}

	return total
}

// All iterates over the expanded values in expression order. Duplicates
// are kept.
func (e *Expression) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, term := range e.Terms {
			for v := range term.All() {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// preallocLimit bounds the initial capacity of Values so that unlimited
// expansions grow on demand instead of failing up front.
const preallocLimit = 1 << 16

// Values expands the expression into a new slice. The result is never nil.
func (e *Expression) Values() []int {
	values := make([]int, 0, min(e.Len(), preallocLimit))
	for v := range e.All() {
		values = append(values, v)
	}

	return values
}

// String renders the terms in canonical form, e.g. "0,6-12".
func (e *Expression) String() string {
	parts := make([]string, len(e.Terms))
	for i, term := range e.Terms {
		parts[i] = term.String()
	}

	return strings.Join(parts, ",")
}
