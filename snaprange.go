// Package snaprange parses row range expressions such as "0,6-12" into
// ordered integer sequences.
//
// A range expression is a comma separated list of terms. A term is either a
// single non-negative integer or an inclusive span "lower-upper":
//
//	values, ok := snaprange.Parse("0,6-12")
//	// values == []int{0, 6, 7, 8, 9, 10, 11, 12}, ok == true
//
// Values keep expression order and duplicates are not removed. Invalid input
// is rejected as a whole; there are no partial results.
package snaprange

import (
	"github.com/shibukawa/snaprange/parser"
)

// Parse converts a range expression into its values using
// parser.DefaultOptions. ok is false when the expression is invalid.
func Parse(expr string) (values []int, ok bool) {
	values, err := ParseWithOptions(expr, parser.DefaultOptions)
	if err != nil {
		return nil, false
	}

	return values, true
}

// ParseWithOptions is Parse with explicit options and a diagnostic error.
// The error wraps ErrInvalidRange and one of the more specific errors.
func ParseWithOptions(expr string, opts parser.Options) ([]int, error) {
	parsed, err := parser.Parse(expr, opts)
	if err != nil {
		return nil, err
	}

	return parsed.Values(), nil
}
