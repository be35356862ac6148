package formatter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shibukawa/snaprange/parser"
)

// Sentinel errors
var (
	ErrEmptyValues   = errors.New("no values to format")
	ErrNegativeValue = errors.New("negative values cannot be expressed in a range expression")
)

// RangeFormatter turns integer lists back into range expressions.
type RangeFormatter struct {
	minSpan int
}

// NewRangeFormatter creates a formatter that collapses every run of two or
// more consecutive ascending values into a span.
func NewRangeFormatter() *RangeFormatter {
	return &RangeFormatter{
		minSpan: 2,
	}
}

// WithMinSpan sets the shortest run that is written as a span. Shorter runs
// are written as single values. Values below 2 are treated as 2.
func (f *RangeFormatter) WithMinSpan(n int) *RangeFormatter {
	f.minSpan = max(n, 2)
	return f
}

// Format writes values as a compact expression, e.g. [0 6 7 8] -> "0,6-8".
// Order and duplicates are kept, so parsing the result gives back values.
func (f *RangeFormatter) Format(values []int) (string, error) {
	if len(values) == 0 {
		return "", ErrEmptyValues
	}

	var b strings.Builder

	for i := 0; i < len(values); {
		if values[i] < 0 {
			return "", fmt.Errorf("%w: %d at index %d", ErrNegativeValue, values[i], i)
		}

		j := i
		for j+1 < len(values) && values[j] != math.MaxInt && values[j+1] == values[j]+1 {
			j++
		}

		if b.Len() > 0 {
			b.WriteByte(',')
		}

		if j-i+1 >= f.minSpan {
			b.WriteString(strconv.Itoa(values[i]))
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(values[j]))
		} else {
			for k := i; k <= j; k++ {
				if k > i {
					b.WriteByte(',')
				}

				b.WriteString(strconv.Itoa(values[k]))
			}
		}

		i = j + 1
	}

	return b.String(), nil
}

// Normalize parses expr and formats its expansion, e.g. "1,2,3,5-4,7" -> "1-3,7".
// An expression that expands to nothing returns ErrEmptyValues.
func (f *RangeFormatter) Normalize(expr string, opts ...parser.Options) (string, error) {
	parsed, err := parser.Parse(expr, opts...)
	if err != nil {
		return "", err
	}

	result, err := f.Format(parsed.Values())
	if err != nil {
		return "", fmt.Errorf("failed to normalize %q: %w", expr, err)
	}

	return result, nil
}

// Format formats values with the default RangeFormatter.
func Format(values []int) (string, error) {
	return NewRangeFormatter().Format(values)
}

// Normalize normalizes expr with the default RangeFormatter.
func Normalize(expr string, opts ...parser.Options) (string, error) {
	return NewRangeFormatter().Normalize(expr, opts...)
}
