package parser

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int
	}{
		{
			name:     "single value",
			input:    "5",
			expected: []int{5},
		},
		{
			name:     "single element span",
			input:    "5-5",
			expected: []int{5},
		},
		{
			name:     "list keeps order and duplicates",
			input:    "3,1,1,7",
			expected: []int{3, 1, 1, 7},
		},
		{
			name:     "span",
			input:    "6-12",
			expected: []int{6, 7, 8, 9, 10, 11, 12},
		},
		{
			name:     "documented example",
			input:    "0,6-12",
			expected: []int{0, 6, 7, 8, 9, 10, 11, 12},
		},
		{
			name:     "overlapping spans keep duplicates",
			input:    "1-3,2-4",
			expected: []int{1, 2, 3, 2, 3, 4},
		},
		{
			name:     "leading zeros",
			input:    "007,08-010",
			expected: []int{7, 8, 9, 10},
		},
		{
			name:     "reversed span is empty",
			input:    "9-5",
			expected: []int{},
		},
		{
			name:     "reversed span among others",
			input:    "1,9-5,2",
			expected: []int{1, 2},
		},
		{
			name:     "extra bounds are ignored",
			input:    "1-5-9",
			expected: []int{1, 2, 3, 4, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, expr.Values())
			assert.Equal(t, len(tt.expected), expr.Len())
			assert.Equal(t, tt.input, expr.Source)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrEmptyRange},
		{"letter", "1,a-3", ErrInvalidCharacter},
		{"whitespace", " 1", ErrInvalidCharacter},
		{"sign", "+1", ErrInvalidCharacter},
		{"character check runs before boundary check", "-a", ErrInvalidCharacter},
		{"starts with dash", "-5,6", ErrInvalidBoundary},
		{"starts with comma", ",5", ErrInvalidBoundary},
		{"ends with dash", "5,6-", ErrInvalidBoundary},
		{"ends with comma", "5,", ErrInvalidBoundary},
		{"only separators", "-", ErrInvalidBoundary},
		{"double comma", "1,,2", ErrMalformedToken},
		{"double dash", "1--3", ErrMalformedToken},
		{"dash before comma", "1-,2", ErrMalformedToken},
		{"comma then dash", "1,-2", ErrMalformedToken},
		{"overflow", "99999999999999999999", ErrMalformedToken},
		{"overflow in span", "1-99999999999999999999", ErrMalformedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.input)
			assert.Error(t, err)
			assert.Zero(t, expr)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.True(t, errors.Is(err, ErrInvalidRange))
		})
	}
}

func TestParseErrorMessages(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{
			input:   "1,a-3",
			message: `invalid range expression: invalid character: unexpected character 'a' at line 1, column 3`,
		},
		{
			input:   "5,6-",
			message: `invalid range expression: must start and end with a number: ends with "-"`,
		},
		{
			input:   "1,,2",
			message: `invalid range expression: malformed token at 1:3: empty term`,
		},
		{
			input:   "1--3",
			message: `invalid range expression: malformed token at 1:1: "1--3" is neither a number nor a span`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestParseCollectsAllTermErrors(t *testing.T) {
	_, err := Parse("1,,2--3,4")
	assert.Error(t, err)

	perr, ok := AsParseError(err)
	assert.True(t, ok)
	assert.Equal(t, 2, len(perr.Errors))
	assert.Contains(t, err.Error(), "Multiple parse errors:")
	assert.Contains(t, err.Error(), "[1] invalid range expression: malformed token at 1:3: empty term")
	assert.Contains(t, err.Error(), `[2] invalid range expression: malformed token at 1:4: "2--3" is neither a number nor a span`)
}

func TestParseStrict(t *testing.T) {
	strict := DefaultOptions
	strict.Strict = true

	_, err := Parse("1-2-3", strict)
	assert.True(t, errors.Is(err, ErrMalformedToken))
	assert.Contains(t, err.Error(), `"1-2-3" has more than one '-'`)

	expr, err := Parse("0,6-12", strict)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 6, 7, 8, 9, 10, 11, 12}, expr.Values())
}

func TestParseReversedSpanPolicy(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		expr, err := Parse("9-5", Options{ReversedSpans: ReversedEmpty})
		assert.NoError(t, err)
		assert.True(t, expr.Values() != nil)
		assert.Equal(t, 0, len(expr.Values()))
		assert.True(t, expr.Terms[0].Reversed())
	})

	t.Run("reject", func(t *testing.T) {
		expr, err := Parse("1,9-5", Options{ReversedSpans: ReversedReject})
		assert.Zero(t, expr)
		assert.True(t, errors.Is(err, ErrReversedSpan))
		assert.EqualError(t, err, `invalid range expression: span upper bound is lower than its lower bound at 1:3: "9-5"`)
	})
}

func TestParseMaxValues(t *testing.T) {
	_, err := Parse("0-10", Options{MaxValues: 5})
	assert.True(t, errors.Is(err, ErrTooManyValues))
	assert.EqualError(t, err, "invalid range expression: expansion exceeds the value limit: 11 values, limit is 5")

	expr, err := Parse("0-4", Options{MaxValues: 5})
	assert.NoError(t, err)
	assert.Equal(t, 5, expr.Len())

	// the default limit protects against huge spans
	_, err = Parse("0-" + strconv.Itoa(math.MaxInt))
	assert.True(t, errors.Is(err, ErrTooManyValues))
}

func TestParseIsIdempotent(t *testing.T) {
	for _, input := range []string{"0,6-12", "3,1,1,7", "9-5"} {
		first, err := Parse(input)
		assert.NoError(t, err)

		second, err := Parse(input)
		assert.NoError(t, err)

		assert.Equal(t, first.Values(), second.Values())
		assert.Equal(t, first, second)
	}
}

func TestParseTerms(t *testing.T) {
	expr, err := Parse("10,6-12")
	assert.NoError(t, err)
	assert.Equal(t, 2, len(expr.Terms))

	assert.Equal(t, SINGLE, expr.Terms[0].Kind)
	assert.Equal(t, 10, expr.Terms[0].Lower)
	assert.Equal(t, "10", expr.Terms[0].Raw)
	assert.Equal(t, 1, expr.Terms[0].Pos.Column)

	assert.Equal(t, SPAN, expr.Terms[1].Kind)
	assert.Equal(t, 6, expr.Terms[1].Lower)
	assert.Equal(t, 12, expr.Terms[1].Upper)
	assert.Equal(t, "6-12", expr.Terms[1].Raw)
	assert.Equal(t, 4, expr.Terms[1].Pos.Column)
}

func TestExpressionString(t *testing.T) {
	expr, err := Parse("007,1-5-9,3-3")
	assert.NoError(t, err)
	assert.Equal(t, "7,1-5,3-3", expr.String())
}

func TestExpressionAllStopsEarly(t *testing.T) {
	expr, err := Parse("0-1000000", Options{})
	assert.NoError(t, err)

	var got []int
	for v := range expr.All() {
		if v > 3 {
			break
		}

		got = append(got, v)
	}

	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestTermAtMaxInt(t *testing.T) {
	term := Term{Kind: SPAN, Lower: math.MaxInt - 2, Upper: math.MaxInt}
	assert.Equal(t, 3, term.Len())
	assert.Equal(t, []int{math.MaxInt - 2, math.MaxInt - 1, math.MaxInt}, slices.Collect(term.All()))

	full := Term{Kind: SPAN, Lower: 0, Upper: math.MaxInt}
	assert.Equal(t, math.MaxInt, full.Len())
}

func TestParseReversedSpanPolicyName(t *testing.T) {
	policy, err := ParseReversedSpanPolicy("Reject")
	assert.NoError(t, err)
	assert.Equal(t, ReversedReject, policy)

	policy, err = ParseReversedSpanPolicy("")
	assert.NoError(t, err)
	assert.Equal(t, ReversedEmpty, policy)
	assert.Equal(t, "empty", policy.String())

	_, err = ParseReversedSpanPolicy("descending")
	assert.True(t, errors.Is(err, ErrUnknownPolicy))
}
