package parser

import (
	"fmt"
	"strings"
)

// ReversedSpanPolicy decides what happens to a span whose upper bound is
// lower than its lower bound, such as "9-5".
type ReversedSpanPolicy int

const (
	// ReversedEmpty expands a reversed span to nothing.
	ReversedEmpty ReversedSpanPolicy = iota
	// ReversedReject rejects the whole expression with ErrReversedSpan.
	ReversedReject
)

// String returns the configuration name of the policy
func (p ReversedSpanPolicy) String() string {
	switch p {
	case ReversedEmpty:
		return "empty"
	case ReversedReject:
		return "reject"
	default:
		return "unknown"
	}
}

// ParseReversedSpanPolicy converts a configuration name ("empty" or "reject")
// into a ReversedSpanPolicy. An empty name selects ReversedEmpty.
func ParseReversedSpanPolicy(name string) (ReversedSpanPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "empty":
		return ReversedEmpty, nil
	case "reject":
		return ReversedReject, nil
	default:
		return ReversedEmpty, fmt.Errorf("%w: %q (must be empty or reject)", ErrUnknownPolicy, name)
	}
}

// DefaultMaxValues is the expansion limit of DefaultOptions.
const DefaultMaxValues = 1_000_000

// Options controls parser behaviors that can be relaxed or enabled.
type Options struct {
	// Strict rejects spans with more than one dash ("1-2-3"). Otherwise the
	// bounds after the second one are ignored.
	Strict bool
	// ReversedSpans selects the handling of "9-5" style spans.
	ReversedSpans ReversedSpanPolicy
	// MaxValues caps the total number of expanded values. Zero means unlimited.
	MaxValues int
}

// DefaultOptions provides the default parser options.
var DefaultOptions = Options{
	Strict:        false,
	ReversedSpans: ReversedEmpty,
	MaxValues:     DefaultMaxValues,
}
