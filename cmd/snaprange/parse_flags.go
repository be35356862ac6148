package main

import (
	"fmt"

	"github.com/shibukawa/snaprange"
	"github.com/shibukawa/snaprange/parser"
)

// ParseFlags are the parser settings shared by several commands. Unset flags
// fall back to the configuration file.
type ParseFlags struct {
	Strict    bool   `help:"Reject spans with more than one '-'"`
	Reversed  string `help:"Reversed span policy: empty or reject (default: from config)"`
	MaxValues int    `help:"Maximum number of expanded values, 0 for unlimited (default: from config)" default:"-1"`
}

// Options merges the flags over the configuration.
func (f *ParseFlags) Options(config *snaprange.Config) (parser.Options, error) {
	options, err := config.ParserOptions()
	if err != nil {
		return parser.Options{}, err
	}

	if f.Strict {
		options.Strict = true
	}

	if f.Reversed != "" {
		policy, err := parser.ParseReversedSpanPolicy(f.Reversed)
		if err != nil {
			return parser.Options{}, err
		}

		options.ReversedSpans = policy
	}

	switch {
	case f.MaxValues >= 0:
		options.MaxValues = f.MaxValues
	case f.MaxValues != -1:
		return parser.Options{}, fmt.Errorf("%w, got %d", ErrNegativeMaxValues, f.MaxValues)
	}

	return options, nil
}
