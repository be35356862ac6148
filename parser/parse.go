package parser

import (
	"fmt"
	"strconv"

	pc "github.com/shibukawa/parsercombinator"
	cmn "github.com/shibukawa/snaprange/parser/parsercommon"
	tok "github.com/shibukawa/snaprange/tokenizer"
)

// Re-export common types for user convenience
type ParseError = cmn.ParseError

// AsParseError extracts a *ParseError from err.
func AsParseError(err error) (*ParseError, bool) {
	return cmn.AsParseError(err)
}

var (
	span = cmn.Tag("span",
		cmn.Number, cmn.Dash, cmn.Number,
		pc.ZeroOrMore("extra bound", pc.Seq(cmn.Dash, cmn.Number)),
	)
	single = cmn.Tag("single", cmn.Number)
	term   = pc.Or(span, single)
)

// Parse parses a range expression such as "0,6-12".
//
// Validation runs in this order: character set, boundaries, then each term.
// Term errors are collected into a *ParseError so every malformed term is
// reported, but the result is all-or-nothing: on error the expression is nil.
func Parse(expr string, opts ...Options) (*Expression, error) {
	options := DefaultOptions
	if len(opts) > 0 {
		options = opts[0]
	}

	if expr == "" {
		return nil, ErrEmptyRange
	}

	tokens, err := tok.NewRangeTokenizer(expr).AllTokens()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCharacter, err)
	}

	// tokens always ends with EOF and holds at least one real token here
	first, last := tokens[0], tokens[len(tokens)-2]
	if first.Type != tok.NUMBER {
		return nil, fmt.Errorf("%w: starts with %q", ErrInvalidBoundary, first.Value)
	}

	if last.Type != tok.NUMBER {
		return nil, fmt.Errorf("%w: ends with %q", ErrInvalidBoundary, last.Value)
	}

	segments, positions := cmn.SplitByComma(tokens)

	result := &Expression{
		Source: expr,
		Terms:  make([]Term, 0, len(segments)),
	}
	perr := &ParseError{}

	for i, segment := range segments {
		t, err := parseTerm(segment, positions[i], options)
		if err != nil {
			perr.Add(err)
			continue
		}

		result.Terms = append(result.Terms, t)
	}

	if perr.HasErrors() {
		return nil, perr
	}

	if options.MaxValues > 0 {
		if n := result.Len(); n > options.MaxValues {
			return nil, fmt.Errorf("%w: %d values, limit is %d", ErrTooManyValues, n, options.MaxValues)
		}
	}

	return result, nil
}

// parseTerm parses the tokens between two commas.
func parseTerm(tokens []tok.Token, pos tok.Position, options Options) (Term, error) {
	if len(tokens) == 0 {
		return Term{}, fmt.Errorf("%w at %s: empty term", ErrMalformedToken, pos)
	}

	input := cmn.ToParserToken(tokens)
	raw := cmn.ToSrc(input)
	pctx := pc.NewParseContext[tok.Token]()

	consumed, match, err := term(pctx, input)
	if err != nil || consumed != len(input) || len(match) == 0 {
		return Term{}, fmt.Errorf("%w at %s: %q is neither a number nor a span", ErrMalformedToken, pos, raw)
	}

	var bounds []int

	for _, m := range match {
		if m.Val.Type != tok.NUMBER {
			continue
		}

		n, err := strconv.Atoi(m.Val.Value)
		if err != nil {
			return Term{}, fmt.Errorf("%w at %s: %q is out of range", ErrMalformedToken, m.Val.Position, m.Val.Value)
		}

		bounds = append(bounds, n)
	}

	result := Term{
		Pos: pos,
		Raw: raw,
	}

	switch match[0].Type {
	case "single":
		result.Kind = SINGLE
		result.Lower = bounds[0]
		result.Upper = bounds[0]
	case "span":
		if len(bounds) > 2 && options.Strict {
			return Term{}, fmt.Errorf("%w at %s: %q has more than one '-'", ErrMalformedToken, pos, raw)
		}

		result.Kind = SPAN
		result.Lower = bounds[0]
		result.Upper = bounds[1]

		if result.Reversed() && options.ReversedSpans == ReversedReject {
			return Term{}, fmt.Errorf("%w at %s: %q", ErrReversedSpan, pos, raw)
		}
	}

	return result, nil
}
