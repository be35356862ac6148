package parsercommon

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
	pc "github.com/shibukawa/parsercombinator"
	tok "github.com/shibukawa/snaprange/tokenizer"
)

func tokenize(t *testing.T, src string) []tok.Token {
	t.Helper()

	tokens, err := tok.NewRangeTokenizer(src).AllTokens()
	assert.NoError(t, err)

	return tokens
}

func TestSplitByComma(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		segments  []string
		positions []int
	}{
		{
			name:      "single term",
			input:     "6-12",
			segments:  []string{"6-12"},
			positions: []int{1},
		},
		{
			name:      "several terms",
			input:     "0,6-12,3",
			segments:  []string{"0", "6-12", "3"},
			positions: []int{1, 3, 8},
		},
		{
			name:      "empty segment keeps the closing comma position",
			input:     "1,,2",
			segments:  []string{"1", "", "2"},
			positions: []int{1, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, positions := SplitByComma(tokenize(t, tt.input))
			assert.Equal(t, len(tt.segments), len(segments))

			for i, segment := range segments {
				assert.Equal(t, tt.segments[i], ToSrc(ToParserToken(segment)))
				assert.Equal(t, tt.positions[i], positions[i].Column)
			}
		})
	}
}

func TestPrimitiveType(t *testing.T) {
	tokens := ToParserToken(tokenize(t, "5-9"))
	pctx := pc.NewParseContext[tok.Token]()

	consumed, match, err := Number(pctx, tokens)
	assert.NoError(t, err)
	assert.Equal(t, 1, consumed)
	assert.Equal(t, "5", match[0].Val.Value)

	_, _, err = Dash(pctx, tokens)
	assert.True(t, errors.Is(err, pc.ErrNotMatch))

	_, _, err = Comma(pctx, nil)
	assert.True(t, errors.Is(err, pc.ErrNotMatch))
}

func TestTag(t *testing.T) {
	tokens := ToParserToken(tokenize(t, "5-9"))
	pctx := pc.NewParseContext[tok.Token]()

	consumed, match, err := Tag("span", Number, Dash, Number)(pctx, tokens)
	assert.NoError(t, err)
	assert.Equal(t, 3, consumed)
	assert.Equal(t, "span", match[0].Type)
	assert.Equal(t, []tok.TokenType{tok.NUMBER, tok.DASH, tok.NUMBER}, tokenTypes(ToToken(match)))
}

func tokenTypes(tokens []tok.Token) []tok.TokenType {
	types := make([]tok.TokenType, len(tokens))
	for i, token := range tokens {
		types[i] = token.Type
	}

	return types
}

func TestToParserTokenKeepsPosition(t *testing.T) {
	tokens := ToParserToken(tokenize(t, "10,2"))
	assert.Equal(t, 4, tokens[2].Pos.Col)
	assert.Equal(t, 3, tokens[2].Pos.Index)
	assert.Equal(t, "2", tokens[2].Raw)
}

func TestParseError(t *testing.T) {
	perr := &ParseError{}
	assert.False(t, perr.HasErrors())
	assert.Equal(t, "no parse errors", perr.Error())

	perr.Add(nil)
	assert.False(t, perr.HasErrors())

	perr.Add(fmt.Errorf("%w at 1:3: empty term", ErrMalformedToken))
	assert.Equal(t, "invalid range expression: malformed token at 1:3: empty term", perr.Error())

	nested := &ParseError{}
	nested.Add(fmt.Errorf("%w at 1:5: \"9-5\"", ErrReversedSpan))
	perr.Add(nested)

	assert.Equal(t, 2, len(perr.Errors))
	assert.True(t, errors.Is(perr, ErrMalformedToken))
	assert.True(t, errors.Is(perr, ErrReversedSpan))
	assert.True(t, errors.Is(perr, ErrInvalidRange))
	assert.False(t, errors.Is(perr, ErrTooManyValues))

	var wrapped error = fmt.Errorf("outer: %w", perr)
	found, ok := AsParseError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, perr, found)
}
