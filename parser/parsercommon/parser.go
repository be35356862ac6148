package parsercommon

import (
	"slices"

	pc "github.com/shibukawa/parsercombinator"
	tok "github.com/shibukawa/snaprange/tokenizer"
)

var (
	// Number parses a decimal integer literal.
	Number = PrimitiveType("number", tok.NUMBER)
	// Dash parses the span separator.
	Dash = PrimitiveType("dash", tok.DASH)
	// Comma parses the term separator.
	Comma = PrimitiveType("comma", tok.COMMA)
)

func PrimitiveType(typeName string, types ...tok.TokenType) pc.Parser[tok.Token] {
	return func(pctx *pc.ParseContext[tok.Token], tokens []pc.Token[tok.Token]) (int, []pc.Token[tok.Token], error) {
		if len(tokens) > 0 && slices.Contains(types, tokens[0].Val.Type) {
			return 1, tokens[:1], nil
		}

		return 0, nil, pc.ErrNotMatch
	}
}

// Tag runs the parsers in sequence and labels the first matched token with typeStr.
func Tag(typeStr string, p ...pc.Parser[tok.Token]) pc.Parser[tok.Token] {
	return pc.Trans(pc.Seq(p...), func(pctx *pc.ParseContext[tok.Token], src []pc.Token[tok.Token]) (converted []pc.Token[tok.Token], err error) {
		if len(src) > 0 {
			src[0].Type = typeStr
		}

		return src, nil
	})
}

func ToParserToken(tokens []tok.Token) []pc.Token[tok.Token] {
	results := make([]pc.Token[tok.Token], len(tokens))

	for i, token := range tokens {
		pcToken := pc.Token[tok.Token]{
			Type: "raw",
			Pos: &pc.Pos{
				Line:  token.Position.Line,
				Col:   token.Position.Column,
				Index: token.Position.Offset,
			},
			Val: token,
			Raw: token.Value,
		}
		results[i] = pcToken
	}

	return results
}

func ToToken(entities []pc.Token[tok.Token]) []tok.Token {
	results := make([]tok.Token, 0, len(entities))
	for _, entity := range entities {
		results = append(results, entity.Val)
	}

	return results
}

func ToSrc(entities []pc.Token[tok.Token]) string {
	src := make([]byte, 0, 16)
	for _, entity := range entities {
		src = append(src, entity.Raw...)
	}

	return string(src)
}

// SplitByComma splits a token stream into comma separated segments. The EOF
// token is dropped. A leading, trailing or doubled comma yields an empty
// segment, which keeps the position of the comma that closed it in the
// returned positions slice.
func SplitByComma(tokens []tok.Token) ([][]tok.Token, []tok.Position) {
	var (
		segments  [][]tok.Token
		positions []tok.Position
		current   []tok.Token
		start     tok.Position
	)

	if len(tokens) > 0 {
		start = tokens[0].Position
	}

	for _, token := range tokens {
		switch token.Type {
		case tok.EOF:
			segments = append(segments, current)
			positions = append(positions, start)

			return segments, positions
		case tok.COMMA:
			if len(current) == 0 {
				start = token.Position
			}

			segments = append(segments, current)
			positions = append(positions, start)
			current = nil
		default:
			if len(current) == 0 {
				start = token.Position
			}

			current = append(current, token)
		}
	}

	if len(current) > 0 || len(segments) > 0 {
		segments = append(segments, current)
		positions = append(positions, start)
	}

	return segments, positions
}
