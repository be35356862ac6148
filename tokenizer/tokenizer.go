package tokenizer

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
)

// TokenIterator uses Go 1.24 iterator pattern
type TokenIterator iter.Seq2[Token, error]

// RangeTokenizer splits a range expression such as "0,6-12" into tokens.
type RangeTokenizer struct {
	input string
}

// NewRangeTokenizer creates a new RangeTokenizer
func NewRangeTokenizer(input string) *RangeTokenizer {
	return &RangeTokenizer{input: input}
}

// Tokens returns an iterator of tokens. A character outside [0-9,-] yields an
// error wrapping ErrUnexpectedCharacter and tokenizing continues after it.
func (t *RangeTokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		tokenizer := &tokenizer{
			input:  t.input,
			line:   1,
			column: 1,
		}

		tokenizer.readChar()

		for {
			token, err := tokenizer.nextToken()
			if err != nil {
				if !yield(Token{}, err) {
					return
				}

				continue
			}

			if token.Type == EOF {
				yield(token, nil)
				return
			}

			if !yield(token, nil) {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice. The returned error is the first
// tokenizing error, so the earliest illegal character is reported.
func (t *RangeTokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, len(t.input)/2+1)

	var firstError error

	for token, err := range t.Tokens() {
		if err != nil {
			if firstError == nil {
				firstError = err
			}

			continue
		}

		tokens = append(tokens, token)
		if token.Type == EOF {
			break
		}
	}

	return tokens, firstError
}

// Internal tokenizer implementation
type tokenizer struct {
	input    string
	position int
	offset   int
	line     int
	column   int
	current  rune
}

// nextToken gets the next token
func (t *tokenizer) nextToken() (Token, error) {
	switch {
	case t.current == 0 && t.position > len(t.input):
		return t.newToken(EOF, ""), nil
	case t.current == ',':
		token := t.newToken(COMMA, ",")
		t.readChar()

		return token, nil
	case t.current == '-':
		token := t.newToken(DASH, "-")
		t.readChar()

		return token, nil
	case isDigit(t.current):
		return t.readNumber(), nil
	default:
		return t.readOther()
	}
}

// readChar reads the next character
func (t *tokenizer) readChar() {
	if t.position >= len(t.input) {
		t.current = 0
		t.offset = len(t.input)
		t.position = len(t.input) + 1
		t.column++

		return
	}

	r, width := utf8.DecodeRuneInString(t.input[t.position:])
	t.current = r
	t.offset = t.position
	t.position += width
	t.column++
}

// readNumber reads a run of decimal digits
func (t *tokenizer) readNumber() Token {
	var builder strings.Builder

	startColumn := t.column - 1
	startOffset := t.offset

	for isDigit(t.current) {
		builder.WriteRune(t.current)
		t.readChar()
	}

	return Token{
		Type:  NUMBER,
		Value: builder.String(),
		Position: Position{
			Line:   t.line,
			Column: startColumn,
			Offset: startOffset,
		},
	}
}

// readOther consumes an illegal character and reports it
func (t *tokenizer) readOther() (Token, error) {
	startColumn := t.column - 1
	char := t.current

	t.readChar()

	return Token{}, fmt.Errorf("%w %q at line %d, column %d", ErrUnexpectedCharacter, char, t.line, startColumn)
}

// newToken creates a new token at the current character
func (t *tokenizer) newToken(tokenType TokenType, value string) Token {
	return Token{
		Type:  tokenType,
		Value: value,
		Position: Position{
			Line:   t.line,
			Column: t.column - 1,
			Offset: t.offset,
		},
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
