package tokenizer

import (
	"errors"
	"strconv"
)

// Sentinel errors
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
)

// TokenType represents the type of a token
type TokenType int

const (
	EOF    TokenType = iota
	NUMBER           // decimal integer literal
	DASH             // -
	COMMA            // ,
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case DASH:
		return "DASH"
	case COMMA:
		return "COMMA"
	default:
		return "UNKNOWN"
	}
}

// Position represents a position in the range expression.
// Line is always 1: range expressions are single-line.
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns "line:column"
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Token represents a token
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}
