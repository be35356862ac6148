package snaprange

import (
	"errors"

	"github.com/shibukawa/snaprange/parser"
)

// Common errors used throughout the snaprange package
var (
	// ErrInvalidRange is the root of every range expression validation error.
	ErrInvalidRange = parser.ErrInvalidRange
	// ErrEmptyRange is returned for an empty expression.
	ErrEmptyRange = parser.ErrEmptyRange
	// ErrInvalidCharacter indicates a character outside [0-9,-].
	ErrInvalidCharacter = parser.ErrInvalidCharacter
	// ErrInvalidBoundary indicates the expression starts or ends with a separator.
	ErrInvalidBoundary = parser.ErrInvalidBoundary
	// ErrMalformedToken indicates an empty term, an unparsable integer or a
	// strict mode violation.
	ErrMalformedToken = parser.ErrMalformedToken
	// ErrReversedSpan is returned for "9-5" style spans when they are rejected.
	ErrReversedSpan = parser.ErrReversedSpan
	// ErrTooManyValues indicates the expansion exceeds the configured limit.
	ErrTooManyValues = parser.ErrTooManyValues

	// ErrConfigValidation is returned when configuration validation fails
	ErrConfigValidation = errors.New("configuration validation failed")
)
