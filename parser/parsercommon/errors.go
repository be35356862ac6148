package parsercommon

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is the root of every range expression validation failure.
var ErrInvalidRange = errors.New("invalid range expression")

// Sentinel errors used throughout parser diagnostics.
var (
	ErrEmptyRange       = fmt.Errorf("%w: empty expression", ErrInvalidRange)
	ErrInvalidCharacter = fmt.Errorf("%w: invalid character", ErrInvalidRange)
	ErrInvalidBoundary  = fmt.Errorf("%w: must start and end with a number", ErrInvalidRange)
	ErrMalformedToken   = fmt.Errorf("%w: malformed token", ErrInvalidRange)
	ErrReversedSpan     = fmt.Errorf("%w: span upper bound is lower than its lower bound", ErrInvalidRange)
	ErrTooManyValues    = fmt.Errorf("%w: expansion exceeds the value limit", ErrInvalidRange)
)
