package parser

import (
	"errors"

	cmn "github.com/shibukawa/snaprange/parser/parsercommon"
)

// Sentinel errors - Parser related
var (
	ErrInvalidRange     = cmn.ErrInvalidRange
	ErrEmptyRange       = cmn.ErrEmptyRange
	ErrInvalidCharacter = cmn.ErrInvalidCharacter
	ErrInvalidBoundary  = cmn.ErrInvalidBoundary
	ErrMalformedToken   = cmn.ErrMalformedToken
	ErrReversedSpan     = cmn.ErrReversedSpan
	ErrTooManyValues    = cmn.ErrTooManyValues

	// Option errors
	ErrUnknownPolicy = errors.New("unknown reversed span policy")
)
