package main

import "errors"

// Sentinel errors for command operations
var (
	ErrNoInput            = errors.New("no input given")
	ErrUnknownFormat      = errors.New("unknown output format")
	ErrInvalidExpressions = errors.New("some expressions are invalid")
	ErrInvalidValue       = errors.New("invalid value")
	ErrNegativeMaxValues  = errors.New("--max-values must be non-negative")
)
