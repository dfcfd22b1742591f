// Package errors defines all exported error sentinels for the superstring library.
//
// This is the single source of truth for error values. The top-level
// superstring package and the internal packages import from here,
// ensuring errors.Is checks work across package boundaries.
package errors

import "errors"

// Solve errors
var (
	ErrEmptyInput       = errors.New("superstring: cannot solve an empty input set")
	ErrTooFewStrings    = errors.New("superstring: pair search needs at least two strings")
	ErrSolverDone       = errors.New("superstring: solver has already reduced to one string")
	ErrUnknownAlgorithm = errors.New("superstring: unknown overlap algorithm")
	ErrUnknownPartition = errors.New("superstring: unknown partition mode")
)

// Input errors
var (
	ErrInvalidCount = errors.New("superstring: invalid string count")
	ErrMissingToken = errors.New("superstring: missing input token")
	ErrTokenTooLong = errors.New("superstring: input token exceeds maximum size")
)

// Configuration errors
var (
	ErrInvalidConfig = errors.New("superstring: invalid configuration")
)
