package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyPath indicates no schematic path was given.
	ErrEmptyPath = errors.New("empty schematic path")

	// ErrInvalidPart indicates an unknown part selector.
	ErrInvalidPart = errors.New("invalid part")

	// ErrWatchUnavailable indicates no grid watcher is configured.
	ErrWatchUnavailable = errors.New("watch unavailable")

	// ErrNoAvailablePort indicates every port in a range is taken.
	ErrNoAvailablePort = errors.New("no available port")

	// ErrUnknownSetting indicates a settings key that does not exist.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrParse indicates a digit run that could not be parsed as an integer.
	// The tokenizer only emits runs of digits, so this is an invariant
	// violation (in practice an overflow) and callers treat it as fatal.
	ErrParse = errors.New("parse error")
)

// ParseError describes a digit run that failed integer parsing.
type ParseError struct {
	Row   int
	Start int
	End   int
	Text  string
	Err   error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at row %d, columns %d-%d: %q: %v", e.Row, e.Start, e.End, e.Text, e.Err)
}

// Unwrap returns the underlying strconv error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrParse) match any *ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
