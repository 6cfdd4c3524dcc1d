// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mujson

import "fmt"

// ErrCode identifies the reason a parse failed.
type ErrCode int

// The closed set of error codes a parse can report.
const (
	// BadFormat means a byte produced no valid transition in the state
	// table, or the parse finished outside the OK state.
	BadFormat ErrCode = iota - 3
	// NoTokens means the token store was exhausted while allocating a new
	// token.
	NoTokens
	// Incomplete means the input ended while one or more containers were
	// still open.
	Incomplete
)

var errCodeStr = map[ErrCode]string{
	BadFormat:  "bad format",
	NoTokens:   "no tokens",
	Incomplete: "incomplete",
}

func (c ErrCode) String() string {
	if s, ok := errCodeStr[c]; ok {
		return s
	}
	return fmt.Sprintf("ErrCode(%d)", int(c))
}

// ParseError is the concrete type of error reported by a failed parse. Its
// Code is always one of BadFormat, NoTokens, or Incomplete, and Offset
// records the byte position at which the condition was detected.
type ParseError struct {
	Code   ErrCode
	Offset int

	err error // optional wrapped cause; may be nil
}

// Error satisfies the error interface.
func (e *ParseError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s at offset %d: %v", e.Code, e.Offset, e.err)
	}
	return fmt.Sprintf("%s at offset %d", e.Code, e.Offset)
}

// Unwrap supports errors.Is and errors.As against the wrapped cause, if any.
func (e *ParseError) Unwrap() error { return e.err }

func newParseError(code ErrCode, offset int) *ParseError {
	return &ParseError{Code: code, Offset: offset}
}

// Locate reports the line and column of e's Offset within input, for
// diagnostic rendering. The parser itself never computes this during a
// parse -- tracking line/column incrementally on every byte would cost the
// hot loop for a value only error paths need, so it is reconstructed on
// demand from the same input the failed parse was given.
func (e *ParseError) Locate(input View) Location {
	return Location{
		Span:  Span{Pos: e.Offset, End: e.Offset},
		First: Locate(input.Bytes(), e.Offset),
	}
}
