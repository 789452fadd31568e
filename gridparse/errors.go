// SPDX-License-Identifier: MIT

package gridparse

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates that the input holds no grid rows.
	ErrEmptyInput = errors.New("gridparse: empty input")
	// ErrRaggedLine indicates a line whose length differs from the first line.
	ErrRaggedLine = errors.New("gridparse: line length differs from first line")
	// ErrMultipleBlocks indicates several blank-line separated grids where one was expected.
	ErrMultipleBlocks = errors.New("gridparse: more than one grid in input")
	// ErrUnknownRune is a convenience error for decoders rejecting a rune.
	ErrUnknownRune = errors.New("gridparse: unknown cell rune")
)

// LineError reports a problem with a whole input line. Line is 1-based.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// CellError reports a rune the cell decoder rejected. Line and Col are 1-based.
type CellError struct {
	Line, Col int
	Rune      rune
	Err       error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("line %d col %d: rune %q: %v", e.Line, e.Col, e.Rune, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}
