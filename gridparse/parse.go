// SPDX-License-Identifier: MIT

package gridparse

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/lvlgrid/grid"
)

// Decoder converts one input rune into a cell value.
type Decoder[T any] func(r rune) (T, error)

// Parse reads a rectangular character map from r, decoding each rune with dec.
// Leading and trailing blank lines are skipped; a blank line between rows ends
// the grid and everything after it must be blank.
// Complexity: O(W×H).
func Parse[T any](r io.Reader, dec Decoder[T]) (*grid.Grid[T], error) {
	blocks, err := parseBlocks(r, dec)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, ErrEmptyInput
	}
	if len(blocks) > 1 {
		return nil, fmt.Errorf("%d blocks: %w", len(blocks), ErrMultipleBlocks)
	}

	return blocks[0], nil
}

// ParseString is Parse over a string.
func ParseString[T any](s string, dec Decoder[T]) (*grid.Grid[T], error) {
	return Parse(strings.NewReader(s), dec)
}

// ParseRunes reads a character map keeping the runes as cells.
func ParseRunes(r io.Reader) (*grid.Grid[rune], error) {
	return Parse[rune](r, Identity)
}

// Identity is the Decoder that keeps every rune as is.
func Identity(r rune) (rune, error) {
	return r, nil
}

// Table returns a Decoder mapping runes through m; runes missing from m are
// rejected with ErrUnknownRune.
func Table[T any](m map[rune]T) Decoder[T] {
	return func(r rune) (T, error) {
		v, ok := m[r]
		if !ok {
			var zero T
			return zero, ErrUnknownRune
		}

		return v, nil
	}
}

// ParseBlocks reads several character maps separated by blank lines, as found
// in inputs listing many patterns. Each block may have its own shape.
// Returns ErrEmptyInput if there are no blocks at all.
func ParseBlocks[T any](r io.Reader, dec Decoder[T]) ([]*grid.Grid[T], error) {
	blocks, err := parseBlocks(r, dec)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, ErrEmptyInput
	}

	return blocks, nil
}

func parseBlocks[T any](r io.Reader, dec Decoder[T]) ([]*grid.Grid[T], error) {
	var (
		blocks []*grid.Grid[T]
		cells  []T
		width  int
		height int
		lineNo int
	)
	flush := func() {
		if height > 0 {
			blocks = append(blocks, grid.New(height, width, cells))
		}
		cells, width, height = nil, 0, 0
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			flush()
			continue
		}
		n := utf8.RuneCountInString(line)
		if height == 0 {
			width = n
		} else if n != width {
			return nil, &LineError{Line: lineNo, Err: fmt.Errorf("got %d runes, want %d: %w", n, width, ErrRaggedLine)}
		}
		col := 0
		for _, ch := range line {
			col++
			v, err := dec(ch)
			if err != nil {
				return nil, &CellError{Line: lineNo, Col: col, Rune: ch, Err: err}
			}
			cells = append(cells, v)
		}
		height++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridparse: read: %w", err)
	}
	flush()

	return blocks, nil
}
