// SPDX-License-Identifier: MIT

// Package gridparse turns character maps into grid.Grid values.
//
// Input is one row per line and one cell per rune. Trailing blank lines and
// carriage returns are ignored. Every line must have the same rune count.
//
// Errors:
//
//   - ErrEmptyInput: no non-blank line was found.
//   - ErrRaggedLine: a line's length differs from the first line (wrapped in *LineError).
//   - ErrMultipleBlocks: Parse found more than one blank-line separated grid;
//     use ParseBlocks for such inputs.
//   - *CellError: the cell decoder rejected a rune; it carries the position and
//     unwraps to the decoder's error.
package gridparse
