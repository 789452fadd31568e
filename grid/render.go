// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
)

// Glyph is implemented by cell types that have a single-character display form.
type Glyph interface {
	Glyph() rune
}

// Format renders g as one line of glyphs per row, each line ending in '\n'.
// Complexity: O(W×H).
func Format[T Glyph](g *Grid[T]) string {
	return FormatFunc(g, func(v T) rune { return v.Glyph() })
}

// FormatFunc renders g like Format, converting cells with glyph.
func FormatFunc[T any](g *Grid[T], glyph func(T) rune) string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	writeRows(&sb, g, glyph, "")

	return sb.String()
}

// Dump renders g as a debug block: its dimensions followed by the
// tab-indented rows.
//
//	Grid: {
//		width: 3,
//		height: 2,
//		cells:
//
//		abc
//		def
//
//	}
func Dump[T any](g *Grid[T], glyph func(T) rune) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Grid: {\n\twidth: %d,\n\theight: %d,\n\tcells:\n\n", g.width, g.height)
	writeRows(&sb, g, glyph, "\t")
	sb.WriteString("\n}")

	return sb.String()
}

func writeRows[T any](sb *strings.Builder, g *Grid[T], glyph func(T) rune, indent string) {
	for row := range g.Rows().All() {
		sb.WriteString(indent)
		for v := range row.Values() {
			sb.WriteRune(glyph(v))
		}
		sb.WriteByte('\n')
	}
}
