// SPDX-License-Identifier: MIT

package main

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/lvlgrid/grid"
)

// renderedGrid is the JSON form written by "render --json".
type renderedGrid struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   []string `json:"rows"`
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "print a grid, optionally transposed or mirrored.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(cmd, args[0])
			if err != nil {
				return err
			}
			if transpose, _ := cmd.Flags().GetBool("transpose"); transpose {
				g = g.Transpose()
			}
			mirror, _ := cmd.Flags().GetBool("mirror")
			rows := renderRows(g, mirror)
			warnIfTooWide(g.NumCols())

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(renderedGrid{Width: g.NumCols(), Height: g.NumRows(), Rows: rows})
			}
			for _, row := range rows {
				if _, err := out.Write([]byte(row + "\n")); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().Bool("json", false, "write the grid as JSON")
	cmd.Flags().Bool("transpose", false, "swap rows and columns")
	cmd.Flags().Bool("mirror", false, "reverse every row")

	return cmd
}

// renderRows renders each row, drawing it from the back when mirror is set.
func renderRows(g *grid.Grid[rune], mirror bool) []string {
	rows := make([]string, 0, g.NumRows())
	for row := range g.Rows().All() {
		buf := make([]rune, 0, row.Len())
		if mirror {
			for v := range row.Backward() {
				buf = append(buf, v)
			}
		} else {
			buf = append(buf, row.Collect()...)
		}
		rows = append(rows, string(buf))
	}

	return rows
}

// warnIfTooWide logs a warning when stdout is a terminal narrower than the grid.
func warnIfTooWide(cols int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		log.Debugf("terminal size: %v", err)
		return
	}
	if cols > width {
		log.Warnf("grid is %d columns wide, terminal only %d", cols, width)
	}
}
