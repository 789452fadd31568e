// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "report grid dimensions and rune counts.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(cmd, args[0])
			if err != nil {
				return err
			}
			counts := make(map[rune]int)
			for _, v := range g.All() {
				counts[v]++
			}
			keys := make([]rune, 0, len(counts))
			for k := range counts {
				keys = append(keys, k)
			}
			slices.Sort(keys)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rows: %d\ncols: %d\n", g.NumRows(), g.NumCols())
			for _, k := range keys {
				fmt.Fprintf(out, "%q: %d\n", k, counts[k])
			}

			return nil
		},
	}
}
