// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/gridgraph"
)

func newComponentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "components FILE",
		Short: "count connected regions of land runes.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(cmd, args[0])
			if err != nil {
				return err
			}
			landRunes, _ := cmd.Flags().GetString("land")
			connFlag, _ := cmd.Flags().GetInt("conn")
			opts := gridgraph.DefaultGridOptions()
			switch connFlag {
			case 4:
			case 8:
				opts.Conn = gridgraph.Conn8
			default:
				return fmt.Errorf("--conn must be 4 or 8, got %d", connFlag)
			}

			gg, err := gridgraph.NewGridGraph(g, func(r rune) bool { return strings.ContainsRune(landRunes, r) }, opts)
			if err != nil {
				return err
			}
			comps := gg.ConnectedComponents()
			log.Debugf("found %d components of %q", len(comps), landRunes)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "components: %d\n", len(comps))
			for i, comp := range comps {
				fmt.Fprintf(out, "%d: size %d from %v\n", i, len(comp), comp[0])
			}

			return nil
		},
	}
	cmd.Flags().String("land", "#", "runes counted as land")
	cmd.Flags().Int("conn", 4, "neighbour connectivity (4 or 8)")

	return cmd
}
