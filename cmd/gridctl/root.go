// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/gridparse"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gridctl",
		Short:         "Inspect character-map grids.",
		Long:          "A toolbox for character-map grids: shape, rendering, connected regions and heat maps.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")

	root.AddCommand(newInfoCmd(), newRenderCmd(), newComponentsCmd(), newHeatmapCmd())

	return root
}

// readGrid parses the grid stored in path, or stdin when path is "-".
func readGrid(cmd *cobra.Command, path string) (*grid.Grid[rune], error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	start := time.Now()
	g, err := gridparse.ParseRunes(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("parsed %s: %d×%d in %s", path, g.NumCols(), g.NumRows(), time.Since(start))

	return g, nil
}
