// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvlgrid/gridplot"
)

func newHeatmapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heatmap FILE",
		Short: "export a heat map of a digit grid.",
		Long:  "Export a heat map. Digits map to their value, runes listed in --land to 1, anything else to 0.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGrid(cmd, args[0])
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			landRunes, _ := cmd.Flags().GetString("land")
			size, _ := cmd.Flags().GetFloat64("size")

			opts := gridplot.DefaultOptions()
			opts.Title = args[0]
			if size > 0 {
				opts.Width = vg.Length(size) * vg.Inch
				opts.Height = opts.Width
			}
			value := func(r rune) float64 {
				switch {
				case r >= '0' && r <= '9':
					return float64(r - '0')
				case strings.ContainsRune(landRunes, r):
					return 1
				default:
					return 0
				}
			}
			if err := gridplot.Save(out, g, value, opts); err != nil {
				return err
			}
			log.Infof("wrote %s", out)

			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "heatmap.png", "output file; the extension selects the format")
	cmd.Flags().String("land", "#", "non-digit runes plotted as 1")
	cmd.Flags().Float64("size", 0, "canvas side in inches (default 6)")

	return cmd
}
