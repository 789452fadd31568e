// SPDX-License-Identifier: MIT

// Command gridctl inspects character-map grids: it reports their shape,
// renders them (optionally transposed or mirrored), counts connected regions
// and exports numeric heat maps.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Errorln(err)
		os.Exit(1)
	}
}
