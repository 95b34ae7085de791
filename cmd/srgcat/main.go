// SPDX-License-Identifier: MIT

// Command srgcat classifies strongly regular graph parameters and reports
// catalog tuples that have no registered construction.
package main

import (
	"os"

	"github.com/katalvlaran/srgcat/cmd/srgcat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
