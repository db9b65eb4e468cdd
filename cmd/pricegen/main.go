// Package main is the entry point for pricegen.
package main

import (
	"fmt"
	"os"

	"github.com/agriyards/pricegen/internal/cli"

	// Register species packs
	_ "github.com/agriyards/pricegen/internal/livestock/all"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
