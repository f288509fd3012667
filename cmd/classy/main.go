// Package main provides the classy CLI for rendering theme-aware utility
// class strings, previewing palettes, and exporting CSS custom properties.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
