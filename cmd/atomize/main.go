// Package main provides the atomize CLI for turning copied CSS declarations
// into UnoCSS or Tailwind CSS utility classes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
