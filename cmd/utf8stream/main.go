// Package main is the entry point for the utf8stream inspection CLI.
//
// Usage:
//
//	utf8stream [flags] <command> [args]
//
// Commands:
//
//	split      - List every cluster of the input with offsets and widths
//	get        - Resolve the cluster covering one byte offset
//	pop        - Pop clusters off the end of the input
//	version    - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/pavanmanishd/utf8stream/cmd/utf8stream/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
