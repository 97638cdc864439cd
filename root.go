package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pathdxf",
	Short: "Import, export and classify 2D paths in DXF-style text",
	Long: `pathdxf reads and writes 2D path geometry in a plain-text CAD
interchange format (group-code/value pairs, modeled on DXF) and classifies
paths as circles, ovals or complex outlines.

Examples:
  pathdxf import part.dxf              # List imported shapes
  pathdxf import part.dxf --json       # Shapes and summaries as JSON
  pathdxf classify part.dxf            # Shape classification table
  pathdxf export design.lisp -o out.dxf
  pathdxf tokens part.dxf --dump       # Tokenizer debug output`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !verbose {
			log.SetOutput(io.Discard)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// readInput reads a named file, or stdin when the name is "-".
func readInput(name string) (string, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), nil
}
