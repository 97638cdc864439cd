package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chazu/pathdxf/pkg/analyze"
	"github.com/chazu/pathdxf/pkg/dxf"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var (
	importJSON bool
	exportOut  string
	tokensDump bool
)

var importCmd = &cobra.Command{
	Use:   "import <file.dxf>",
	Short: "Parse a document and list its shapes",
	Long: `Parse a document and list every supported entity found in its
ENTITIES section. Geometry is recentred on the 50x50 workspace.
Use "-" to read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var classifyCmd = &cobra.Command{
	Use:   "classify <file.dxf>",
	Short: "Classify each imported shape as circle, oval or complex",
	Args:  cobra.ExactArgs(1),
	RunE:  runClassify,
}

var exportCmd = &cobra.Command{
	Use:   "export <script.lisp>",
	Short: "Evaluate a path script and write a document",
	Long: `Evaluate a path script and serialize the paths it defines.

Script builtins:
  (pt x y)
  (path "name" :kind :reference|:design :closed true (pt ..) (pt ..) ...)
  (circle "name" :center (pt x y) :radius r)
  (rect "name" :at (pt x y) :width w :height h)`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var tokensCmd = &cobra.Command{
	Use:   "tokens <file.dxf>",
	Short: "Print the group-code/value pairs of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(importCmd, classifyCmd, exportCmd, tokensCmd)

	importCmd.Flags().BoolVar(&importJSON, "json", false, "print shapes as JSON")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output file (default stdout)")
	tokensCmd.Flags().BoolVar(&tokensDump, "dump", false, "dump tokens as Go values")
}

func runImport(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}
	result := NewApp().Import(text)
	out := cmd.OutOrStdout()

	if importJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(out, "Shapes: %d\n", len(result.Shapes))
	for _, s := range result.Shapes {
		closed := "open"
		if s.Closed {
			closed = "closed"
		}
		fmt.Fprintf(out, "  %-10s %-9s %-6s %d points\n", s.Name, s.Kind, closed, len(s.Points))
	}
	return nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}
	result := NewApp().Import(text)
	out := cmd.OutOrStdout()

	for _, s := range result.Shapes {
		fmt.Fprintf(out, "%-10s %s\n", s.Name, describeSummary(s.Summary))
	}
	return nil
}

// describeSummary renders a one-line classification.
func describeSummary(s *analyze.Summary) string {
	if s == nil {
		return "no usable points"
	}
	var detail string
	switch s.Kind {
	case analyze.ShapeCircle:
		detail = fmt.Sprintf("diameter=%s", dxf.FormatNumber(s.Diameter))
	case analyze.ShapeOval:
		detail = fmt.Sprintf("horizontal=%s vertical=%s",
			dxf.FormatNumber(s.Horizontal), dxf.FormatNumber(s.Vertical))
	default:
		detail = fmt.Sprintf("longest=%s shortest=%s",
			dxf.FormatNumber(s.Longest), dxf.FormatNumber(s.Shortest))
	}
	return fmt.Sprintf("%-8s %s", s.Kind, detail)
}

func runExport(cmd *cobra.Command, args []string) error {
	source, err := readInput(args[0])
	if err != nil {
		return err
	}
	result := NewApp().ExportScript(source)

	if len(result.Errors) > 0 {
		msgs := make([]string, 0, len(result.Errors))
		for _, e := range result.Errors {
			if e.Line > 0 {
				msgs = append(msgs, fmt.Sprintf("line %d: %s", e.Line, e.Message))
			} else {
				msgs = append(msgs, e.Message)
			}
		}
		return fmt.Errorf("script failed:\n  %s", strings.Join(msgs, "\n  "))
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w.Message)
	}

	var out io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", exportOut, err)
		}
		defer f.Close()
		out = f
	}
	if _, err := io.WriteString(out, result.Document); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

func runTokens(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}
	tokens := dxf.Tokenize(text)
	out := cmd.OutOrStdout()

	if tokensDump {
		spew.Fdump(out, tokens)
		return nil
	}
	for _, t := range tokens {
		fmt.Fprintf(out, "%4d  %s\n", t.Code, t.Value)
	}
	return nil
}
