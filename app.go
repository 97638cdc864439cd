package main

import (
	"fmt"
	"log"

	"github.com/chazu/pathdxf/pkg/analyze"
	"github.com/chazu/pathdxf/pkg/design"
	"github.com/chazu/pathdxf/pkg/dxf"
	"github.com/chazu/pathdxf/pkg/engine"
	"github.com/chazu/pathdxf/pkg/geom"
)

// App is the binding surface the design tool calls. Every method returns a
// JSON-serializable result and never fails outright; problems are reported
// in the result.
type App struct {
	engine *engine.Engine
}

// ShapeData is one imported shape with its classification.
type ShapeData struct {
	Name    string           `json:"name"`
	Points  []geom.Point     `json:"points"`
	Closed  bool             `json:"closed"`
	Kind    design.Category  `json:"kind"`
	Summary *analyze.Summary `json:"summary,omitempty"`
}

// ImportResult is returned by Import.
type ImportResult struct {
	Shapes []ShapeData `json:"shapes"`
}

// MessageData is a JSON-serializable error or warning.
type MessageData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// ExportResult is returned by Export and ExportScript.
type ExportResult struct {
	Document string        `json:"document"`
	Paths    int           `json:"paths"`
	Errors   []MessageData `json:"errors"`
	Warnings []MessageData `json:"warnings"`
}

// NewApp creates a new App with a script engine.
func NewApp() *App {
	return &App{engine: engine.NewEngine()}
}

// Import parses document text and classifies every shape found. Shapes
// are named "shape-N" in document order.
func (a *App) Import(text string) ImportResult {
	shapes := dxf.Parse(text)
	result := ImportResult{Shapes: make([]ShapeData, 0, len(shapes))}

	for i, s := range shapes {
		name := shapeName(i)
		result.Shapes = append(result.Shapes, ShapeData{
			Name:    name,
			Points:  s.Points,
			Closed:  s.Closed,
			Kind:    s.Kind,
			Summary: analyze.Classify(s.Path(name)),
		})
	}

	log.Printf("import: %d shape(s)", len(result.Shapes))
	return result
}

// Export serializes paths. Paths the serializer skips or alters are
// reported as warnings.
func (a *App) Export(paths []*design.Path) ExportResult {
	result := ExportResult{
		Document: dxf.Serialize(paths),
		Paths:    len(paths),
		Errors:   []MessageData{},
		Warnings: []MessageData{},
	}
	for _, w := range design.Check(paths) {
		result.Warnings = append(result.Warnings, MessageData{Message: w.String()})
	}

	log.Printf("export: %d path(s), %d warning(s)", len(paths), len(result.Warnings))
	return result
}

// ExportScript evaluates a path script and serializes the paths it defines.
func (a *App) ExportScript(source string) ExportResult {
	paths, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		log.Printf("ExportScript fatal error: %v", err)
		return ExportResult{
			Errors:   []MessageData{{Message: err.Error()}},
			Warnings: []MessageData{},
		}
	}

	if len(evalErrs) > 0 {
		result := ExportResult{Errors: []MessageData{}, Warnings: []MessageData{}}
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, MessageData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	return a.Export(paths)
}

// Analyze classifies already materialized paths. Paths without usable
// points get a nil summary.
func (a *App) Analyze(paths []*design.Path) []ShapeData {
	out := make([]ShapeData, 0, len(paths))
	for _, p := range paths {
		if p == nil {
			continue
		}
		out = append(out, ShapeData{
			Name:    p.Meta.Name,
			Points:  p.Points(),
			Closed:  p.Meta.Closed,
			Kind:    p.Meta.Kind,
			Summary: analyze.Classify(p),
		})
	}
	return out
}

func shapeName(i int) string {
	return fmt.Sprintf("shape-%d", i+1)
}
