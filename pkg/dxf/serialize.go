package dxf

import (
	"io"
	"strconv"
	"strings"

	"github.com/chazu/pathdxf/pkg/design"
	"github.com/chazu/pathdxf/pkg/geom"
)

// Export layer names. "OXIDED" is the historical label for design
// geometry and is kept for files already in circulation.
const (
	LayerReference = "REFERENCE"
	LayerDesign    = "OXIDED"
)

// Serialize renders paths as document text. Paths with fewer than two
// nodes are skipped. An open two-node path becomes a LINE; every other
// path becomes an LWPOLYLINE. No normalization is applied.
func Serialize(paths []*design.Path) string {
	var sb strings.Builder
	w := &docWriter{sb: &sb}
	w.document(paths)
	return sb.String()
}

// Write streams the Serialize output for paths to out.
func Write(out io.Writer, paths []*design.Path) error {
	_, err := io.WriteString(out, Serialize(paths))
	return err
}

// docWriter emits group-code/value line pairs.
type docWriter struct {
	sb *strings.Builder
}

func (w *docWriter) pair(code int, value string) {
	w.sb.WriteString(strconv.Itoa(code))
	w.sb.WriteByte('\n')
	w.sb.WriteString(value)
	w.sb.WriteByte('\n')
}

func (w *docWriter) number(code int, v float64) {
	w.pair(code, FormatNumber(v))
}

func (w *docWriter) document(paths []*design.Path) {
	// Empty HEADER, then open ENTITIES.
	w.pair(codeType, markerSection)
	w.pair(codeName, "HEADER")
	w.pair(codeType, markerEndSec)
	w.pair(codeType, markerSection)
	w.pair(codeName, markerEntities)

	for _, p := range paths {
		if p == nil || len(p.Nodes) < 2 {
			continue
		}
		if !p.Meta.Closed && len(p.Nodes) == 2 {
			w.line(p)
		} else {
			w.polyline(p)
		}
	}

	w.pair(codeType, markerEndSec)
	w.pair(codeType, markerEOF)
}

func (w *docWriter) line(p *design.Path) {
	a, b := p.Nodes[0].Point, p.Nodes[1].Point
	w.pair(codeType, "LINE")
	w.pair(codeLayer, exportLayer(p.Meta.Kind))
	w.number(codeX, a.X)
	w.number(codeY, a.Y)
	w.number(codeEndX, b.X)
	w.number(codeEndY, b.Y)
}

func (w *docWriter) polyline(p *design.Path) {
	flags := "0"
	if p.Meta.Closed {
		flags = "1"
	}
	w.pair(codeType, "LWPOLYLINE")
	w.pair(codeLayer, exportLayer(p.Meta.Kind))
	w.pair(codeCount, strconv.Itoa(len(p.Nodes)))
	w.pair(codeFlags, flags)
	for _, n := range p.Nodes {
		w.number(codeX, n.Point.X)
		w.number(codeY, n.Point.Y)
	}
}

func exportLayer(kind design.Category) string {
	if kind.IsReference() {
		return LayerReference
	}
	return LayerDesign
}

// FormatNumber renders v with six fixed decimals, then strips trailing
// zeros and a bare decimal point. Non-finite values and negative zero
// render as "0". The output never depends on locale.
func FormatNumber(v float64) string {
	if !geom.IsFinite(v) {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
