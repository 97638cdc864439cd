package dxf

import (
	"github.com/chazu/pathdxf/pkg/design"
	"github.com/chazu/pathdxf/pkg/geom"
)

// Shape is one imported entity, recentred on the workspace.
type Shape struct {
	Points []geom.Point    `json:"points"`
	Closed bool            `json:"closed"`
	Kind   design.Category `json:"kind"`
}

// Path lifts the shape into a design path with the given display name.
func (s Shape) Path(name string) *design.Path {
	return design.NewPath(name, s.Kind, s.Closed, s.Points)
}

// Parse reads every supported entity from document text. It never fails;
// malformed or empty input yields an empty slice.
func Parse(text string) []Shape {
	raw := centerOnWorkspace(scanEntities(Tokenize(text)))

	shapes := make([]Shape, 0, len(raw))
	for _, e := range raw {
		if len(e.points) < 2 {
			continue
		}
		shapes = append(shapes, Shape{
			Points: e.points,
			Closed: e.closed,
			Kind:   tagLayer(e.layer),
		})
	}
	return shapes
}

// tagLayer maps a layer name to a path category: "reference" in any case
// is a reference outline, everything else is design geometry.
func tagLayer(layer string) design.Category {
	return design.ParseCategory(layer)
}
