package design

import (
	"strings"

	"github.com/chazu/pathdxf/pkg/geom"
)

// Category is the logical role of a path.
type Category string

const (
	// CategoryReference marks an externally supplied outline.
	CategoryReference Category = "reference"
	// CategoryDesign marks a user-authored design element.
	CategoryDesign Category = "design"
)

func (c Category) String() string {
	return string(c)
}

// IsReference reports whether c is the reference category.
func (c Category) IsReference() bool {
	return c == CategoryReference
}

// ParseCategory maps a name to a Category. Anything other than
// "reference" (case-insensitive) is a design path.
func ParseCategory(name string) Category {
	if strings.EqualFold(strings.TrimSpace(name), string(CategoryReference)) {
		return CategoryReference
	}
	return CategoryDesign
}

// Node is one vertex of a path.
type Node struct {
	Point geom.Point `json:"point"`
}

// Meta carries the per-path attributes the codec and analyzer consult.
type Meta struct {
	Kind   Category `json:"kind"`
	Closed bool     `json:"closed"`
	Name   string   `json:"name,omitempty"`
}

// Path is an ordered node list plus metadata. Sampled, when present, is a
// flattened copy of the geometry maintained by the design tool.
type Path struct {
	Nodes   []Node       `json:"nodes"`
	Meta    Meta         `json:"meta"`
	Sampled []geom.Point `json:"sampled,omitempty"`
}

// NewPath builds a path from a point list.
func NewPath(name string, kind Category, closed bool, pts []geom.Point) *Path {
	nodes := make([]Node, len(pts))
	for i, p := range pts {
		nodes[i] = Node{Point: p}
	}
	return &Path{
		Nodes: nodes,
		Meta: Meta{
			Kind:   kind,
			Closed: closed,
			Name:   name,
		},
	}
}

// Points returns the node points in order.
func (p *Path) Points() []geom.Point {
	pts := make([]geom.Point, len(p.Nodes))
	for i, n := range p.Nodes {
		pts[i] = n.Point
	}
	return pts
}

// Len returns the number of nodes.
func (p *Path) Len() int {
	return len(p.Nodes)
}
