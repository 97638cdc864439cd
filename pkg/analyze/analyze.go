// Package analyze measures paths and classifies their visual shape as a
// circle, an oval or a complex outline. Results are recomputed on every
// call and never cached.
package analyze

import (
	"math"
	"strings"

	"github.com/chazu/pathdxf/pkg/design"
	"github.com/chazu/pathdxf/pkg/geom"
)

// extentEpsilon is the extent below which a width or height counts as zero.
const extentEpsilon = 1e-3

// Round-shape tolerance: 5% of the smaller extent, clamped to [0.05, 0.5].
const (
	roundTolerance    = 0.05
	minRoundTolerance = 0.05
	maxRoundTolerance = 0.5
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX   float64 `json:"minX"`
	MinY   float64 `json:"minY"`
	MaxX   float64 `json:"maxX"`
	MaxY   float64 `json:"maxY"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ShapeKind tags the variant held by a Summary.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeOval
	ShapeComplex
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeOval:
		return "oval"
	case ShapeComplex:
		return "complex"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k ShapeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Summary describes a classified path. Which measurement fields are set
// depends on Kind:
//   - ShapeCircle: Diameter
//   - ShapeOval: Horizontal, Vertical
//   - ShapeComplex: Longest, Shortest
type Summary struct {
	Kind   ShapeKind `json:"kind"`
	Bounds Bounds    `json:"bounds"`

	Diameter   float64 `json:"diameter,omitempty"`
	Horizontal float64 `json:"horizontal,omitempty"`
	Vertical   float64 `json:"vertical,omitempty"`
	Longest    float64 `json:"longest,omitempty"`
	Shortest   float64 `json:"shortest,omitempty"`
}

// ComputeBounds returns the bounding box of p, or nil when p has no finite
// points. The sampled cache is used when present, otherwise node points.
// Extents under 1e-3 are reported as exactly zero.
func ComputeBounds(p *design.Path) *Bounds {
	if p == nil {
		return nil
	}

	var ext geom.Extent
	if len(p.Sampled) > 0 {
		ext.IncludeAll(p.Sampled)
	} else {
		for _, n := range p.Nodes {
			ext.Include(n.Point)
		}
	}
	if ext.Empty() {
		return nil
	}

	lo, hi, size := ext.Min(), ext.Max(), ext.Size()
	return &Bounds{
		MinX:   lo.X,
		MinY:   lo.Y,
		MaxX:   hi.X,
		MaxY:   hi.Y,
		Width:  snapExtent(size.X),
		Height: snapExtent(size.Y),
	}
}

func snapExtent(v float64) float64 {
	if v < extentEpsilon {
		return 0
	}
	return v
}

// Classify returns the shape summary of p, or nil when p has no bounds.
//
// Checks run in a fixed order, each a fallback for the ones before it:
// degenerate extents, the display name, the bounding-box aspect, then the
// reference category.
func Classify(p *design.Path) *Summary {
	b := ComputeBounds(p)
	if b == nil {
		return nil
	}
	w, h := b.Width, b.Height

	if w == 0 || h == 0 {
		return complexSummary(*b)
	}

	name := strings.ToLower(p.Meta.Name)
	switch {
	case strings.Contains(name, "circle"):
		return circleSummary(*b)
	case strings.Contains(name, "oval"):
		return ovalSummary(*b)
	}

	tol := math.Min(math.Max(math.Min(w, h)*roundTolerance, minRoundTolerance), maxRoundTolerance)
	if math.Abs(w-h) <= tol {
		return circleSummary(*b)
	}
	if p.Meta.Kind.IsReference() {
		return ovalSummary(*b)
	}
	return complexSummary(*b)
}

func circleSummary(b Bounds) *Summary {
	d := math.Max(b.Width, b.Height)
	if b.Width > 0 && b.Height > 0 {
		d = (b.Width + b.Height) / 2
	}
	return &Summary{Kind: ShapeCircle, Bounds: b, Diameter: d}
}

func ovalSummary(b Bounds) *Summary {
	return &Summary{Kind: ShapeOval, Bounds: b, Horizontal: b.Width, Vertical: b.Height}
}

func complexSummary(b Bounds) *Summary {
	return &Summary{
		Kind:     ShapeComplex,
		Bounds:   b,
		Longest:  math.Max(b.Width, b.Height),
		Shortest: math.Min(b.Width, b.Height),
	}
}
