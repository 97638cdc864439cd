// Package geom holds the 2D point type shared by the codec and the analyzer.
package geom

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Point is an immutable 2D coordinate pair in logical workspace units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Finite reports whether both components are finite.
func (p Point) Finite() bool {
	return IsFinite(p.X) && IsFinite(p.Y)
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return FromVec(p.Vec().Add(d.Vec()))
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return FromVec(p.Vec().Sub(q.Vec()))
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return p.Vec().Sub(q.Vec()).Length()
}

// Vec converts p to an sdfx vector.
func (p Point) Vec() v2.Vec {
	return v2.Vec{X: p.X, Y: p.Y}
}

// FromVec converts an sdfx vector to a Point.
func FromVec(v v2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// IsFinite reports whether f is neither NaN nor infinite.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
