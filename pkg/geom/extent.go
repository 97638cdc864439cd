package geom

import (
	"github.com/deadsy/sdfx/sdf"
)

// Extent accumulates an axis-aligned bounding box over finite points.
// The zero value is an empty extent.
type Extent struct {
	box   sdf.Box2
	count int
}

// Include grows the extent to cover p. Non-finite points are ignored.
func (e *Extent) Include(p Point) {
	if !p.Finite() {
		return
	}
	v := p.Vec()
	if e.count == 0 {
		e.box = sdf.Box2{Min: v, Max: v}
	} else {
		e.box = sdf.Box2{Min: e.box.Min.Min(v), Max: e.box.Max.Max(v)}
	}
	e.count++
}

// IncludeAll grows the extent to cover every point in pts.
func (e *Extent) IncludeAll(pts []Point) {
	for _, p := range pts {
		e.Include(p)
	}
}

// Empty reports whether no finite point has been included.
func (e *Extent) Empty() bool {
	return e.count == 0
}

// Count returns the number of points included so far.
func (e *Extent) Count() int {
	return e.count
}

// Min returns the lower-left corner.
func (e *Extent) Min() Point {
	return FromVec(e.box.Min)
}

// Max returns the upper-right corner.
func (e *Extent) Max() Point {
	return FromVec(e.box.Max)
}

// Center returns the midpoint of the box.
func (e *Extent) Center() Point {
	return FromVec(e.box.Center())
}

// Size returns the box width (X) and height (Y).
func (e *Extent) Size() Point {
	return FromVec(e.box.Size())
}
