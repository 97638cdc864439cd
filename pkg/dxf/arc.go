package dxf

import (
	"math"

	"github.com/chazu/pathdxf/pkg/geom"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

const (
	fullTurn = 2 * math.Pi

	// segmentsPerTurn is the sampling resolution of a complete circle.
	segmentsPerTurn = 64
	// minClosedSegments and minOpenSegments keep small sweeps smooth.
	minClosedSegments = 16
	minOpenSegments   = 8
)

// arcSegments returns the number of segments used to sample a sweep.
func arcSegments(sweep float64, closed bool) int {
	fraction := math.Min(math.Max(sweep/fullTurn, 0), 1)
	segments := int(math.Ceil(fraction * segmentsPerTurn))

	minimum := minOpenSegments
	if closed {
		minimum = minClosedSegments
	}
	if segments < minimum {
		segments = minimum
	}
	return segments
}

// SampleArc flattens a circular arc into points. Angles are in radians and
// the sweep runs counter-clockwise from start.
//
// A closed sample emits one point per segment and leaves the closing edge
// implicit. An open sample emits segments+1 points so both endpoints are
// present. A non-finite sweep yields nil.
func SampleArc(center geom.Point, radius, start, sweep float64, closed bool) []geom.Point {
	if !geom.IsFinite(sweep) {
		return nil
	}
	segments := arcSegments(sweep, closed)

	count := segments + 1
	if closed {
		count = segments
	}

	c := center.Vec()
	pts := make([]geom.Point, count)
	for i := 0; i < count; i++ {
		angle := start + sweep*float64(i)/float64(segments)
		offset := v2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}.MulScalar(radius)
		pts[i] = geom.FromVec(c.Add(offset))
	}
	return pts
}
