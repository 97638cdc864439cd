package dxf

import (
	"math"
	"testing"

	"github.com/chazu/pathdxf/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleArcFullCircle(t *testing.T) {
	center := geom.Pt(3, -2)
	pts := SampleArc(center, 5, 0, fullTurn, true)

	require.Len(t, pts, 64)
	assert.InDelta(t, 8.0, pts[0].X, 1e-12)
	assert.InDelta(t, -2.0, pts[0].Y, 1e-12)
	for i, p := range pts {
		assert.InDelta(t, 5.0, p.Dist(center), 1e-9, "point %d off the circle", i)
	}
	// Closure is implicit: the last point is not a repeat of the first.
	assert.Greater(t, pts[len(pts)-1].Dist(pts[0]), 0.1)
}

func TestSampleArcClosedMinimum(t *testing.T) {
	pts := SampleArc(geom.Pt(0, 0), 1, 0, math.Pi/8, true)
	assert.Len(t, pts, 16)
}

func TestSampleArcOpenMinimum(t *testing.T) {
	pts := SampleArc(geom.Pt(0, 0), 1, 0, math.Pi/16, false)
	require.Len(t, pts, 9)
	last := pts[len(pts)-1]
	assert.InDelta(t, math.Cos(math.Pi/16), last.X, 1e-12)
	assert.InDelta(t, math.Sin(math.Pi/16), last.Y, 1e-12)
}

func TestSampleArcOpenQuarter(t *testing.T) {
	pts := SampleArc(geom.Pt(0, 0), 2, math.Pi/2, math.Pi/2, false)
	require.Len(t, pts, 17)
	assert.InDelta(t, 0.0, pts[0].X, 1e-12)
	assert.InDelta(t, 2.0, pts[0].Y, 1e-12)
	assert.InDelta(t, -2.0, pts[16].X, 1e-12)
	assert.InDelta(t, 0.0, pts[16].Y, 1e-12)
}

func TestArcSegmentsMonotonic(t *testing.T) {
	prev := 0
	for i := 0; i <= 100; i++ {
		sweep := fullTurn * float64(i) / 100
		n := arcSegments(sweep, true)
		assert.GreaterOrEqual(t, n, 16)
		assert.GreaterOrEqual(t, n, prev, "segments decreased at sweep %v", sweep)
		prev = n
	}
	assert.Equal(t, 64, arcSegments(fullTurn, true))
	assert.Equal(t, 64, arcSegments(4*fullTurn, false))
	assert.Equal(t, 8, arcSegments(0, false))
}

func TestSampleArcNonFiniteSweep(t *testing.T) {
	assert.Nil(t, SampleArc(geom.Pt(0, 0), 1, 0, math.NaN(), false))
	assert.Nil(t, SampleArc(geom.Pt(0, 0), 1, 0, math.Inf(1), true))
}
