package analyze

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/chazu/pathdxf/pkg/design"
	"github.com/chazu/pathdxf/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// box returns a closed rectangle path of the given size at the origin.
func box(name string, kind design.Category, w, h float64) *design.Path {
	return design.NewPath(name, kind, true, []geom.Point{
		geom.Pt(0, 0), geom.Pt(w, 0), geom.Pt(w, h), geom.Pt(0, h),
	})
}

func TestComputeBoundsNodes(t *testing.T) {
	p := design.NewPath("", design.CategoryDesign, false, []geom.Point{
		geom.Pt(-1, 2), geom.Pt(3, -4), geom.Pt(math.NaN(), 50), geom.Pt(0, math.Inf(1)),
	})
	b := ComputeBounds(p)
	require.NotNil(t, b)
	assert.Equal(t, Bounds{MinX: -1, MinY: -4, MaxX: 3, MaxY: 2, Width: 4, Height: 6}, *b)
}

func TestComputeBoundsPrefersSampled(t *testing.T) {
	p := box("", design.CategoryDesign, 1, 1)
	p.Sampled = []geom.Point{geom.Pt(0, 0), geom.Pt(8, 2)}

	b := ComputeBounds(p)
	require.NotNil(t, b)
	assert.Equal(t, 8.0, b.Width)
	assert.Equal(t, 2.0, b.Height)
}

func TestComputeBoundsNone(t *testing.T) {
	assert.Nil(t, ComputeBounds(nil))
	assert.Nil(t, ComputeBounds(&design.Path{}))
	p := design.NewPath("", design.CategoryDesign, false, []geom.Point{geom.Pt(math.NaN(), math.NaN())})
	assert.Nil(t, ComputeBounds(p))
}

func TestComputeBoundsClampsNoise(t *testing.T) {
	p := design.NewPath("", design.CategoryDesign, false, []geom.Point{
		geom.Pt(5, 5), geom.Pt(5.0004, 5.0009), geom.Pt(5.0001, 5),
	})
	b := ComputeBounds(p)
	require.NotNil(t, b)
	assert.Zero(t, b.Width)
	assert.Zero(t, b.Height)
	assert.Equal(t, 5.0, b.MinX)
}

func TestClassifyNearSquareIsCircle(t *testing.T) {
	s := Classify(box("", design.CategoryDesign, 10, 10.3))
	require.NotNil(t, s)
	assert.Equal(t, ShapeCircle, s.Kind)
	assert.InDelta(t, 10.15, s.Diameter, 1e-9)
}

func TestClassifyElongated(t *testing.T) {
	s := Classify(box("", design.CategoryReference, 10, 12))
	require.NotNil(t, s)
	assert.Equal(t, ShapeOval, s.Kind)
	assert.Equal(t, 10.0, s.Horizontal)
	assert.Equal(t, 12.0, s.Vertical)

	s = Classify(box("", design.CategoryDesign, 10, 12))
	require.NotNil(t, s)
	assert.Equal(t, ShapeComplex, s.Kind)
	assert.Equal(t, 12.0, s.Longest)
	assert.Equal(t, 10.0, s.Shortest)
}

func TestClassifyToleranceClamp(t *testing.T) {
	// Small shapes get at least 0.05 of slack.
	s := Classify(box("", design.CategoryDesign, 0.5, 0.54))
	assert.Equal(t, ShapeCircle, s.Kind)
	s = Classify(box("", design.CategoryDesign, 0.5, 0.56))
	assert.Equal(t, ShapeComplex, s.Kind)

	// Large shapes get at most 0.5.
	s = Classify(box("", design.CategoryDesign, 100, 100.5))
	assert.Equal(t, ShapeCircle, s.Kind)
	s = Classify(box("", design.CategoryDesign, 100, 100.6))
	assert.Equal(t, ShapeComplex, s.Kind)
}

func TestClassifyNameWins(t *testing.T) {
	s := Classify(box("Big Circle", design.CategoryDesign, 10, 30))
	require.NotNil(t, s)
	assert.Equal(t, ShapeCircle, s.Kind)
	assert.Equal(t, 20.0, s.Diameter)

	s = Classify(box("OVAL cutout", design.CategoryDesign, 10, 10))
	require.NotNil(t, s)
	assert.Equal(t, ShapeOval, s.Kind)

	// "circle" is checked before "oval".
	s = Classify(box("oval-circle", design.CategoryDesign, 10, 30))
	assert.Equal(t, ShapeCircle, s.Kind)
}

func TestClassifyDegenerateIsComplex(t *testing.T) {
	p := design.NewPath("circle", design.CategoryReference, false, []geom.Point{
		geom.Pt(3, 3), geom.Pt(3, 3), geom.Pt(3, 3),
	})
	b := ComputeBounds(p)
	require.NotNil(t, b)
	assert.Zero(t, b.Width)
	assert.Zero(t, b.Height)

	s := Classify(p)
	require.NotNil(t, s)
	assert.Equal(t, ShapeComplex, s.Kind)
	assert.Zero(t, s.Longest)

	line := design.NewPath("", design.CategoryReference, false, []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0)})
	s = Classify(line)
	assert.Equal(t, ShapeComplex, s.Kind)
	assert.Equal(t, 10.0, s.Longest)
	assert.Zero(t, s.Shortest)
}

func TestClassifyNone(t *testing.T) {
	assert.Nil(t, Classify(&design.Path{}))
}

func TestSummaryJSON(t *testing.T) {
	s := Classify(box("", design.CategoryDesign, 4, 4))
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"circle"`)
	assert.Contains(t, string(data), `"diameter":4`)
	assert.NotContains(t, string(data), "longest")
}

func TestShapeKindString(t *testing.T) {
	assert.Equal(t, "circle", ShapeCircle.String())
	assert.Equal(t, "oval", ShapeOval.String())
	assert.Equal(t, "complex", ShapeComplex.String())
	assert.Equal(t, "unknown", ShapeKind(42).String())
}
