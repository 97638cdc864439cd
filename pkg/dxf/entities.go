package dxf

import (
	"math"
	"strconv"
	"strings"

	"github.com/chazu/pathdxf/pkg/geom"
)

// Group codes read by the entity parsers.
const (
	codeType   = 0
	codeName   = 2
	codeLayer  = 8
	codeX      = 10
	codeEndX   = 11
	codeY      = 20
	codeEndY   = 21
	codeRadius = 40
	codeStart  = 50
	codeEnd    = 51
	codeFlags  = 70
	codeCount  = 90
)

// seamEpsilon is the distance under which a closed polyline's last vertex
// is considered a repeat of its first.
const seamEpsilon = 1e-6

// minSweep is the smallest arc sweep (radians) not treated as a full turn.
const minSweep = 1e-9

// rawEntity is the transient result of parsing one record.
type rawEntity struct {
	points []geom.Point
	closed bool
	layer  string
}

// entityParser parses the record whose fields start at tokens[start] and
// run up to the next code-0 token. It returns the entity, whether one was
// produced, and the index of the first token it did not consume.
type entityParser func(tokens []Token, start int) (rawEntity, bool, int)

// entityParsers dispatches on the upper-cased entity type name.
var entityParsers = map[string]entityParser{
	"LINE":       parseLine,
	"LWPOLYLINE": parseLWPolyline,
	"ARC":        parseArc,
	"CIRCLE":     parseCircle,
}

// recordEnd returns the index of the next code-0 token at or after start.
func recordEnd(tokens []Token, start int) int {
	i := start
	for i < len(tokens) && tokens[i].Code != codeType {
		i++
	}
	return i
}

// parseNumber parses a coordinate-like value. Unparsable and non-finite
// values report false and are treated as absent.
func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !geom.IsFinite(f) {
		return 0, false
	}
	return f, true
}

// parseLine reads a LINE: start 10/20, end 11/21. All four are required.
func parseLine(tokens []Token, start int) (rawEntity, bool, int) {
	end := recordEnd(tokens, start)

	var layer string
	var coords [4]float64
	var seen [4]bool

	for _, t := range tokens[start:end] {
		slot := -1
		switch t.Code {
		case codeLayer:
			layer = t.Value
		case codeX:
			slot = 0
		case codeY:
			slot = 1
		case codeEndX:
			slot = 2
		case codeEndY:
			slot = 3
		}
		if slot < 0 {
			continue
		}
		if f, ok := parseNumber(t.Value); ok {
			coords[slot] = f
			seen[slot] = true
		}
	}

	for _, ok := range seen {
		if !ok {
			return rawEntity{}, false, end
		}
	}
	return rawEntity{
		points: []geom.Point{geom.Pt(coords[0], coords[1]), geom.Pt(coords[2], coords[3])},
		layer:  layer,
	}, true, end
}

// parseLWPolyline reads an LWPOLYLINE. Vertices arrive as a 10 (x)
// followed by a 20 (y); an x is held until its y arrives, and an x that is
// replaced by another x before any y is lost.
func parseLWPolyline(tokens []Token, start int) (rawEntity, bool, int) {
	end := recordEnd(tokens, start)

	var (
		layer    string
		closed   bool
		pts      []geom.Point
		pendingX float64
		hasX     bool
	)

	for _, t := range tokens[start:end] {
		switch t.Code {
		case codeLayer:
			layer = t.Value
		case codeFlags:
			if flags, err := strconv.Atoi(strings.TrimSpace(t.Value)); err == nil {
				closed = flags&1 != 0
			}
		case codeX:
			if x, ok := parseNumber(t.Value); ok {
				pendingX = x
				hasX = true
			}
		case codeY:
			y, ok := parseNumber(t.Value)
			if ok && hasX {
				pts = append(pts, geom.Pt(pendingX, y))
				hasX = false
			}
		}
	}

	if closed && len(pts) >= 2 && pts[len(pts)-1].Dist(pts[0]) <= seamEpsilon {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 2 {
		return rawEntity{}, false, end
	}
	return rawEntity{points: pts, closed: closed, layer: layer}, true, end
}

// circleFields holds the fields shared by ARC and CIRCLE.
type circleFields struct {
	layer            string
	cx, cy, radius   float64
	startDeg, endDeg float64

	hasX, hasY, hasRadius bool
	hasStart, hasEnd      bool
}

func readCircleFields(tokens []Token) circleFields {
	var f circleFields
	for _, t := range tokens {
		if t.Code == codeLayer {
			f.layer = t.Value
			continue
		}
		v, ok := parseNumber(t.Value)
		if !ok {
			continue
		}
		switch t.Code {
		case codeX:
			f.cx, f.hasX = v, true
		case codeY:
			f.cy, f.hasY = v, true
		case codeRadius:
			f.radius, f.hasRadius = v, true
		case codeStart:
			f.startDeg, f.hasStart = v, true
		case codeEnd:
			f.endDeg, f.hasEnd = v, true
		}
	}
	return f
}

// valid reports whether a centre and a positive radius were given.
func (f circleFields) valid() bool {
	return f.hasX && f.hasY && f.hasRadius && f.radius > 0
}

// parseArc reads an ARC and samples it as an open path. Angles are in
// degrees; a missing end angle equals the start, which is a full turn.
func parseArc(tokens []Token, start int) (rawEntity, bool, int) {
	end := recordEnd(tokens, start)
	f := readCircleFields(tokens[start:end])
	if !f.valid() {
		return rawEntity{}, false, end
	}

	startDeg := 0.0
	if f.hasStart {
		startDeg = f.startDeg
	}
	endDeg := startDeg
	if f.hasEnd {
		endDeg = f.endDeg
	}

	sweep := normalizeSweep(radians(endDeg - startDeg))
	pts := SampleArc(geom.Pt(f.cx, f.cy), f.radius, radians(startDeg), sweep, false)
	if len(pts) < 2 {
		return rawEntity{}, false, end
	}
	return rawEntity{points: pts, layer: f.layer}, true, end
}

// parseCircle reads a CIRCLE and samples it as a closed path.
func parseCircle(tokens []Token, start int) (rawEntity, bool, int) {
	end := recordEnd(tokens, start)
	f := readCircleFields(tokens[start:end])
	if !f.valid() {
		return rawEntity{}, false, end
	}

	pts := SampleArc(geom.Pt(f.cx, f.cy), f.radius, 0, fullTurn, true)
	return rawEntity{points: pts, closed: true, layer: f.layer}, true, end
}

// normalizeSweep returns a positive counter-clockwise sweep. Empty and
// non-finite sweeps become a full turn. Negative sweeps are wrapped by
// whole turns until positive.
func normalizeSweep(sweep float64) float64 {
	if !geom.IsFinite(sweep) || math.Abs(sweep) < minSweep {
		return fullTurn
	}
	if sweep < 0 {
		// math.Mod instead of a loop: huge magnitudes would never converge.
		sweep = math.Mod(sweep, fullTurn)
	}
	for sweep <= 0 {
		sweep += fullTurn
	}
	return sweep
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
