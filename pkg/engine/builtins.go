package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/chazu/pathdxf/pkg/design"
	"github.com/chazu/pathdxf/pkg/dxf"
	"github.com/chazu/pathdxf/pkg/geom"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms path script source before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     Keywords then need no global symbol registration.
//
//  2. Kebab-case to underscore: inner-ring -> inner_ring
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpPoint wraps a geom.Point.
type sexpPoint struct {
	pt geom.Point
}

func (p *sexpPoint) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(pt %g %g)", p.pt.X, p.pt.Y)
}
func (p *sexpPoint) Type() *zygo.RegisteredType { return nil }

// sexpPathRef refers to a path already added to the script.
type sexpPathRef struct {
	index int
	name  string
}

func (r *sexpPathRef) SexpString(ps *zygo.PrintState) string {
	if r.name != "" {
		return fmt.Sprintf("(pathref %q)", r.name)
	}
	return fmt.Sprintf("(pathref %d)", r.index)
}
func (r *sexpPathRef) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value: a flag.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		if math.IsNaN(v.Val) || math.IsInf(v.Val, 0) {
			return 0, fmt.Errorf("expected finite number, got %v", v.Val)
		}
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_reference) and plain strings.
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toBool accepts true/false, or a trailing keyword flag with no value.
func toBool(s zygo.Sexp) (bool, error) {
	switch v := s.(type) {
	case *zygo.SexpBool:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return true, nil
		}
	}
	return false, fmt.Errorf("expected true or false, got %T (%s)", s, s.SexpString(nil))
}

// toCategory converts :reference / :design to a design.Category.
func toCategory(s zygo.Sexp) (design.Category, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return "", fmt.Errorf("expected kind keyword (:reference, :design): %w", err)
	}
	switch strings.ToLower(name) {
	case string(design.CategoryReference):
		return design.CategoryReference, nil
	case string(design.CategoryDesign):
		return design.CategoryDesign, nil
	}
	return "", fmt.Errorf("invalid kind %q, expected reference or design", name)
}

// toPoint extracts a geom.Point from a sexpPoint.
func toPoint(s zygo.Sexp) (geom.Point, error) {
	if p, ok := s.(*sexpPoint); ok {
		return p.pt, nil
	}
	return geom.Point{}, fmt.Errorf("expected point, got %T (%s)", s, s.SexpString(nil))
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// collectPoints flattens positional points and lists of points.
func collectPoints(items []zygo.Sexp) ([]geom.Point, error) {
	var pts []geom.Point
	for i, item := range items {
		if p, err := toPoint(item); err == nil {
			pts = append(pts, p)
			continue
		}
		list, err := sexpListToSlice(item)
		if err != nil {
			return nil, fmt.Errorf("argument %d: expected point or list of points", i+1)
		}
		nested, err := collectPoints(list)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		pts = append(pts, nested...)
	}
	return pts, nil
}

// ---------------------------------------------------------------------------
// Script state
// ---------------------------------------------------------------------------

// script collects the paths defined during one evaluation.
type script struct {
	paths []*design.Path
}

func newScript() *script {
	return &script{paths: []*design.Path{}}
}

func (s *script) add(p *design.Path) *sexpPathRef {
	s.paths = append(s.paths, p)
	return &sexpPathRef{index: len(s.paths) - 1, name: p.Meta.Name}
}

// commonOpts reads the name (first positional string) and :kind shared by
// every path builtin. It returns the remaining positional arguments.
func commonOpts(fn string, pa kwArgs) (string, design.Category, []zygo.Sexp, error) {
	name := ""
	rest := pa.positional
	if len(rest) > 0 {
		if str, ok := rest[0].(*zygo.SexpStr); ok {
			name = str.S
			rest = rest[1:]
		}
	}

	kind := design.CategoryDesign
	if v, ok := pa.kw["kind"]; ok {
		k, err := toCategory(v)
		if err != nil {
			return "", "", nil, fmt.Errorf("%s: kind: %w", fn, err)
		}
		kind = k
	}
	return name, kind, rest, nil
}

// positiveKW reads a required, strictly positive numeric keyword.
func positiveKW(fn string, pa kwArgs, key string) (float64, error) {
	v, ok := pa.kw[key]
	if !ok {
		return 0, fmt.Errorf("%s: :%s is required", fn, key)
	}
	f, err := toFloat64(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %s: %w", fn, key, err)
	}
	if f <= 0 {
		return 0, fmt.Errorf("%s: %s must be positive, got %g", fn, key, f)
	}
	return f, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the path script builtins into a zygomys
// environment. Every path builtin appends to s in call order.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, s *script) {

	// -----------------------------------------------------------------------
	// (pt 10 20)
	// -----------------------------------------------------------------------
	env.AddFunction("pt", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("pt requires exactly 2 arguments, got %d", len(args))
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("pt: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("pt: y: %w", err)
		}
		return &sexpPoint{pt: geom.Pt(x, y)}, nil
	})

	// -----------------------------------------------------------------------
	// (path "name" :kind :reference :closed true (pt 0 0) (pt 10 0) ...)
	// -----------------------------------------------------------------------
	env.AddFunction("path", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		pathName, kind, rest, err := commonOpts("path", pa)
		if err != nil {
			return zygo.SexpNull, err
		}

		closed := false
		if v, ok := pa.kw["closed"]; ok {
			closed, err = toBool(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("path: closed: %w", err)
			}
		}

		pts, err := collectPoints(rest)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("path: %w", err)
		}
		if len(pts) < 2 {
			return zygo.SexpNull, fmt.Errorf("path: at least 2 points required, got %d", len(pts))
		}

		return s.add(design.NewPath(pathName, kind, closed, pts)), nil
	})

	// -----------------------------------------------------------------------
	// (circle "name" :center (pt 25 25) :radius 5 :kind :reference)
	// -----------------------------------------------------------------------
	env.AddFunction("circle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		pathName, kind, _, err := commonOpts("circle", pa)
		if err != nil {
			return zygo.SexpNull, err
		}

		center := geom.Point{}
		if v, ok := pa.kw["center"]; ok {
			center, err = toPoint(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("circle: center: %w", err)
			}
		}
		r, err := positiveKW("circle", pa, "radius")
		if err != nil {
			return zygo.SexpNull, err
		}

		pts := dxf.SampleArc(center, r, 0, 2*math.Pi, true)
		return s.add(design.NewPath(pathName, kind, true, pts)), nil
	})

	// -----------------------------------------------------------------------
	// (rect "name" :at (pt 0 0) :width 40 :height 30 :kind :design)
	// -----------------------------------------------------------------------
	env.AddFunction("rect", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		pathName, kind, _, err := commonOpts("rect", pa)
		if err != nil {
			return zygo.SexpNull, err
		}

		at := geom.Point{}
		if v, ok := pa.kw["at"]; ok {
			at, err = toPoint(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("rect: at: %w", err)
			}
		}
		w, err := positiveKW("rect", pa, "width")
		if err != nil {
			return zygo.SexpNull, err
		}
		h, err := positiveKW("rect", pa, "height")
		if err != nil {
			return zygo.SexpNull, err
		}

		pts := []geom.Point{
			at,
			at.Add(geom.Pt(w, 0)),
			at.Add(geom.Pt(w, h)),
			at.Add(geom.Pt(0, h)),
		}
		return s.add(design.NewPath(pathName, kind, true, pts)), nil
	})
}
