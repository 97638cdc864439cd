package design

import "fmt"

// Warning is an advisory finding about a single path. Export proceeds
// regardless; warnings explain why output may differ from input.
type Warning struct {
	Index   int    `json:"index"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	if w.Name != "" {
		return fmt.Sprintf("path %d (%s): %s", w.Index, w.Name, w.Message)
	}
	return fmt.Sprintf("path %d: %s", w.Index, w.Message)
}

// Check reports paths the serializer will skip or alter.
func Check(paths []*Path) []Warning {
	var warnings []Warning

	for i, p := range paths {
		if p == nil {
			warnings = append(warnings, Warning{Index: i, Message: "nil path"})
			continue
		}
		warnings = append(warnings, checkNodeCount(i, p)...)
		warnings = append(warnings, checkFinite(i, p)...)
	}

	return warnings
}

// checkNodeCount flags paths too short to export.
func checkNodeCount(i int, p *Path) []Warning {
	if len(p.Nodes) >= 2 {
		return nil
	}
	return []Warning{{
		Index:   i,
		Name:    p.Meta.Name,
		Message: fmt.Sprintf("has %d point(s), at least 2 required; skipped", len(p.Nodes)),
	}}
}

// checkFinite flags nodes whose coordinates will be written as 0.
func checkFinite(i int, p *Path) []Warning {
	var warnings []Warning
	for j, n := range p.Nodes {
		if !n.Point.Finite() {
			warnings = append(warnings, Warning{
				Index:   i,
				Name:    p.Meta.Name,
				Message: fmt.Sprintf("node %d has a non-finite coordinate; written as 0", j),
			})
		}
	}
	return warnings
}
