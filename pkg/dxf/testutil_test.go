package dxf

import "strings"

// doc wraps entity body lines in a minimal document with an ENTITIES
// section. Lines alternate code and value.
func doc(body ...string) string {
	lines := []string{"0", "SECTION", "2", "ENTITIES"}
	lines = append(lines, body...)
	lines = append(lines, "0", "ENDSEC", "0", "EOF")
	return strings.Join(lines, "\n") + "\n"
}
