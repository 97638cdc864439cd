package dxf

import (
	"strconv"
	"strings"
)

// Token is one group-code/value pair.
type Token struct {
	Code  int
	Value string
}

// Tokenize splits document text into group-code/value pairs. Either line
// ending convention is accepted. A code line that is not an integer is
// skipped on its own, without consuming the line after it, so a stray
// blank line cannot shift every following pair out of alignment.
// A final code line with no value line is dropped.
func Tokenize(text string) []Token {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	tokens := make([]Token, 0, len(lines)/2)
	for i := 0; i < len(lines); {
		code, err := strconv.Atoi(strings.TrimSpace(lines[i]))
		if err != nil {
			i++
			continue
		}
		if i+1 >= len(lines) {
			break
		}
		tokens = append(tokens, Token{Code: code, Value: strings.TrimSpace(lines[i+1])})
		i += 2
	}
	return tokens
}
