package dxf

import "strings"

// Section and document markers carried by code-0 tokens.
const (
	markerSection  = "SECTION"
	markerEndSec   = "ENDSEC"
	markerEOF      = "EOF"
	markerEntities = "ENTITIES"
)

// scanEntities walks the token stream and parses every supported record
// inside an ENTITIES section. Records outside ENTITIES, unknown entity
// types and records that fail to parse are passed over.
func scanEntities(tokens []Token) []rawEntity {
	var entities []rawEntity
	inEntities := false

	for i := 0; i < len(tokens); {
		t := tokens[i]
		if t.Code != codeType {
			i++
			continue
		}

		switch {
		case strings.EqualFold(t.Value, markerSection):
			inEntities = i+1 < len(tokens) &&
				tokens[i+1].Code == codeName &&
				strings.EqualFold(tokens[i+1].Value, markerEntities)
			i++

		case strings.EqualFold(t.Value, markerEndSec):
			inEntities = false
			i++

		case strings.EqualFold(t.Value, markerEOF):
			return entities

		case !inEntities:
			i++

		default:
			parse, ok := entityParsers[strings.ToUpper(t.Value)]
			if !ok {
				i = recordEnd(tokens, i+1)
				continue
			}
			ent, ok, next := parse(tokens, i+1)
			if ok {
				entities = append(entities, ent)
			}
			i = next
		}
	}

	return entities
}
