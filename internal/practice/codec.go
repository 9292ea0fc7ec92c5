package practice

import (
	"strings"

	"github.com/DanRulev/ordkort.git/internal/models"
	json "github.com/goccy/go-json"
)

type notesDocument struct {
	Examples []models.Example `json:"examples"`
}

// DecodeExamples reads the examples packed into an entry's notes field.
// It never fails: absent or malformed notes yield an empty list. Besides the
// canonical {"examples":[...]} shape it accepts the older single-example
// objects {"example_da","example_en"} and {"danish","english"}.
func DecodeExamples(notes string) []models.Example {
	return DedupExamples(decodeNotes(notes))
}

// Decode is DecodeExamples with d's duplicate rule.
func (d Deduplicator) Decode(notes string) []models.Example {
	return d.Dedup(decodeNotes(notes))
}

func decodeNotes(notes string) []models.Example {
	if strings.TrimSpace(notes) == "" {
		return []models.Example{}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(notes), &doc); err != nil || doc == nil {
		return []models.Example{}
	}

	if raw, ok := doc["examples"]; ok {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err == nil {
			examples := make([]models.Example, 0, len(items))
			for _, item := range items {
				var fields map[string]json.RawMessage
				if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
					continue
				}
				ex := exampleFromFields(fields, "danish", "example_da", "english", "example_en")
				if !ex.IsEmpty() {
					examples = append(examples, ex)
				}
			}
			if len(examples) > 0 {
				return examples
			}
		}
	}

	ex := exampleFromFields(doc, "example_da", "danish", "example_en", "english")
	if ex.IsEmpty() {
		return []models.Example{}
	}
	return []models.Example{ex}
}

// EncodeExamples always writes the canonical list shape.
func EncodeExamples(examples []models.Example) string {
	if examples == nil {
		examples = []models.Example{}
	}
	data, err := json.Marshal(notesDocument{Examples: examples})
	if err != nil {
		return `{"examples":[]}`
	}
	return string(data)
}

func exampleFromFields(fields map[string]json.RawMessage, daKey, daAlt, enKey, enAlt string) models.Example {
	return models.Example{
		Danish:  firstString(fields, daKey, daAlt),
		English: firstString(fields, enKey, enAlt),
	}
}

// firstString returns the first key whose value is a non-empty string after
// trimming. Non-string values count as empty.
func firstString(fields map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}
