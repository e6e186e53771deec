package scenario

import "strings"

// Placeholder substitutes sections the model response did not contain.
const Placeholder = "Not available"

// EntityImpact is one parsed line of the "Key Entities Affected" section.
type EntityImpact struct {
	Name   string `json:"name"`
	Impact string `json:"impact"`
}

// RelationshipChange is one parsed line of the "Key Relationships Affected"
// section.
type RelationshipChange struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Change string `json:"change"`
}

// Analysis is the structured form of a free-text scenario answer. Every field
// is always populated: string sections fall back to Placeholder, list
// sections to empty slices, and FullAnalysis keeps the raw response.
type Analysis struct {
	Summary           string               `json:"summary"`
	NetworkImpact     string               `json:"network_impact"`
	PoliticalOutcomes string               `json:"political_outcomes"`
	KeyEntities       []EntityImpact       `json:"key_entities"`
	KeyRelationships  []RelationshipChange `json:"key_relationships"`
	FullAnalysis      string               `json:"full_analysis"`
}

// Section headers the model is instructed to emit, in prompt order. Parsing
// scans line-by-line for these prefixes; anything before the first known
// header is ignored.
var sectionHeaders = []string{
	"Summary:",
	"Network Impact:",
	"Political Outcomes:",
	"Key Entities Affected:",
	"Key Relationships Affected:",
}

// Parse splits a free-text scenario answer into labeled sections and parses
// the entity/relationship list sections into structured records. It tolerates
// arbitrary garbage: a response with no recognizable headers produces an
// Analysis of placeholders, never an error.
func Parse(raw string) Analysis {
	sections := make(map[string]string, len(sectionHeaders))

	current := ""
	var buf strings.Builder
	flush := func() {
		if current != "" {
			sections[current] = strings.TrimSpace(buf.String())
		}
		buf.Reset()
	}

	for line := range strings.Lines(raw) {
		trimmed := strings.TrimSpace(line)
		matched := false
		for _, header := range sectionHeaders {
			if strings.HasPrefix(trimmed, header) {
				flush()
				current = header
				buf.WriteString(strings.TrimSpace(strings.TrimPrefix(trimmed, header)))
				buf.WriteString("\n")
				matched = true
				break
			}
		}
		if !matched && current != "" {
			buf.WriteString(line)
		}
	}
	flush()

	text := func(header string) string {
		if s := sections[header]; s != "" {
			return s
		}
		return Placeholder
	}

	return Analysis{
		Summary:           text("Summary:"),
		NetworkImpact:     text("Network Impact:"),
		PoliticalOutcomes: text("Political Outcomes:"),
		KeyEntities:       parseEntityLines(sections["Key Entities Affected:"]),
		KeyRelationships:  parseRelationshipLines(sections["Key Relationships Affected:"]),
		FullAnalysis:      strings.TrimSpace(raw),
	}
}

// stripBullet removes one leading list marker so "- name: impact" and
// "* name: impact" parse like plain lines.
func stripBullet(line string) string {
	for _, marker := range []string{"- ", "* ", "• "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker))
		}
	}
	return line
}

// parseEntityLines matches "name: impact" per non-blank line. Lines without a
// colon-delimited name are dropped.
func parseEntityLines(section string) []EntityImpact {
	entities := []EntityImpact{}
	for line := range strings.Lines(section) {
		line = stripBullet(strings.TrimSpace(line))
		if line == "" {
			continue
		}
		name, impact, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			continue
		}
		entities = append(entities, EntityImpact{
			Name:   name,
			Impact: strings.TrimSpace(impact),
		})
	}
	return entities
}

// Separator styles accepted between the two entity names of a relationship
// line, tried in order.
var relationshipSeparators = []string{"→", "->", " - ", " and "}

// parseRelationshipLines matches "source SEP target: change" per non-blank
// line, where SEP is an arrow, a hyphen, or the word "and". Lines matching no
// pattern are dropped.
func parseRelationshipLines(section string) []RelationshipChange {
	relationships := []RelationshipChange{}
	for line := range strings.Lines(section) {
		line = stripBullet(strings.TrimSpace(line))
		if line == "" {
			continue
		}
		pair, change, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		for _, sep := range relationshipSeparators {
			source, target, found := strings.Cut(pair, sep)
			source = strings.TrimSpace(source)
			target = strings.TrimSpace(target)
			if !found || source == "" || target == "" {
				continue
			}
			relationships = append(relationships, RelationshipChange{
				Source: source,
				Target: target,
				Change: strings.TrimSpace(change),
			})
			break
		}
	}
	return relationships
}
