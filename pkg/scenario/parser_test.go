package scenario

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Analysis
	}{
		{
			name: "empty response",
			raw:  "",
			want: Analysis{
				Summary:           Placeholder,
				NetworkImpact:     Placeholder,
				PoliticalOutcomes: Placeholder,
				KeyEntities:       []EntityImpact{},
				KeyRelationships:  []RelationshipChange{},
				FullAnalysis:      "",
			},
		},
		{
			name: "no recognizable headers",
			raw:  "The model rambled about something else entirely.",
			want: Analysis{
				Summary:           Placeholder,
				NetworkImpact:     Placeholder,
				PoliticalOutcomes: Placeholder,
				KeyEntities:       []EntityImpact{},
				KeyRelationships:  []RelationshipChange{},
				FullAnalysis:      "The model rambled about something else entirely.",
			},
		},
		{
			name: "single section",
			raw:  "Summary: all good",
			want: Analysis{
				Summary:           "all good",
				NetworkImpact:     Placeholder,
				PoliticalOutcomes: Placeholder,
				KeyEntities:       []EntityImpact{},
				KeyRelationships:  []RelationshipChange{},
				FullAnalysis:      "Summary: all good",
			},
		},
		{
			name: "full response",
			raw: `Summary: The coalition fractures.

Network Impact: Two ministers lose their direct line to the leader.

Political Outcomes: Early elections become likely.
Opposition parties gain leverage.

Key Entities Affected:
- Olaf Scholz: weakened authority
- Christian Lindner: exits the government

Key Relationships Affected:
- Olaf Scholz -> Christian Lindner: alliance dissolves
- Olaf Scholz and Annalena Baerbock: cooperation deepens`,
			want: Analysis{
				Summary:           "The coalition fractures.",
				NetworkImpact:     "Two ministers lose their direct line to the leader.",
				PoliticalOutcomes: "Early elections become likely.\nOpposition parties gain leverage.",
				KeyEntities: []EntityImpact{
					{Name: "Olaf Scholz", Impact: "weakened authority"},
					{Name: "Christian Lindner", Impact: "exits the government"},
				},
				KeyRelationships: []RelationshipChange{
					{Source: "Olaf Scholz", Target: "Christian Lindner", Change: "alliance dissolves"},
					{Source: "Olaf Scholz", Target: "Annalena Baerbock", Change: "cooperation deepens"},
				},
				FullAnalysis: `Summary: The coalition fractures.

Network Impact: Two ministers lose their direct line to the leader.

Political Outcomes: Early elections become likely.
Opposition parties gain leverage.

Key Entities Affected:
- Olaf Scholz: weakened authority
- Christian Lindner: exits the government

Key Relationships Affected:
- Olaf Scholz -> Christian Lindner: alliance dissolves
- Olaf Scholz and Annalena Baerbock: cooperation deepens`,
			},
		},
		{
			name: "preamble before first header is ignored",
			raw:  "Sure, here is the analysis.\nSummary: concise answer",
			want: Analysis{
				Summary:           "concise answer",
				NetworkImpact:     Placeholder,
				PoliticalOutcomes: Placeholder,
				KeyEntities:       []EntityImpact{},
				KeyRelationships:  []RelationshipChange{},
				FullAnalysis:      "Sure, here is the analysis.\nSummary: concise answer",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseRelationshipSeparators(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []RelationshipChange
	}{
		{
			name: "unicode arrow",
			line: "Putin → Lavrov: trust erodes",
			want: []RelationshipChange{{Source: "Putin", Target: "Lavrov", Change: "trust erodes"}},
		},
		{
			name: "ascii arrow",
			line: "Putin -> Lavrov: trust erodes",
			want: []RelationshipChange{{Source: "Putin", Target: "Lavrov", Change: "trust erodes"}},
		},
		{
			name: "hyphen",
			line: "Putin - Lavrov: trust erodes",
			want: []RelationshipChange{{Source: "Putin", Target: "Lavrov", Change: "trust erodes"}},
		},
		{
			name: "word and",
			line: "Putin and Lavrov: trust erodes",
			want: []RelationshipChange{{Source: "Putin", Target: "Lavrov", Change: "trust erodes"}},
		},
		{
			name: "bulleted line",
			line: "* Putin -> Lavrov: trust erodes",
			want: []RelationshipChange{{Source: "Putin", Target: "Lavrov", Change: "trust erodes"}},
		},
		{
			name: "no separator",
			line: "Putin alone: nothing changes",
			want: []RelationshipChange{},
		},
		{
			name: "no colon",
			line: "Putin -> Lavrov without a change",
			want: []RelationshipChange{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseRelationshipLines(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseRelationshipLines(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseEntityLines(t *testing.T) {
	section := "- Scholz: loses support\nrandom line without separator\n\n• Lindner: gains visibility\n: missing name"

	got := parseEntityLines(section)
	want := []EntityImpact{
		{Name: "Scholz", Impact: "loses support"},
		{Name: "Lindner", Impact: "gains visibility"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseEntityLines() = %+v, want %+v", got, want)
	}
}
