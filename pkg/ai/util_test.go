package ai

import (
	"testing"
)

func TestUnmarshalFlexible(t *testing.T) {
	type entity struct {
		Name string `json:"name"`
		Type string `json:"type,omitempty"`
	}

	tests := []struct {
		name  string
		input string
		want  entity
	}{
		{
			name:  "valid json object",
			input: `{"name":"vladimir putin","type":"person"}`,
			want:  entity{Name: "vladimir putin", Type: "person"},
		},
		{
			name:  "unquoted key and single quotes",
			input: `{name: 'vladimir putin'}`,
			want:  entity{Name: "vladimir putin"},
		},
		{
			name:  "trailing comma",
			input: `{"name":"vladimir putin",}`,
			want:  entity{Name: "vladimir putin"},
		},
		{
			name:  "missing end bracket",
			input: `{"name":"vladimir putin"`,
			want:  entity{Name: "vladimir putin"},
		},
		{
			name:  "double-encoded json string",
			input: `"{\"name\":\"vladimir putin\"}"`,
			want:  entity{Name: "vladimir putin"},
		},
		{
			name:  "stringified invalid json",
			input: `"{name: 'vladimir putin'}"`,
			want:  entity{Name: "vladimir putin"},
		},
		{
			name:  "duplicate leading brace",
			input: "{\n{\n  \"name\": \"vladimir putin\"\n}\n",
			want:  entity{Name: "vladimir putin"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got entity
			if err := UnmarshalFlexible(tc.input, &got); err != nil {
				t.Fatalf("UnmarshalFlexible() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("UnmarshalFlexible() got = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestUnmarshalFlexibleArray(t *testing.T) {
	type relationship struct {
		Source string `json:"source"`
		Target string `json:"target"`
	}

	input := `[{source:'putin',target:'lavrov'},{source:'putin',target:'medvedev',}]`
	var got []relationship
	if err := UnmarshalFlexible(input, &got); err != nil {
		t.Fatalf("UnmarshalFlexible() error = %v", err)
	}
	if len(got) != 2 || got[0].Target != "lavrov" || got[1].Target != "medvedev" {
		t.Fatalf("UnmarshalFlexible() got = %+v", got)
	}
}

func TestUnmarshalFlexibleUnrecoverable(t *testing.T) {
	type entity struct {
		Name string `json:"name"`
	}

	var got entity
	if err := UnmarshalFlexible("the model refused to answer", &got); err == nil {
		t.Fatal("UnmarshalFlexible() expected error for unrecoverable input")
	}
}

func TestGenerateSchema(t *testing.T) {
	type payload struct {
		Entities []struct {
			Name string `json:"name" jsonschema_description:"Entity name"`
		} `json:"entities"`
	}

	schema := GenerateSchema(payload{})
	if schema == nil {
		t.Fatal("GenerateSchema() returned nil")
	}

	// Pointer and value inputs produce the same schema shape.
	if GenerateSchema(&payload{}) == nil {
		t.Fatal("GenerateSchema() returned nil for pointer input")
	}
}
