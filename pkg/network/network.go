package network

// RawEntity is an entity fragment as returned by the extraction model for a
// single document chunk. Fields other than Name may be empty and are
// defaulted during normalization. Fragments with an empty Name are dropped.
type RawEntity struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
	Role string `json:"role,omitempty"`
}

// RawRelationship is a relationship fragment as returned by the extraction
// model. Source and Target are free-text entity names in whatever script the
// source document used. Fragments missing either endpoint are dropped.
type RawRelationship struct {
	Source      string  `json:"source"`
	Target      string  `json:"target"`
	Type        string  `json:"type,omitempty"`
	Sentiment   string  `json:"sentiment,omitempty"`
	Strength    float64 `json:"strength,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Entity is a canonical node in the normalized network. Name is the canonical
// lowercase form, OriginalNames the deduplicated set of lowercased surface
// forms that collapsed onto it.
type Entity struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Role          string   `json:"role"`
	OriginalNames []string `json:"original_names"`
}

// Relationship is a canonical edge in the normalized network. Source and
// Target reference canonical entity names; SourceOriginal and TargetOriginal
// keep the surface forms the extraction produced. IsFallback marks synthetic
// edges inserted during connectivity repair.
type Relationship struct {
	Source         string  `json:"source"`
	Target         string  `json:"target"`
	SourceOriginal string  `json:"source_original"`
	TargetOriginal string  `json:"target_original"`
	Type           string  `json:"type"`
	Sentiment      string  `json:"sentiment"`
	Strength       float64 `json:"strength"`
	Description    string  `json:"description"`
	IsFallback     bool    `json:"is_fallback,omitempty"`
}

// Network is the normalized entity/relationship graph handed to the
// presentation layer.
type Network struct {
	Entities      []Entity       `json:"entities"`
	Relationships []Relationship `json:"relationships"`
}

// Defaults applied to fields the extraction left empty.
const (
	DefaultEntityType = "person"
	DefaultEntityRole = "Unknown"
)
