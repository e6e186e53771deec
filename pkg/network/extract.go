package network

import (
	"context"
	"fmt"
	"strings"

	"github.com/polygraph-app/backend/pkg/ai"
)

var defaultEntityTypes = []string{
	"person", "organization", "country", "government_body",
	"political_party", "movement", "event",
}

type extractEntity struct {
	Name string `json:"name" jsonschema_description:"Name of the entity exactly as it appears in the text, original script preserved"`
	Type string `json:"type" jsonschema_description:"One of the provided entity types"`
	Role string `json:"role" jsonschema_description:"One short sentence describing the entity's role in the described events"`
}

type extractRelationship struct {
	Source      string  `json:"source" jsonschema_description:"Name of the source entity, spelled exactly as reported in entities"`
	Target      string  `json:"target" jsonschema_description:"Name of the target entity, spelled exactly as reported in entities"`
	Type        string  `json:"type" jsonschema_description:"Relationship category such as ally, rival, adviser, family, successor, negotiation"`
	Sentiment   string  `json:"sentiment" jsonschema_description:"One of positive, neutral or negative"`
	Strength    float64 `json:"strength" jsonschema_description:"Relationship strength from 1 (passing mention) to 5 (central tie)"`
	Description string  `json:"description" jsonschema_description:"One sentence explaining why the two entities are related"`
}

type extractResponse struct {
	Entities      []extractEntity       `json:"entities" jsonschema_description:"Political entities identified in the text"`
	Relationships []extractRelationship `json:"relationships" jsonschema_description:"Relationships between the identified entities"`
}

// extractFromChunk asks the extraction model for the entities and
// relationships mentioned in one chunk of article text. The response is raw
// material for the normalizer; no deduplication or validation happens here
// beyond what the JSON schema enforces.
func extractFromChunk(
	ctx context.Context,
	subject string,
	chunk string,
	client ai.Client,
) ([]RawEntity, []RawRelationship, error) {
	types := strings.Join(defaultEntityTypes, ",")
	systemPrompt := fmt.Sprintf(ai.ExtractPrompt, subject, types, types)

	var res extractResponse
	err := client.GenerateCompletionWithFormat(
		ctx,
		"extract_entities_and_relationships",
		"Extract political entities and relationships from a news text fragment.",
		chunk,
		&res,
		ai.WithSystemPrompts(systemPrompt),
	)
	if err != nil {
		return nil, nil, err
	}

	entities := make([]RawEntity, 0, len(res.Entities))
	for _, e := range res.Entities {
		entities = append(entities, RawEntity{
			Name: e.Name,
			Type: e.Type,
			Role: e.Role,
		})
	}

	relations := make([]RawRelationship, 0, len(res.Relationships))
	for _, r := range res.Relationships {
		relations = append(relations, RawRelationship{
			Source:      r.Source,
			Target:      r.Target,
			Type:        r.Type,
			Sentiment:   r.Sentiment,
			Strength:    r.Strength,
			Description: r.Description,
		})
	}

	return entities, relations, nil
}
