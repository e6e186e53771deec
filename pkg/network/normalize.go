package network

import (
	"slices"
	"strings"
)

// Normalizer turns raw extraction fragments into a deduplicated, fully
// connected network. It owns no state besides the alias resolver and is safe
// to call repeatedly with different inputs; inputs are never mutated.
type Normalizer struct {
	resolver *Resolver
}

// NewNormalizer creates a Normalizer using the given resolver. A nil resolver
// selects one backed by the built-in alias table.
func NewNormalizer(resolver *Resolver) *Normalizer {
	if resolver == nil {
		resolver = NewResolver(nil)
	}
	return &Normalizer{resolver: resolver}
}

// Normalize merges raw entity and relationship fragments into a canonical
// network:
//
//  1. every name appearing anywhere (entity list or relationship endpoint) is
//     resolved to its canonical form and classified as English-like or not,
//  2. entities collapse onto one record per canonical name, accumulating
//     their distinct surface forms,
//  3. entities that only ever appear as relationship endpoints are
//     materialized with default type and role,
//  4. relationships are rewritten to canonical names (surface forms kept in
//     source_original/target_original) and dropped if an endpoint did not
//     survive filtering,
//  5. entities left without any edge are wired to the highest-degree entity
//     ("hub") through synthetic fallback relationships.
//
// With englishOnly set, fragments whose surface form is non-English are
// dropped unless the alias table resolves them to a known canonical name; in
// that case the record survives under its canonical form and the non-English
// surface form is kept out of original_names.
func (n *Normalizer) Normalize(entities []RawEntity, relationships []RawRelationship, englishOnly bool) Network {
	canonicalOf := make(map[string]string)
	nonEnglish := make(map[string]bool)

	record := func(raw string) (original, canonical string) {
		original = strings.ToLower(strings.TrimSpace(raw))
		if original == "" {
			return "", ""
		}
		if c, ok := canonicalOf[original]; ok {
			return original, c
		}
		canonical = n.resolver.Canonical(raw)
		canonicalOf[original] = canonical
		// Self-mapping keeps a second normalization pass from re-resolving
		// already-canonical names.
		canonicalOf[canonical] = canonical
		if !IsLikelyEnglish(original) {
			nonEnglish[original] = true
		}
		if !IsLikelyEnglish(canonical) {
			nonEnglish[canonical] = true
		}
		return original, canonical
	}

	// A non-English surface form passes the filter only when the alias table
	// rescued it onto a different canonical name.
	passes := func(original, canonical string) bool {
		if !englishOnly || !nonEnglish[original] {
			return true
		}
		return canonical != original
	}

	var order []string
	index := make(map[string]int)
	nodes := make([]Entity, 0, len(entities))

	materialize := func(original, canonical, typ, role string) {
		i, ok := index[canonical]
		if !ok {
			if typ == "" {
				typ = DefaultEntityType
			}
			if role == "" {
				role = DefaultEntityRole
			}
			nodes = append(nodes, Entity{
				Name:          canonical,
				Type:          typ,
				Role:          role,
				OriginalNames: []string{},
			})
			i = len(nodes) - 1
			index[canonical] = i
			order = append(order, canonical)
		}
		surface := original
		if englishOnly && nonEnglish[original] {
			surface = canonical
		}
		if !slices.Contains(nodes[i].OriginalNames, surface) {
			nodes[i].OriginalNames = append(nodes[i].OriginalNames, surface)
		}
	}

	// Raw entity list first, in input order.
	for _, e := range entities {
		original, canonical := record(e.Name)
		if original == "" || !passes(original, canonical) {
			continue
		}
		materialize(original, canonical, e.Type, e.Role)
	}

	// Relationships: drop fragments missing an endpoint, materialize implied
	// entities, rewrite endpoints to canonical names.
	rels := make([]Relationship, 0, len(relationships))
	for _, r := range relationships {
		srcOriginal, srcCanonical := record(r.Source)
		tgtOriginal, tgtCanonical := record(r.Target)
		if srcOriginal == "" || tgtOriginal == "" {
			continue
		}
		if !passes(srcOriginal, srcCanonical) || !passes(tgtOriginal, tgtCanonical) {
			continue
		}

		materialize(srcOriginal, srcCanonical, "", "")
		materialize(tgtOriginal, tgtCanonical, "", "")

		if _, ok := index[srcCanonical]; !ok {
			continue
		}
		if _, ok := index[tgtCanonical]; !ok {
			continue
		}

		typ := r.Type
		if typ == "" {
			typ = "connection"
		}
		sentiment := r.Sentiment
		if sentiment == "" {
			sentiment = "neutral"
		}
		rels = append(rels, Relationship{
			Source:         srcCanonical,
			Target:         tgtCanonical,
			SourceOriginal: srcOriginal,
			TargetOriginal: tgtOriginal,
			Type:           typ,
			Sentiment:      sentiment,
			Strength:       r.Strength,
			Description:    r.Description,
		})
	}

	rels = append(rels, repairConnectivity(order, rels)...)

	return Network{Entities: nodes, Relationships: rels}
}

// repairConnectivity selects a hub entity and returns fallback edges from the
// hub to every entity that no real relationship touches. The hub is the first
// entity in materialization order reaching the maximum degree; with no
// relationships at all it is simply the first entity.
func repairConnectivity(order []string, rels []Relationship) []Relationship {
	if len(order) == 0 {
		return nil
	}

	degree := make(map[string]int, len(order))
	for _, r := range rels {
		degree[r.Source]++
		degree[r.Target]++
	}

	hub := order[0]
	best := degree[hub]
	for _, name := range order[1:] {
		if degree[name] > best {
			hub = name
			best = degree[name]
		}
	}

	var fallback []Relationship
	for _, name := range order {
		if name == hub || degree[name] > 0 {
			continue
		}
		fallback = append(fallback, Relationship{
			Source:         hub,
			Target:         name,
			SourceOriginal: hub,
			TargetOriginal: name,
			Type:           "connection",
			Sentiment:      "neutral",
			Strength:       1,
			Description:    "Connected entities",
			IsFallback:     true,
		})
	}
	return fallback
}
