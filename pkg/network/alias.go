package network

import (
	"strings"
	"unicode/utf8"
)

// AliasTable maps a lowercase surface form of an entity name to its canonical
// lowercase name. Tables are treated as immutable once handed to a Resolver.
type AliasTable map[string]string

// Resolver maps arbitrary surface forms of entity names to a single canonical
// lowercase name. Lookup is exact-match against the alias table first, then a
// short list of substring heuristics for high-profile names, then the
// lowercased input itself.
//
// Canonical is deterministic and side-effect-free; its output is used as a
// map key during normalization.
type Resolver struct {
	aliases AliasTable
}

// NewResolver creates a Resolver backed by the given alias table. A nil table
// selects the built-in multilingual table. Tests can pass a small table to
// exercise resolution without the full dataset.
func NewResolver(aliases AliasTable) *Resolver {
	if aliases == nil {
		aliases = defaultAliases
	}
	return &Resolver{aliases: aliases}
}

// Canonical returns the canonical lowercase name for an arbitrary surface
// form. Empty input stays empty.
func (r *Resolver) Canonical(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return ""
	}

	if canonical, ok := r.aliases[key]; ok {
		return canonical
	}

	// Substring heuristics, first match wins. These are known to misfire on
	// unrelated short strings (e.g. the "xi" check); the exact behavior is
	// load-bearing for merging noisy multi-language extractions.
	switch {
	case strings.Contains(key, "putin"):
		return "vladimir putin"
	case strings.Contains(key, "trump") &&
		!strings.Contains(key, "ivanka") &&
		!strings.Contains(key, "junior") &&
		!strings.Contains(key, "jr"):
		return "donald trump"
	case (strings.Contains(key, "biden") || strings.Contains(key, "bidden")) &&
		!strings.Contains(key, "hunter"):
		return "joe biden"
	case strings.Contains(key, "zelensky") || strings.Contains(key, "zelenskyy"):
		return "volodymyr zelensky"
	case strings.Contains(key, "jinping"),
		strings.Contains(key, "xi") && utf8.RuneCountInString(key) < 15:
		return "xi jinping"
	}

	return key
}
