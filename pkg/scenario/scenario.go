package scenario

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/polygraph-app/backend/pkg/ai"
	"github.com/polygraph-app/backend/pkg/network"
)

// entityDigest renders the network's entities as prompt background, one line
// per entity.
func entityDigest(net network.Network) string {
	var b strings.Builder
	for _, e := range net.Entities {
		fmt.Fprintf(&b, "- %s (%s): %s\n", e.Name, e.Type, e.Role)
	}
	return b.String()
}

// relationshipDigest renders the network's real edges as prompt background,
// strongest ties first. Fallback edges carry no information and are skipped.
func relationshipDigest(net network.Network) string {
	rels := make([]network.Relationship, 0, len(net.Relationships))
	for _, r := range net.Relationships {
		if !r.IsFallback {
			rels = append(rels, r)
		}
	}
	sort.SliceStable(rels, func(i, j int) bool {
		return rels[i].Strength > rels[j].Strength
	})

	var b strings.Builder
	for _, r := range rels {
		fmt.Fprintf(&b, "- %s -> %s (%s, %s, strength %.0f): %s\n",
			r.Source, r.Target, r.Type, r.Sentiment, r.Strength, r.Description)
	}
	return b.String()
}

// Analyze asks the analysis model what the given scenario would do to the
// network and parses the answer into labeled sections. A malformed model
// answer degrades into placeholder sections, not an error; an error is only
// returned when the model call itself fails.
func Analyze(
	ctx context.Context,
	client ai.Client,
	subject string,
	question string,
	net network.Network,
) (Analysis, error) {
	prompt := fmt.Sprintf(ai.ScenarioPrompt,
		subject, entityDigest(net), relationshipDigest(net), question)

	res, err := client.GenerateCompletion(ctx, prompt, ai.WithTemperature(0.5))
	if err != nil {
		return Analysis{}, fmt.Errorf("scenario analysis failed: %w", err)
	}

	return Parse(res), nil
}

// Insights asks the analysis model for observations about the network and
// returns them as one string per insight. An unusable answer yields an empty
// slice.
func Insights(
	ctx context.Context,
	client ai.Client,
	subject string,
	net network.Network,
) ([]string, error) {
	prompt := fmt.Sprintf(ai.InsightPrompt,
		subject, entityDigest(net), relationshipDigest(net))

	res, err := client.GenerateCompletion(ctx, prompt, ai.WithTemperature(0.5))
	if err != nil {
		return nil, fmt.Errorf("insight generation failed: %w", err)
	}

	insights := []string{}
	for line := range strings.Lines(res) {
		line = stripBullet(strings.TrimSpace(line))
		if line != "" {
			insights = append(insights, line)
		}
	}
	return insights, nil
}
