package network

import (
	"context"
	"fmt"
	"sync"

	"github.com/polygraph-app/backend/internal/util"
	"github.com/polygraph-app/backend/pkg/ai"
	"github.com/polygraph-app/backend/pkg/logger"
	"github.com/polygraph-app/backend/pkg/newsfeed"

	"golang.org/x/sync/errgroup"
)

// Builder runs the full network construction pipeline: chunk each document,
// extract raw fragments per chunk, accumulate across all documents, then
// normalize in a single batch pass.
//
// A Builder should be created using NewBuilder.
type Builder struct {
	tokenEncoder   string
	maxChunkTokens int
	parallelDocs   int
	maxRetries     int

	normalizer *Normalizer
}

// NewBuilderParams defines the configuration parameters for creating a
// Builder.
//
// TokenEncoder names the tiktoken encoding used for chunk sizing.
// ParallelDocs caps how many documents are processed concurrently.
// Resolver may be nil to use the built-in alias table.
type NewBuilderParams struct {
	TokenEncoder   string
	MaxChunkTokens int
	ParallelDocs   int
	MaxRetries     int
	Resolver       *Resolver
}

// NewBuilder creates and returns a Builder configured with the provided
// parameters.
func NewBuilder(params NewBuilderParams) *Builder {
	encoder := params.TokenEncoder
	if encoder == "" {
		encoder = "cl100k_base"
	}
	maxChunkTokens := params.MaxChunkTokens
	if maxChunkTokens <= 0 {
		maxChunkTokens = 2400
	}
	parallelDocs := params.ParallelDocs
	if parallelDocs <= 0 {
		parallelDocs = 4
	}
	maxRetries := params.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	return &Builder{
		tokenEncoder:   encoder,
		maxChunkTokens: maxChunkTokens,
		parallelDocs:   parallelDocs,
		maxRetries:     maxRetries,
		normalizer:     NewNormalizer(params.Resolver),
	}
}

// BuildNetwork extracts raw fragments from every document in parallel and
// normalizes the accumulated set. Failed chunks are logged and skipped so a
// flaky model response degrades the graph instead of aborting the run; the
// caller inspects the returned network for emptiness.
func (b *Builder) BuildNetwork(
	ctx context.Context,
	subject string,
	docs []newsfeed.Document,
	client ai.Client,
	englishOnly bool,
) (Network, error) {
	logger.Info("[Network] Processing", "subject", subject, "documents", len(docs))

	var (
		mu        sync.Mutex
		entities  []RawEntity
		relations []RawRelationship
	)

	eg, gCtx := errgroup.WithContext(ctx)
	eg.SetLimit(b.parallelDocs)

	for _, doc := range docs {
		eg.Go(func() error {
			select {
			case <-gCtx.Done():
				return nil
			default:
			}

			chunks, err := chunkText(doc.Text, b.tokenEncoder, b.maxChunkTokens)
			if err != nil {
				return fmt.Errorf("failed to chunk document %s: %w", doc.ID, err)
			}

			for _, chunk := range chunks {
				e, r, err := util.Retry2WithContext(gCtx, b.maxRetries,
					func(ctx context.Context) ([]RawEntity, []RawRelationship, error) {
						return extractFromChunk(ctx, subject, chunk, client)
					})
				if err != nil {
					logger.Warn("[Network] Skipping chunk after failed extraction",
						"document", doc.ID, "err", err)
					continue
				}

				mu.Lock()
				entities = append(entities, e...)
				relations = append(relations, r...)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return Network{}, fmt.Errorf("failed to process documents: %w", err)
	}

	logger.Info("[Network] Extraction completed",
		"raw_entities", len(entities), "raw_relationships", len(relations))

	net := b.normalizer.Normalize(entities, relations, englishOnly)

	logger.Info("[Network] Normalization completed",
		"entities", len(net.Entities), "relationships", len(net.Relationships))

	return net, nil
}
