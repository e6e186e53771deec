package newsfeed

import (
	"context"
	"fmt"

	"github.com/polygraph-app/backend/pkg/logger"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/sync/errgroup"
)

// Article is one news search hit, as reported by the GDELT artlist API.
type Article struct {
	URL           string `json:"url"`
	Title         string `json:"title"`
	SeenDate      string `json:"seendate"`
	Language      string `json:"language"`
	SourceCountry string `json:"sourcecountry"`
}

// Document is an article together with its extracted page text, ready for
// chunking and extraction.
type Document struct {
	ID      string  `json:"id"`
	Article Article `json:"article"`
	Text    string  `json:"text"`
}

// FetchDocuments searches news coverage for the query and loads the page text
// of every hit in parallel. Articles whose pages cannot be fetched or yield
// no readable text are logged and skipped; a failed search yields an empty
// slice, never an error. Downstream treats "no documents" as the not-found
// condition.
func FetchDocuments(
	ctx context.Context,
	search *GDELTClient,
	loader *ArticleLoader,
	query string,
	maxArticles int,
) []Document {
	articles, err := search.Search(ctx, query, maxArticles)
	if err != nil {
		logger.Error("[Newsfeed] Search failed", "query", query, "err", err)
		return nil
	}

	logger.Info("[Newsfeed] Search completed", "query", query, "articles", len(articles))

	docs := make([]Document, 0, len(articles))
	eg, gCtx := errgroup.WithContext(ctx)
	eg.SetLimit(4)
	results := make([]*Document, len(articles))

	for i, article := range articles {
		eg.Go(func() error {
			text, err := loader.GetText(gCtx, article.URL)
			if err != nil {
				logger.Warn("[Newsfeed] Skipping article", "url", article.URL, "err", err)
				return nil
			}
			if text == "" {
				return nil
			}
			id, err := gonanoid.New()
			if err != nil {
				return fmt.Errorf("failed to generate document ID: %w", err)
			}
			results[i] = &Document{ID: id, Article: article, Text: text}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		logger.Error("[Newsfeed] Document loading failed", "err", err)
		return nil
	}

	for _, doc := range results {
		if doc != nil {
			docs = append(docs, *doc)
		}
	}
	return docs
}
