package newsfeed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"codeberg.org/readeck/go-readability/v2"
	"golang.org/x/net/html"
	"golang.org/x/sync/singleflight"
)

// ArticleLoader fetches article pages and extracts their readable text.
// Readability extraction is tried first; pages it cannot parse fall back to
// plain tag stripping. Results are cached per URL and concurrent fetches of
// the same URL are collapsed.
type ArticleLoader struct {
	httpClient *http.Client

	cache   map[string]string
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewArticleLoader creates an ArticleLoader with an empty cache.
func NewArticleLoader() *ArticleLoader {
	return &ArticleLoader{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      make(map[string]string),
	}
}

// GetText fetches a page and returns its main text content.
func (l *ArticleLoader) GetText(ctx context.Context, pageURL string) (string, error) {
	l.cacheMu.RLock()
	if cached, ok := l.cache[pageURL]; ok {
		l.cacheMu.RUnlock()
		return cached, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.group.Do(pageURL, func() (any, error) {
		l.cacheMu.RLock()
		if cached, ok := l.cache[pageURL]; ok {
			l.cacheMu.RUnlock()
			return cached, nil
		}
		l.cacheMu.RUnlock()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := l.httpClient.Do(req)
		if err != nil {
			return "", fmt.Errorf("failed to fetch url: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("page returned status %d", resp.StatusCode)
		}

		contentType := resp.Header.Get("Content-Type")
		if !strings.Contains(contentType, "text/html") && !strings.Contains(contentType, "text/plain") && contentType != "" {
			return "", fmt.Errorf("unsupported content type %q", contentType)
		}

		u, err := url.Parse(pageURL)
		if err != nil {
			return "", fmt.Errorf("failed to parse url: %w", err)
		}

		article, err := readability.FromReader(resp.Body, u)
		if err == nil {
			var builder strings.Builder
			if err := article.RenderText(&builder); err == nil {
				text := strings.TrimSpace(builder.String())
				if text != "" {
					l.store(pageURL, text)
					return text, nil
				}
			}
		}

		// Readability gave up on the page layout; refetch and strip tags.
		req2, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}
		resp2, err := l.httpClient.Do(req2)
		if err != nil {
			return "", fmt.Errorf("failed to refetch url: %w", err)
		}
		defer resp2.Body.Close()

		text := stripTags(resp2)
		l.store(pageURL, text)
		return text, nil
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil
}

func (l *ArticleLoader) store(pageURL, text string) {
	l.cacheMu.Lock()
	l.cache[pageURL] = text
	l.cacheMu.Unlock()
}

// stripTags renders an HTML response as whitespace-joined text, skipping
// script and style content.
func stripTags(resp *http.Response) string {
	tokenizer := html.NewTokenizer(resp.Body)
	var parts []string
	skipDepth := 0

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			return strings.Join(parts, " ")
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); (tag == "script" || tag == "style") && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			if text := strings.TrimSpace(string(tokenizer.Text())); text != "" {
				parts = append(parts, text)
			}
		}
	}
}
