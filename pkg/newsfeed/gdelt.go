package newsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultGDELTBaseURL is the production GDELT DOC 2.0 endpoint.
const DefaultGDELTBaseURL = "https://api.gdeltproject.org/api/v2/doc/doc"

// GDELTClient queries the GDELT DOC 2.0 artlist API for news articles
// mentioning a subject.
type GDELTClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewGDELTClient creates a GDELT client. An empty baseURL selects the
// production endpoint; tests point it at an httptest server.
func NewGDELTClient(baseURL string) *GDELTClient {
	if baseURL == "" {
		baseURL = DefaultGDELTBaseURL
	}
	return &GDELTClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type artlistResponse struct {
	Articles []Article `json:"articles"`
}

// Search returns up to maxRecords recent articles mentioning the query,
// sorted by hybrid relevance. The query is quoted so multi-word names are
// matched as a phrase.
func (c *GDELTClient) Search(ctx context.Context, query string, maxRecords int) ([]Article, error) {
	if maxRecords <= 0 {
		maxRecords = 12
	}

	params := url.Values{}
	params.Set("query", fmt.Sprintf("%q", query))
	params.Set("mode", "artlist")
	params.Set("format", "json")
	params.Set("maxrecords", strconv.Itoa(maxRecords))
	params.Set("sort", "hybridrel")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query gdelt: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gdelt returned status %d", resp.StatusCode)
	}

	var body artlistResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode gdelt response: %w", err)
	}

	return body.Articles, nil
}
