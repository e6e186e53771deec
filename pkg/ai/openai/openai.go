package openai

import (
	"sync"

	"github.com/polygraph-app/backend/pkg/ai"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Client talks to an OpenAI-compatible chat completion endpoint. It uses one
// model for structured extraction calls and another for free-text analysis
// calls, which are typically cheaper/larger respectively.
//
// A Client should be created using NewClient.
type Client struct {
	extractModel  string
	analysisModel string

	baseURL string
	apiKey  string

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	ChatClient *openai.Client
}

// NewClientParams defines the configuration parameters for creating a Client.
//
// ExtractModel is used for schema-constrained extraction requests,
// AnalysisModel for free-text completions. BaseURL may point at any
// OpenAI-compatible endpoint; empty selects the default API.
type NewClientParams struct {
	ExtractModel  string
	AnalysisModel string

	BaseURL string
	APIKey  string
}

// NewClient creates and returns a Client configured with the provided
// parameters.
//
// Example:
//
//	client := openai.NewClient(openai.NewClientParams{
//		ExtractModel:  "gpt-4o-mini",
//		AnalysisModel: "gpt-4o",
//		APIKey:        os.Getenv("AI_CHAT_KEY"),
//	})
func NewClient(params NewClientParams) *Client {
	options := []option.RequestOption{
		option.WithAPIKey(params.APIKey),
	}
	if params.BaseURL != "" {
		options = append(options, option.WithBaseURL(params.BaseURL))
	}
	chatClient := openai.NewClient(options...)

	return &Client{
		extractModel:  params.ExtractModel,
		analysisModel: params.AnalysisModel,

		baseURL: params.BaseURL,
		apiKey:  params.APIKey,

		ChatClient: &chatClient,
	}
}

func (c *Client) modifyMetrics(m ai.ModelMetrics) {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()

	c.metrics.InputTokens += m.InputTokens
	c.metrics.OutputTokens += m.OutputTokens
	c.metrics.TotalTokens += m.TotalTokens
	c.metrics.DurationMs += m.DurationMs
}

// ResetMetrics clears the accumulated usage metrics.
func (c *Client) ResetMetrics() {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()
	c.metrics = ai.ModelMetrics{}
}

// GetMetrics returns the usage metrics accumulated since the last reset.
func (c *Client) GetMetrics() ai.ModelMetrics {
	c.metricsLock.Lock()
	defer c.metricsLock.Unlock()
	return c.metrics
}
