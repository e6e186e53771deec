package routes

import (
	"net/http"

	"github.com/polygraph-app/backend/internal/server/middleware"
	"github.com/polygraph-app/backend/internal/util"
	"github.com/polygraph-app/backend/pkg/ai"
	"github.com/polygraph-app/backend/pkg/logger"
	"github.com/polygraph-app/backend/pkg/network"
	"github.com/polygraph-app/backend/pkg/newsfeed"

	"github.com/labstack/echo/v4"
)


// BuildNetworkHandler fetches news coverage for a leader, extracts the
// political network from it, and returns the normalized graph.
func BuildNetworkHandler(c echo.Context) error {
	type buildNetworkBody struct {
		Leader      string `json:"leader" validate:"required"`
		EnglishOnly *bool  `json:"english_only"`
		MaxArticles int    `json:"max_articles"`
	}

	type buildNetworkResponse struct {
		Message       string                 `json:"message"`
		Leader        string                 `json:"leader,omitempty"`
		Entities      []network.Entity       `json:"entities,omitempty"`
		Relationships []network.Relationship `json:"relationships,omitempty"`
		Metrics       *ai.ModelMetrics       `json:"metrics,omitempty"`
	}

	data := new(buildNetworkBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, buildNetworkResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, buildNetworkResponse{
			Message: "Invalid request body",
		})
	}

	// Web-search coverage is multi-language noise; filtering defaults on and
	// callers opt out explicitly.
	englishOnly := true
	if data.EnglishOnly != nil {
		englishOnly = *data.EnglishOnly
	}

	maxArticles := data.MaxArticles
	if maxArticles <= 0 {
		maxArticles = 12
	}
	if limit := util.GetEnvInt("PIPELINE_MAX_ARTICLES", 30); maxArticles > limit {
		maxArticles = limit
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	docs := newsfeed.FetchDocuments(ctx, app.Search, app.Articles, data.Leader, maxArticles)
	if len(docs) == 0 {
		return c.JSON(http.StatusNotFound, buildNetworkResponse{
			Message: "No news coverage found for this leader",
		})
	}

	app.AiClient.ResetMetrics()
	net, err := app.Builder.BuildNetwork(ctx, data.Leader, docs, app.AiClient, englishOnly)
	if err != nil {
		logger.Error("[Network] Build failed", "leader", data.Leader, "err", err)
		return c.JSON(http.StatusInternalServerError, buildNetworkResponse{
			Message: "Internal server error",
		})
	}

	if len(net.Entities) == 0 {
		return c.JSON(http.StatusNotFound, buildNetworkResponse{
			Message: "No network data found for this leader",
		})
	}

	metrics := app.AiClient.GetMetrics()
	return c.JSON(http.StatusOK, buildNetworkResponse{
		Message:       "Network built successfully",
		Leader:        data.Leader,
		Entities:      net.Entities,
		Relationships: net.Relationships,
		Metrics:       &metrics,
	})
}
