package routes

import (
	"net/http"

	"github.com/polygraph-app/backend/internal/server/middleware"
	"github.com/polygraph-app/backend/pkg/logger"
	"github.com/polygraph-app/backend/pkg/network"
	"github.com/polygraph-app/backend/pkg/scenario"

	"github.com/labstack/echo/v4"
)

// NetworkInsightsHandler generates short narrative observations about a
// previously built network. The client sends the graph back so the server
// stays stateless.
func NetworkInsightsHandler(c echo.Context) error {
	type insightsBody struct {
		Leader        string                 `json:"leader" validate:"required"`
		Entities      []network.Entity       `json:"entities" validate:"required"`
		Relationships []network.Relationship `json:"relationships"`
	}

	type insightsResponse struct {
		Message  string   `json:"message"`
		Insights []string `json:"insights,omitempty"`
	}

	data := new(insightsBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, insightsResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, insightsResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	net := network.Network{
		Entities:      data.Entities,
		Relationships: data.Relationships,
	}

	insights, err := scenario.Insights(ctx, app.AiClient, data.Leader, net)
	if err != nil {
		logger.Error("[Insights] Generation failed", "leader", data.Leader, "err", err)
		return c.JSON(http.StatusInternalServerError, insightsResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, insightsResponse{
		Message:  "Insights generated successfully",
		Insights: insights,
	})
}
