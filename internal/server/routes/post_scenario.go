package routes

import (
	"net/http"

	"github.com/polygraph-app/backend/internal/server/middleware"
	"github.com/polygraph-app/backend/pkg/logger"
	"github.com/polygraph-app/backend/pkg/network"
	"github.com/polygraph-app/backend/pkg/scenario"

	"github.com/labstack/echo/v4"
)

// ScenarioHandler answers a "what if" question about the network and returns
// the response broken into structured sections.
func ScenarioHandler(c echo.Context) error {
	type scenarioBody struct {
		Leader        string                 `json:"leader" validate:"required"`
		Question      string                 `json:"question" validate:"required"`
		Entities      []network.Entity       `json:"entities" validate:"required"`
		Relationships []network.Relationship `json:"relationships"`
	}

	type scenarioResponse struct {
		Message  string             `json:"message"`
		Analysis *scenario.Analysis `json:"analysis,omitempty"`
	}

	data := new(scenarioBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, scenarioResponse{
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, scenarioResponse{
			Message: "Invalid request body",
		})
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	net := network.Network{
		Entities:      data.Entities,
		Relationships: data.Relationships,
	}

	analysis, err := scenario.Analyze(ctx, app.AiClient, data.Leader, data.Question, net)
	if err != nil {
		logger.Error("[Scenario] Analysis failed", "leader", data.Leader, "err", err)
		return c.JSON(http.StatusInternalServerError, scenarioResponse{
			Message: "Internal server error",
		})
	}

	return c.JSON(http.StatusOK, scenarioResponse{
		Message:  "Scenario analyzed successfully",
		Analysis: &analysis,
	})
}
