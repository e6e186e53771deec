package server

import (
	"github.com/polygraph-app/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Network routes
	apiRoutes.POST("/network", routes.BuildNetworkHandler)
	apiRoutes.POST("/network/insights", routes.NetworkInsightsHandler)

	// Scenario routes
	apiRoutes.POST("/scenario", routes.ScenarioHandler)
}
