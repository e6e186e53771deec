package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/polygraph-app/backend/pkg/ai"
	"github.com/polygraph-app/backend/pkg/network"
	"github.com/polygraph-app/backend/pkg/newsfeed"
)

// App bundles the long-lived collaborators handlers need: the AI client, the
// news search client, the article loader and the network builder.
type App struct {
	AiClient ai.Client
	Search   *newsfeed.GDELTClient
	Articles *newsfeed.ArticleLoader
	Builder  *network.Builder
}

// AppContext wraps the echo context with the shared application state.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware injects the shared App into every request context.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{c, app})
		}
	}
}
