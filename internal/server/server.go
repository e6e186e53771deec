package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "github.com/polygraph-app/backend/internal/server/middleware"
	"github.com/polygraph-app/backend/internal/util"
	"github.com/polygraph-app/backend/pkg/ai"
	oai "github.com/polygraph-app/backend/pkg/ai/ollama"
	gai "github.com/polygraph-app/backend/pkg/ai/openai"
	"github.com/polygraph-app/backend/pkg/logger"
	"github.com/polygraph-app/backend/pkg/network"
	"github.com/polygraph-app/backend/pkg/newsfeed"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func newAIClient() ai.Client {
	switch util.GetEnv("AI_ADAPTER") {
	case "ollama":
		client, err := oai.NewClient(oai.NewClientParams{
			ExtractModel:  util.GetEnv("AI_EXTRACT_MODEL"),
			AnalysisModel: util.GetEnv("AI_ANALYSIS_MODEL"),

			BaseURL: util.GetEnv("AI_CHAT_URL"),
			APIKey:  util.GetEnv("AI_CHAT_KEY"),

			MaxConcurrentRequests: int64(util.GetEnvInt("AI_PARALLEL_REQ", 15)),
		})
		if err != nil {
			logger.Fatal("Failed to create Ollama client", "err", err)
		}
		return client
	default:
		return gai.NewClient(gai.NewClientParams{
			ExtractModel:  util.GetEnv("AI_EXTRACT_MODEL"),
			AnalysisModel: util.GetEnv("AI_ANALYSIS_MODEL"),

			BaseURL: util.GetEnv("AI_CHAT_URL"),
			APIKey:  util.GetEnv("AI_CHAT_KEY"),
		})
	}
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &mid.App{
		AiClient: newAIClient(),
		Search:   newsfeed.NewGDELTClient(util.GetEnv("GDELT_BASE_URL")),
		Articles: newsfeed.NewArticleLoader(),
		Builder: network.NewBuilder(network.NewBuilderParams{
			ParallelDocs:   util.GetEnvInt("PIPELINE_PARALLEL_DOCS", 4),
			MaxChunkTokens: util.GetEnvInt("PIPELINE_MAX_CHUNK_TOKENS", 2400),
			MaxRetries:     util.GetEnvInt("PIPELINE_MAX_RETRIES", 3),
		}),
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
