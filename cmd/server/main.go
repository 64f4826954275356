package main

import (
	"log"
	"log/slog"
	"os"

	"newslens/internal/config"
	"newslens/internal/handler"
	"newslens/internal/insight"
	"newslens/pkg/llm"
	"newslens/pkg/markdown"
	"newslens/pkg/news"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	newsClient := buildNewsClient(cfg)
	llmClient := buildLLMClient(cfg)

	renderer := markdown.NewRenderer()
	service := insight.NewService(newsClient, llmClient, renderer, cfg.MaxArticles, cfg.GenerationTimeout())
	insightHandler := handler.NewInsightHandler(service, newsClient.Name(), llmClient.Name())

	slog.Info("providers configured", "news", newsClient.Name(), "llm", llmClient.Name())

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/", insightHandler.GetIndex)
	r.POST("/api/insights", insightHandler.GenerateInsights)
	r.GET("/health", insightHandler.GetHealth)

	err = r.Run(cfg.ServerAddr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func buildNewsClient(cfg *config.Config) news.NewsClient {
	switch cfg.NewsProvider {
	case "finnhub":
		return news.NewFinnHubClient(cfg.FinnhubAPIKey)
	default:
		return news.NewSerperClient(cfg.SerperAPIKey)
	}
}

func buildLLMClient(cfg *config.Config) llm.LLMClient {
	switch cfg.LLMProvider {
	case "anthropic":
		return llm.NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	default:
		return llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	}
}
