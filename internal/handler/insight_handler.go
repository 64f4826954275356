package handler

import (
	"context"
	_ "embed"
	"log/slog"
	"net/http"
	"strings"

	"newslens/internal/insight"

	"github.com/gin-gonic/gin"
)

//go:embed web/index.html
var indexPage []byte

type Pipeline interface {
	Run(ctx context.Context, topic string, sink insight.Sink) error
}

type InsightHandler struct {
	pipeline     Pipeline
	newsProvider string
	llmProvider  string
}

func NewInsightHandler(pipeline Pipeline, newsProvider, llmProvider string) *InsightHandler {
	return &InsightHandler{
		pipeline:     pipeline,
		newsProvider: newsProvider,
		llmProvider:  llmProvider,
	}
}

func (h *InsightHandler) GetIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}

func (h *InsightHandler) GenerateInsights(c *gin.Context) {
	var req InsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid insights request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a news topic."})
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a news topic."})
		return
	}

	sink, ok := newSSESink(c.Writer)
	if !ok {
		slog.Error("response writer does not support streaming")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Streaming unsupported"})
		return
	}

	writeStreamHeaders(c.Writer)

	if err := h.pipeline.Run(c.Request.Context(), topic, sink); err != nil {
		// Client gone mid-stream; nothing left to write to.
		slog.Warn("insight stream aborted", "topic", topic, "error", err)
	}
}

func (h *InsightHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:       "healthy",
		NewsProvider: h.newsProvider,
		LLMProvider:  h.llmProvider,
	})
}
