package llm

import (
	"context"
	"fmt"
)

type InsightInput struct {
	Title           string
	Snippet         string
	ResearchContext string
}

type LLMClient interface {
	Research(ctx context.Context, topic string) (string, error)
	Insight(ctx context.Context, input InsightInput) (string, error)
	Name() string
}

// ResearchFallback is the deterministic passage substituted when a
// research call fails. It always contains the topic.
func ResearchFallback(topic string) string {
	return fmt.Sprintf("Comprehensive research on %s could not be generated.", topic)
}

// InsightFallback is the deterministic passage substituted when an
// insight call fails. It always contains the article title.
func InsightFallback(title string) string {
	return fmt.Sprintf("Insight on %s: A nuanced perspective on recent developments.", title)
}
