package llm

import (
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestResearchPromptContainsTopic(t *testing.T) {
	prompt := researchPrompt("electric vehicles")

	assert.Equal(t, true, strings.Contains(prompt, "electric vehicles"))
	assert.Equal(t, true, strings.Contains(prompt, "Research Objectives"))
}

func TestInsightPromptWithoutResearchContext(t *testing.T) {
	prompt := insightPrompt(InsightInput{
		Title:   "EV Sales Hit Record High",
		Snippet: "Sales climbed 30%.",
	})

	assert.Equal(t, true, strings.Contains(prompt, "Title: EV Sales Hit Record High"))
	assert.Equal(t, true, strings.Contains(prompt, "Snippet: Sales climbed 30%."))
	assert.Equal(t, false, strings.Contains(prompt, "Research Context"))
	assert.Equal(t, true, strings.Contains(prompt, "280-300 characters"))
}

func TestInsightPromptWithResearchContext(t *testing.T) {
	prompt := insightPrompt(InsightInput{
		Title:           "EV Sales Hit Record High",
		Snippet:         "Sales climbed 30%.",
		ResearchContext: "Background on the EV market.",
	})

	assert.Equal(t, true, strings.Contains(prompt, "Research Context"))
	assert.Equal(t, true, strings.Contains(prompt, "Background on the EV market."))
}

func TestFallbacksContainTitle(t *testing.T) {
	research := ResearchFallback("EV Sales Hit Record High")
	insight := InsightFallback("EV Sales Hit Record High")

	assert.NotEqual(t, "", research)
	assert.NotEqual(t, "", insight)
	assert.Equal(t, true, strings.Contains(research, "EV Sales Hit Record High"))
	assert.Equal(t, true, strings.Contains(insight, "EV Sales Hit Record High"))

	// Deterministic: same input, same string.
	assert.Equal(t, research, ResearchFallback("EV Sales Hit Record High"))
	assert.Equal(t, insight, InsightFallback("EV Sales Hit Record High"))
}
