package llm

import (
	"fmt"
	"strings"
)

const researchSystemPrompt = `You are a Senior News Researcher: an experienced investigative journalist with a PhD in Media Studies, known for providing deep, nuanced analysis of complex global events. You are committed to uncovering the broader context behind headlines.`

const insightSystemPrompt = `You are a Social Media Insights Strategist: a communication expert with a background in journalism and digital media strategy. You specialize in distilling complex information into engaging, professional social media narratives.`

func researchPrompt(topic string) string {
	return fmt.Sprintf(`Conduct a comprehensive research analysis on the topic: %s

Research Objectives:
- Identify key themes and underlying narratives
- Provide context and historical background
- Highlight potential implications
- Maintain an objective, analytical approach

Deliver a well-structured research summary.`, topic)
}

func insightPrompt(input InsightInput) string {
	var sb strings.Builder

	sb.WriteString("Create a professional, insightful social media post based on:\n\n")
	sb.WriteString("News Context:\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", input.Title))
	sb.WriteString(fmt.Sprintf("Snippet: %s\n", input.Snippet))

	if input.ResearchContext != "" {
		sb.WriteString(fmt.Sprintf("\nResearch Context:\n%s\n", input.ResearchContext))
	}

	sb.WriteString(`
Guidelines:
- Craft a nuanced, professional insight
- Maintain objectivity
- Aim for 280-300 characters
- Provoke thoughtful reflection
- Include a subtle, relevant hashtag`)

	return sb.String()
}
