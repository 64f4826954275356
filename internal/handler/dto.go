package handler

type InsightRequest struct {
	Topic string `json:"topic"`
}

type HealthResponse struct {
	Status       string `json:"status"`
	NewsProvider string `json:"news_provider"`
	LLMProvider  string `json:"llm_provider"`
}
