package news

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const serperNewsURL = "https://google.serper.dev/news"

type SerperClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewSerperClient(apiKey string) *SerperClient {
	return &SerperClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *SerperClient) Name() string {
	return "Serper"
}

func (c *SerperClient) Search(ctx context.Context, topic string, limit int) ([]Article, error) {
	body, err := json.Marshal(serperRequest{Query: topic, Num: limit})
	if err != nil {
		return nil, fmt.Errorf("serper request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serperNewsURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("serper request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serper search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("serper search: unexpected status %d", resp.StatusCode)
	}

	var raw serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("serper decode: %w", err)
	}

	// Missing fields and an absent "news" key decode to zero values.
	// The upstream payload is accepted as-is, no shape validation.
	articles := make([]Article, 0, len(raw.News))
	for _, item := range raw.News {
		articles = append(articles, Article{
			Title:   item.Title,
			Snippet: item.Snippet,
			Link:    item.Link,
		})
	}

	return articles, nil
}

type serperRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num"`
}

type serperResponse struct {
	News []serperNewsItem `json:"news"`
}

type serperNewsItem struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}
