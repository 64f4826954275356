package news

import (
	"context"
	"fmt"
	"strings"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnHubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

func (c *FinnHubClient) Search(ctx context.Context, topic string, limit int) ([]Article, error) {
	symbol := topicToSymbol(topic)
	to := time.Now()
	from := to.AddDate(0, 0, -7)

	res, _, err := c.client.CompanyNews(ctx).
		Symbol(symbol).
		From(from.Format("2006-01-02")).
		To(to.Format("2006-01-02")).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub search: %w", err)
	}

	return normalizeCompanyNews(res, limit), nil
}

func normalizeCompanyNews(res []finnhub.CompanyNews, limit int) []Article {
	var articles []Article

	for _, news := range res {
		a := Article{}

		if news.Headline != nil {
			a.Title = *news.Headline
		}

		if news.Summary != nil {
			a.Snippet = *news.Summary
		}

		if news.Url != nil {
			a.Link = *news.Url
		}

		articles = append(articles, a)

		// The company-news endpoint has no count parameter.
		if limit > 0 && len(articles) >= limit {
			break
		}
	}

	return articles
}

// topicToSymbol reduces a free-text topic to the ticker-style token the
// company-news endpoint expects: first whitespace-delimited word, uppercased.
func topicToSymbol(topic string) string {
	fields := strings.Fields(topic)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(fields[0])
}
