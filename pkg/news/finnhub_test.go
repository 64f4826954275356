package news

import (
	"testing"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
	"github.com/go-playground/assert/v2"
)

func strPtr(s string) *string { return &s }

func TestTopicToSymbol(t *testing.T) {
	assert.Equal(t, "TSLA", topicToSymbol("tsla"))
	assert.Equal(t, "AAPL", topicToSymbol("  aapl earnings report "))
	assert.Equal(t, "NVDA", topicToSymbol("NVDA"))
	assert.Equal(t, "", topicToSymbol("   "))
	assert.Equal(t, "", topicToSymbol(""))
}

func TestNormalizeCompanyNews(t *testing.T) {
	res := []finnhub.CompanyNews{
		{
			Headline: strPtr("Acme Beats Estimates"),
			Summary:  strPtr("Strong quarter across segments."),
			Url:      strPtr("https://example.com/acme"),
		},
	}

	articles := normalizeCompanyNews(res, 5)

	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "Acme Beats Estimates", articles[0].Title)
	assert.Equal(t, "Strong quarter across segments.", articles[0].Snippet)
	assert.Equal(t, "https://example.com/acme", articles[0].Link)
}

func TestNormalizeCompanyNewsNilFields(t *testing.T) {
	res := []finnhub.CompanyNews{
		{Headline: strPtr("Headline Only")},
		{},
	}

	articles := normalizeCompanyNews(res, 5)

	assert.Equal(t, 2, len(articles))
	assert.Equal(t, "Headline Only", articles[0].Title)
	assert.Equal(t, "", articles[0].Snippet)
	assert.Equal(t, "", articles[0].Link)
	assert.Equal(t, "", articles[1].Title)
	assert.Equal(t, "", articles[1].Snippet)
	assert.Equal(t, "", articles[1].Link)
}

func TestNormalizeCompanyNewsTruncatesToLimit(t *testing.T) {
	res := []finnhub.CompanyNews{
		{Headline: strPtr("First")},
		{Headline: strPtr("Second")},
		{Headline: strPtr("Third")},
	}

	articles := normalizeCompanyNews(res, 2)

	assert.Equal(t, 2, len(articles))
	assert.Equal(t, "First", articles[0].Title)
	assert.Equal(t, "Second", articles[1].Title)
}

func TestNormalizeCompanyNewsUnderLimit(t *testing.T) {
	res := []finnhub.CompanyNews{
		{Headline: strPtr("Only One")},
	}

	articles := normalizeCompanyNews(res, 5)

	assert.Equal(t, 1, len(articles))
}
