package insight

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newslens/pkg/llm"
	"newslens/pkg/news"

	"github.com/google/uuid"
)

const noResultsMessage = "No news found. Try a different topic."

type Renderer interface {
	Render(text string) string
}

// Service runs one submission: fetch articles once, then for each article
// in arrival order generate a research passage and an insight, emitting
// every block to the sink before the next article's generation begins.
//
// Failures never end a submission early. A fetch failure is reported and
// treated as no results; a generation failure is reported once and its
// deterministic fallback passage emitted instead. Only a sink write
// failure (the consumer is gone) aborts the loop.
type Service struct {
	news        news.NewsClient
	llm         llm.LLMClient
	renderer    Renderer
	maxArticles int
	genTimeout  time.Duration
}

func NewService(newsClient news.NewsClient, llmClient llm.LLMClient, renderer Renderer, maxArticles int, genTimeout time.Duration) *Service {
	return &Service{
		news:        newsClient,
		llm:         llmClient,
		renderer:    renderer,
		maxArticles: maxArticles,
		genTimeout:  genTimeout,
	}
}

func (s *Service) Run(ctx context.Context, topic string, sink Sink) error {
	id := uuid.NewString()

	slog.Info("submission started", "submission_id", id, "topic", topic, "source", s.news.Name())

	articles, err := s.news.Search(ctx, topic, s.maxArticles)
	if err != nil {
		slog.Error("error fetching news", "submission_id", id, "topic", topic, "error", err)
		if err := sink.Send(EventError, ErrorPayload{Message: fmt.Sprintf("News Fetch Error: %v", err)}); err != nil {
			return err
		}
		articles = nil
	}

	if len(articles) == 0 {
		if err := sink.Send(EventNotice, NoticePayload{Message: noResultsMessage}); err != nil {
			return err
		}
		return sink.Send(EventDone, DonePayload{SubmissionID: id, ArticleCount: 0})
	}

	for i, article := range articles {
		index := i + 1

		if err := sink.Send(EventArticle, ArticlePayload{
			Index:   index,
			Title:   article.Title,
			Snippet: article.Snippet,
			Link:    article.Link,
		}); err != nil {
			return err
		}

		research, genErr := s.generateResearch(ctx, article.Title)
		if genErr != nil {
			slog.Error("error generating research", "submission_id", id, "title", article.Title, "error", genErr)
			if err := sink.Send(EventError, ErrorPayload{Message: fmt.Sprintf("Research Generation Error: %v", genErr)}); err != nil {
				return err
			}
			research = llm.ResearchFallback(article.Title)
		}
		if err := sink.Send(EventResearch, PassagePayload{
			Index: index,
			Text:  research,
			HTML:  s.renderer.Render(research),
		}); err != nil {
			return err
		}

		insightText, genErr := s.generateInsight(ctx, article, research)
		if genErr != nil {
			slog.Error("error generating insight", "submission_id", id, "title", article.Title, "error", genErr)
			if err := sink.Send(EventError, ErrorPayload{Message: fmt.Sprintf("Insight Generation Error: %v", genErr)}); err != nil {
				return err
			}
			insightText = llm.InsightFallback(article.Title)
		}
		if err := sink.Send(EventInsight, PassagePayload{
			Index: index,
			Text:  insightText,
			HTML:  s.renderer.Render(insightText),
		}); err != nil {
			return err
		}
	}

	slog.Info("submission complete", "submission_id", id, "article_count", len(articles))

	return sink.Send(EventDone, DonePayload{SubmissionID: id, ArticleCount: len(articles)})
}

func (s *Service) generateResearch(ctx context.Context, title string) (string, error) {
	genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	return s.llm.Research(genCtx, title)
}

func (s *Service) generateInsight(ctx context.Context, article news.Article, research string) (string, error) {
	genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	return s.llm.Insight(genCtx, llm.InsightInput{
		Title:           article.Title,
		Snippet:         article.Snippet,
		ResearchContext: research,
	})
}
