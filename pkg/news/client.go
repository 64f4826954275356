package news

import "context"

type Article struct {
	Title   string
	Snippet string
	Link    string
}

type NewsClient interface {
	Search(ctx context.Context, topic string, limit int) ([]Article, error)
	Name() string
}
