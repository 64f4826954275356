package insight

// Event names carried on the submission stream. Per article, EventArticle
// precedes EventResearch precedes EventInsight; EventDone is always last.
const (
	EventArticle  = "article"
	EventResearch = "research"
	EventInsight  = "insight"
	EventNotice   = "notice"
	EventError    = "error"
	EventDone     = "done"
)

type ArticlePayload struct {
	Index   int    `json:"index"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

type PassagePayload struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	HTML  string `json:"html"`
}

type NoticePayload struct {
	Message string `json:"message"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

type DonePayload struct {
	SubmissionID string `json:"submission_id"`
	ArticleCount int    `json:"article_count"`
}

// Sink receives one submission's events in order. A Send error means the
// consumer is gone and the submission should stop.
type Sink interface {
	Send(event string, data any) error
}
