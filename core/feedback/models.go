package feedback

import (
	"time"
)

// Sentiment classifies feedback text. It is a closed set: every persisted
// record carries exactly one of the three labels, never none.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// ParseSentiment maps a raw label onto the closed set. Unrecognized or empty
// input yields Neutral with ok=false so remote responses stay default-safe.
func ParseSentiment(s string) (Sentiment, bool) {
	switch Sentiment(s) {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return Sentiment(s), true
	}
	return SentimentNeutral, false
}

// BodyLengthHint is the character-count guidance shown to submitters.
// It is display-only and deliberately not enforced as a validation error.
const BodyLengthHint = 1000

var (
	// Subjects students can leave feedback on.
	Subjects = []string{
		"Mathematics",
		"Physics",
		"Chemistry",
		"Computer Science",
		"Electronics",
		"English",
	}

	// Categories a feedback entry can target.
	Categories = []string{
		"Teaching",
		"Course Content",
		"Examination",
		"Library",
		"Infrastructure",
		"Other",
	}
)

// Feedback is a persisted submission, denormalized with the author's
// branch/semester as they were at submission time.
type Feedback struct {
	ID        string    `json:"id" db:"id"`
	StudentID string    `json:"student_id" db:"student_id"`
	Subject   string    `json:"subject" db:"subject"`
	Category  string    `json:"category" db:"category"`
	Body      string    `json:"body" db:"body"`
	Sentiment Sentiment `json:"sentiment" db:"sentiment"`
	Branch    string    `json:"branch" db:"branch"`
	Semester  int       `json:"semester" db:"semester"`
	CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
}

// NewFeedback contains information needed to submit a new Feedback entry.
type NewFeedback struct {
	Subject  string `json:"subject" validate:"required,subjectlabel"`
	Category string `json:"category" validate:"required,categorylabel"`
	Body     string `json:"body" validate:"required"`
}

type QueryFilter struct {
	StudentID string
	Subject   string
	Sentiment Sentiment
}
