package clfsvc

import (
	"context"
	"strings"

	"github.com/openedu/campusvoice/core/feedback"
)

var (
	positiveKeywords = []string{"excellent", "great", "good", "helpful", "amazing"}
	negativeKeywords = []string{"bad", "poor", "terrible", "worst", "disappointed"}
)

// keywordClassifier is the deterministic local heuristic. It is the fallback
// of every classifier chain and must stay pure: same text, same label.
type keywordClassifier struct{}

var _ feedback.Classifier = (*keywordClassifier)(nil)

func NewKeywordClassifier() feedback.Classifier {
	return &keywordClassifier{}
}

// ClassifyText scans the lower-cased text against the keyword sets. The
// positive set is checked strictly before the negative set: a text containing
// both "great" and "terrible" resolves to Positive. First-match-wins is a
// deliberate policy, not an accident.
func (keywordClassifier) ClassifyText(_ context.Context, text string) (feedback.Sentiment, error) {
	text = strings.ToLower(text)
	for _, kw := range positiveKeywords {
		if strings.Contains(text, kw) {
			return feedback.SentimentPositive, nil
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(text, kw) {
			return feedback.SentimentNegative, nil
		}
	}
	return feedback.SentimentNeutral, nil
}
