package clfsvc

import (
	"fmt"

	"github.com/openedu/campusvoice/core"
	"github.com/openedu/campusvoice/core/feedback"
)

// NewService builds the configured classifier chain: the selected remote
// provider wrapped in a failover onto the keyword heuristic. The "keyword"
// provider skips the remote hop entirely.
func NewService(conf *core.Config, logger core.Logger) (feedback.Classifier, error) {
	fallback := NewKeywordClassifier()

	switch conf.Classifier.Provider {
	case "keyword":
		return fallback, nil
	case "anthropic":
		if conf.Classifier.APIKey == "" {
			return nil, fmt.Errorf("anthropic API key not configured")
		}
		return NewFailoverService(NewAnthropicService(conf, logger), fallback, logger), nil
	case "http":
		if conf.Classifier.Endpoint == "" {
			return nil, fmt.Errorf("classifier endpoint not configured")
		}
		return NewFailoverService(NewHTTPService(conf, logger), fallback, logger), nil
	default:
		return nil, fmt.Errorf("unknown classifier provider: %s (supported: anthropic, http, keyword)", conf.Classifier.Provider)
	}
}
