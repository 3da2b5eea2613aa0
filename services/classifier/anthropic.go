package clfsvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/pkg/errors"

	"github.com/openedu/campusvoice/core"
	"github.com/openedu/campusvoice/core/feedback"
)

const sentimentSystemPrompt = `You classify student feedback sentiment.
Respond with exactly one word: Positive, Neutral or Negative. Nothing else.`

type anthropicService struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
	logger  core.Logger
}

var _ feedback.Classifier = (*anthropicService)(nil)

func NewAnthropicService(conf *core.Config, logger core.Logger) *anthropicService {
	return &anthropicService{
		client:  anthropic.NewClient(option.WithAPIKey(conf.Classifier.APIKey)),
		model:   conf.Classifier.Model,
		timeout: conf.Classifier.Timeout,
		logger:  logger,
	}
}

func (svc *anthropicService) ClassifyText(ctx context.Context, text string) (feedback.Sentiment, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.timeout)
	defer cancel()

	message, err := svc.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(svc.model),
		MaxTokens: 8,
		System: []anthropic.TextBlockParam{
			{Text: sentimentSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "anthropic API")
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			label, ok := feedback.ParseSentiment(strings.TrimSpace(block.Text))
			if !ok {
				svc.logger.Warn(fmt.Sprintf("anthropic returned out-of-set label %q", block.Text))
			}
			return label, nil
		}
	}
	return "", errors.New("no text content in anthropic response")
}
