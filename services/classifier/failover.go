package clfsvc

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/openedu/campusvoice/core"
	"github.com/openedu/campusvoice/core/feedback"
)

// failoverService tries a primary classifier and delegates to a fallback when
// the primary errors out or panics. With a keyword fallback the resulting
// chain is total: it always returns a label and never an error, so a remote
// outage can never block a submission.
type failoverService struct {
	primary  feedback.Classifier
	fallback feedback.Classifier
	logger   core.Logger
}

var _ feedback.Classifier = (*failoverService)(nil)

func NewFailoverService(primary, fallback feedback.Classifier, logger core.Logger) *failoverService {
	return &failoverService{primary: primary, fallback: fallback, logger: logger}
}

func (svc *failoverService) ClassifyText(ctx context.Context, text string) (feedback.Sentiment, error) {
	label, err := svc.tryPrimary(ctx, text)
	if err == nil {
		return label, nil
	}
	svc.logger.Warn(fmt.Sprintf("primary classifier failed, using fallback: %v", err), err)
	return svc.fallback.ClassifyText(ctx, text)
}

func (svc *failoverService) tryPrimary(ctx context.Context, text string) (label feedback.Sentiment, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("classifier panic: %v", r)
		}
	}()

	label, err = svc.primary.ClassifyText(ctx, text)
	if err != nil {
		return "", err
	}
	// an out-of-set label from a call that succeeded is treated as Neutral,
	// not as a failure; the fallback only covers transport/remote errors.
	label, _ = feedback.ParseSentiment(string(label))
	return label, nil
}
