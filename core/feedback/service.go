package feedback

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/openedu/campusvoice/core"
	"github.com/openedu/campusvoice/core/student"
)

var (
	// errors
	ErrNotFound          = errors.New("feedback not found")
	ErrMissingIdentity   = errors.New("missing student identity")
	ErrMissingFields     = errors.New("required feedback fields are missing")
	ErrPersistenceFailed = errors.New("feedback could not be saved")
)

type (
	// Repository is the record store boundary. Any insert failure is collapsed
	// into ErrPersistenceFailed by the service; subtypes are not inspected.
	Repository interface {
		CreateFeedback(ctx context.Context, fb Feedback) (Feedback, error)
		QueryAllFeedback(ctx context.Context) ([]Feedback, error)
		GetFeedbackByID(ctx context.Context, id string) (Feedback, error)
		// FilterFeedback applies AND operation on available QueryFilter fields.
		FilterFeedback(ctx context.Context, filter QueryFilter) ([]Feedback, error)
	}

	// Classifier resolves a sentiment label for free text. Implementations may
	// error; the submission pipeline absorbs every classifier failure.
	Classifier interface {
		ClassifyText(ctx context.Context, text string) (Sentiment, error)
	}

	Service struct {
		repo       Repository
		classifier Classifier
		log        core.Logger
	}
)

func NewService(repo Repository, clf Classifier, log core.Logger) *Service {
	return &Service{repo: repo, classifier: clf, log: log}
}

// Submit runs the feedback pipeline: validate, classify, persist.
//
// Validation failures stop the pipeline before any network call is made.
// Classification cannot fail the submission; a classifier outage degrades to a
// default label. Exactly one insert attempt is issued per call; on failure the
// caller decides whether to resubmit, nothing is retried here.
func (svc *Service) Submit(ctx context.Context, std student.Student, nf NewFeedback) (Sentiment, error) {
	if std.ID == "" {
		return "", ErrMissingIdentity
	}
	if err := nf.Validate(); err != nil {
		return "", err
	}

	label := svc.classify(ctx, nf.Body)

	now := time.Now().UTC()
	fb := Feedback{
		ID:        uuid.NewString(),
		StudentID: std.ID,
		Subject:   nf.Subject,
		Category:  nf.Category,
		Body:      nf.Body,
		Sentiment: label,
		Branch:    std.Branch,
		Semester:  std.Semester,
		CreatedAt: now,
	}
	if _, err := svc.repo.CreateFeedback(ctx, fb); err != nil {
		svc.log.Error(fmt.Sprintf("creating feedback: %v", err), err)
		return "", ErrPersistenceFailed
	}
	return label, nil
}

// classify never fails: a classifier error or an out-of-set label resolves to
// Neutral. Fallback heuristics live in the classifier chain itself; this is
// the last line keeping submissions unblocked.
func (svc *Service) classify(ctx context.Context, text string) Sentiment {
	label, err := svc.classifier.ClassifyText(ctx, text)
	if err != nil {
		svc.log.Warn(fmt.Sprintf("classifier unavailable, defaulting to %s: %v", SentimentNeutral, err), err)
		return SentimentNeutral
	}
	s, ok := ParseSentiment(string(label))
	if !ok {
		svc.log.Warn(fmt.Sprintf("unrecognized sentiment label %q, defaulting to %s", label, SentimentNeutral))
	}
	return s
}

func (svc *Service) QueryAll(ctx context.Context) ([]Feedback, error) {
	return svc.repo.QueryAllFeedback(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Feedback, error) {
	return svc.repo.GetFeedbackByID(ctx, id)
}

func (svc *Service) Filter(ctx context.Context, filter QueryFilter) ([]Feedback, error) {
	return svc.repo.FilterFeedback(ctx, filter)
}
