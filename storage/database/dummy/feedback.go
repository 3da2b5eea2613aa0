package dummydb

import (
	"context"
	"sort"

	"github.com/openedu/campusvoice/core/feedback"
)

type feedbackRepository struct {
	db *feedbackTable
}

var _ feedback.Repository = (*feedbackRepository)(nil) // interface compliance check

func NewFeedbackRepository(db *DB) feedback.Repository {
	return &feedbackRepository{db: db.feedback}
}

func (repo *feedbackRepository) query() []feedback.Feedback {
	fbs := make([]feedback.Feedback, 0, len(repo.db.table))
	for _, fb := range repo.db.table {
		fbs = append(fbs, *fb)
	}
	sort.Slice(fbs, func(i, j int) bool { return fbs[i].CreatedAt.After(fbs[j].CreatedAt) })
	return fbs
}

func (repo *feedbackRepository) CreateFeedback(_ context.Context, fb feedback.Feedback) (feedback.Feedback, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if repo.db.forcedErr != nil {
		return feedback.Feedback{}, repo.db.forcedErr
	}
	repo.db.table[fb.ID] = &fb
	return fb, nil
}

func (repo *feedbackRepository) QueryAllFeedback(_ context.Context) ([]feedback.Feedback, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *feedbackRepository) GetFeedbackByID(_ context.Context, id string) (feedback.Feedback, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if fb, ok := repo.db.table[id]; ok {
		return *fb, nil
	}
	return feedback.Feedback{}, feedback.ErrNotFound
}

func (repo *feedbackRepository) FilterFeedback(_ context.Context, filter feedback.QueryFilter) ([]feedback.Feedback, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var filtered []feedback.Feedback
	for _, fb := range repo.query() {
		if filter.StudentID != "" && fb.StudentID != filter.StudentID {
			continue
		}
		if filter.Subject != "" && fb.Subject != filter.Subject {
			continue
		}
		if filter.Sentiment != "" && fb.Sentiment != filter.Sentiment {
			continue
		}
		filtered = append(filtered, fb)
	}
	return filtered, nil
}
