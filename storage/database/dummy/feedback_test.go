package dummydb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/openedu/campusvoice/core/feedback"
	testutil "github.com/openedu/campusvoice/tests"
)

func TestFeedbackRepository(t *testing.T) {
	db, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	repo := NewFeedbackRepository(db)
	ctx := context.Background()

	older := time.Now().Add(-time.Hour)
	fb1 := testutil.CreateFeedback(t, repo, "std-1", "Mathematics", "Teaching", "great", feedback.SentimentPositive, older)
	fb2 := testutil.CreateFeedback(t, repo, "std-2", "Physics", "Examination", "terrible", feedback.SentimentNegative)

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetFeedbackByID(ctx, fb1.ID)
		if err != nil {
			t.Fatalf("GetFeedbackByID() failed: %v", err)
		}
		if got.Body != fb1.Body {
			t.Errorf("GetFeedbackByID() = %+v, want %+v", got, fb1)
		}
		if _, err := repo.GetFeedbackByID(ctx, "nope"); err != feedback.ErrNotFound {
			t.Errorf("GetFeedbackByID() error = %v, want %v", err, feedback.ErrNotFound)
		}
	})

	t.Run("query all newest first", func(t *testing.T) {
		fbs, err := repo.QueryAllFeedback(ctx)
		if err != nil {
			t.Fatalf("QueryAllFeedback() failed: %v", err)
		}
		if len(fbs) != 2 || fbs[0].ID != fb2.ID {
			t.Errorf("QueryAllFeedback() = %+v, want newest first", fbs)
		}
	})

	t.Run("filter", func(t *testing.T) {
		fbs, err := repo.FilterFeedback(ctx, feedback.QueryFilter{StudentID: "std-1"})
		if err != nil {
			t.Fatalf("FilterFeedback() failed: %v", err)
		}
		if len(fbs) != 1 || fbs[0].ID != fb1.ID {
			t.Errorf("FilterFeedback(student) = %+v", fbs)
		}

		fbs, err = repo.FilterFeedback(ctx, feedback.QueryFilter{Subject: "Physics", Sentiment: feedback.SentimentNegative})
		if err != nil {
			t.Fatalf("FilterFeedback() failed: %v", err)
		}
		if len(fbs) != 1 || fbs[0].ID != fb2.ID {
			t.Errorf("FilterFeedback(subject+sentiment) = %+v", fbs)
		}
	})

	t.Run("forced write failure", func(t *testing.T) {
		forced := errors.New("disk on fire")
		db.FailWrites(forced)
		defer db.FailWrites(nil)

		if _, err := repo.CreateFeedback(ctx, feedback.Feedback{ID: "x"}); err != forced {
			t.Errorf("CreateFeedback() error = %v, want %v", err, forced)
		}
	})
}
