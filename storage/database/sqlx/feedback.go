package sqlxrepos

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/openedu/campusvoice/core/feedback"
)

type feedbackRepository struct {
	db *sqlx.DB
}

var _ feedback.Repository = (*feedbackRepository)(nil) // interface compliance check

func NewFeedbackRepository(db *sqlx.DB) feedback.Repository {
	return &feedbackRepository{db: db}
}

func (repo *feedbackRepository) CreateFeedback(ctx context.Context, fb feedback.Feedback) (feedback.Feedback, error) {
	const q = `
	INSERT INTO feedback (id, student_id, subject, category, body, sentiment, branch, semester, created_at)
	VALUES (:id, :student_id, :subject, :category, :body, :sentiment, :branch, :semester, :created_at)`

	if _, err := repo.db.NamedExecContext(ctx, q, fb); err != nil {
		return feedback.Feedback{}, errors.Wrap(err, "inserting feedback")
	}
	return fb, nil
}

func (repo *feedbackRepository) QueryAllFeedback(ctx context.Context) ([]feedback.Feedback, error) {
	const q = `SELECT * FROM feedback ORDER BY created_at DESC`

	fbs := make([]feedback.Feedback, 0)
	if err := repo.db.SelectContext(ctx, &fbs, q); err != nil {
		return nil, errors.Wrap(err, "querying feedback")
	}
	return fbs, nil
}

func (repo *feedbackRepository) GetFeedbackByID(ctx context.Context, id string) (feedback.Feedback, error) {
	const q = `SELECT * FROM feedback WHERE id = $1`

	var fb feedback.Feedback
	if err := repo.db.GetContext(ctx, &fb, q, id); err != nil {
		if err == sql.ErrNoRows {
			return feedback.Feedback{}, feedback.ErrNotFound
		}
		return feedback.Feedback{}, errors.Wrap(err, "getting feedback")
	}
	return fb, nil
}

func (repo *feedbackRepository) FilterFeedback(ctx context.Context, filter feedback.QueryFilter) ([]feedback.Feedback, error) {
	var (
		clauses []string
		args    []interface{}
	)
	if filter.StudentID != "" {
		args = append(args, filter.StudentID)
		clauses = append(clauses, fmt.Sprintf("student_id = $%d", len(args)))
	}
	if filter.Subject != "" {
		args = append(args, filter.Subject)
		clauses = append(clauses, fmt.Sprintf("subject = $%d", len(args)))
	}
	if filter.Sentiment != "" {
		args = append(args, filter.Sentiment)
		clauses = append(clauses, fmt.Sprintf("sentiment = $%d", len(args)))
	}

	q := `SELECT * FROM feedback`
	if len(clauses) > 0 {
		q += " WHERE " + strings.Join(clauses, " AND ")
	}
	q += " ORDER BY created_at DESC"

	fbs := make([]feedback.Feedback, 0)
	if err := repo.db.SelectContext(ctx, &fbs, q, args...); err != nil {
		return nil, errors.Wrap(err, "filtering feedback")
	}
	return fbs, nil
}
