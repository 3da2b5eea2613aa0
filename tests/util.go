package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/openedu/campusvoice/core"
	"github.com/openedu/campusvoice/core/feedback"
	"github.com/openedu/campusvoice/core/student"
)

// Logger funnels service logs into the test output.
type Logger struct {
	T *testing.T
}

var _ core.Logger = (*Logger)(nil)

func (l Logger) log(level, msg string, args []interface{}) {
	l.T.Helper()
	l.T.Logf("%s: %s %v", level, msg, args)
}

func (l Logger) Debug(msg string, args ...interface{}) { l.log("DEBUG", msg, args) }
func (l Logger) Info(msg string, args ...interface{})  { l.log("INFO", msg, args) }
func (l Logger) Warn(msg string, args ...interface{})  { l.log("WARN", msg, args) }
func (l Logger) Error(msg string, args ...interface{}) { l.log("ERROR", msg, args) }
func (l Logger) Fatal(msg string, args ...interface{}) { l.log("FATAL", msg, args) }

func NewStudent(id, branch string, semester int, roles ...string) student.Student {
	now := time.Now().UTC()
	if roles == nil {
		roles = []string{student.RoleStudent}
	}
	return student.Student{
		ID:        id,
		Name:      "Student " + id,
		Email:     id + "@test.test",
		Branch:    branch,
		Semester:  semester,
		IsActive:  true,
		Roles:     roles,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func CreateFeedback(
	t *testing.T,
	repo feedback.Repository,
	studentID, subject, category, body string,
	sentiment feedback.Sentiment,
	createdAt ...time.Time,
) feedback.Feedback {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	fb := feedback.Feedback{
		ID:        uuid.NewString(),
		StudentID: studentID,
		Subject:   subject,
		Category:  category,
		Body:      body,
		Sentiment: sentiment,
		CreatedAt: tstamp,
	}
	fb, err := repo.CreateFeedback(context.Background(), fb)
	if err != nil {
		t.Fatalf("createFeedback() failed: %v", err)
	}
	return fb
}
