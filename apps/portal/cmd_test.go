package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/openedu/campusvoice/core"
	"github.com/openedu/campusvoice/core/feedback"
	"github.com/openedu/campusvoice/core/student"
	clfsvc "github.com/openedu/campusvoice/services/classifier"
	dummydb "github.com/openedu/campusvoice/storage/database/dummy"
	testutil "github.com/openedu/campusvoice/tests"
)

var testSecret = []byte("secret")

func setup(t *testing.T) (*commandLine, *dummydb.DB, feedback.Repository, *bytes.Buffer) {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := dummydb.NewFeedbackRepository(db)
	svc := feedback.NewService(repo, clfsvc.NewKeywordClassifier(), testutil.Logger{T: t})

	out := new(bytes.Buffer)
	cli := &commandLine{
		conf:  &core.Config{SecretKey: testSecret},
		fbSvc: svc,
		out:   out,
	}
	return cli, db, repo, out
}

func studentToken(t *testing.T, std student.Student) string {
	token, err := student.GenerateToken(student.GetStudentClaims("CampusVoice", std), testSecret)
	if err != nil {
		t.Fatalf("studentToken() failed: %v", err)
	}
	return token
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantOutput string
}

func Test_commandLine_run(t *testing.T) {
	std := testutil.NewStudent("std-1", "Computer Science", 4)
	token := studentToken(t, std)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{
			name:    "submit without token",
			args:    []string{"submit", "-subject", "Mathematics", "-category", "Teaching", "-message", "great"},
			wantErr: feedback.ErrMissingIdentity,
		},
		{
			name:    "submit with garbage token",
			args:    []string{"submit", "-token", "lol", "-subject", "Mathematics", "-category", "Teaching", "-message", "great"},
			wantErr: student.ErrInvalidToken,
		},
		{
			name:    "submit without message",
			args:    []string{"submit", "-token", token, "-subject", "Mathematics", "-category", "Teaching"},
			wantErr: feedback.ErrMissingFields,
		},
		{
			name:       "submit ok",
			args:       []string{"submit", "-token", token, "-subject", "Mathematics", "-category", "Teaching", "-message", "the professor was amazing"},
			wantOutput: "Positive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _, _, out := setup(t)
			args := append([]string{"portal"}, tt.args...)

			err := cli.run(args)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantOutput != "" && !strings.Contains(out.String(), tt.wantOutput) {
				t.Errorf("cli.run() output = %q, want it to contain %q", out.String(), tt.wantOutput)
			}
		})
	}
}

func Test_commandLine_submit_persistsDenormalizedRecord(t *testing.T) {
	cli, _, repo, _ := setup(t)
	std := testutil.NewStudent("std-9", "Electronics", 6)
	token := studentToken(t, std)

	err := cli.run([]string{"portal", "submit", "-token", token,
		"-subject", "Physics", "-category", "Examination", "-message", "the paper was the worst"})
	if err != nil {
		t.Fatalf("cli.run() failed: %v", err)
	}

	fbs, err := repo.QueryAllFeedback(context.Background())
	if err != nil {
		t.Fatalf("QueryAllFeedback() failed: %v", err)
	}
	if len(fbs) != 1 {
		t.Fatalf("stored %d records, want 1", len(fbs))
	}
	fb := fbs[0]
	if fb.Sentiment != feedback.SentimentNegative {
		t.Errorf("Sentiment = %v, want %v", fb.Sentiment, feedback.SentimentNegative)
	}
	if fb.Branch != "Electronics" || fb.Semester != 6 {
		t.Errorf("record not denormalized: branch=%q semester=%d", fb.Branch, fb.Semester)
	}
}

func Test_commandLine_submit_persistenceFailure(t *testing.T) {
	cli, db, repo, out := setup(t)
	std := testutil.NewStudent("std-1", "Civil", 2)
	token := studentToken(t, std)

	db.FailWrites(errors.New("backend unavailable"))
	args := []string{"portal", "submit", "-token", token,
		"-subject", "Chemistry", "-category", "Library", "-message", "not enough copies"}

	if err := cli.run(args); !errors.Is(err, feedback.ErrPersistenceFailed) {
		t.Fatalf("cli.run() error = %v, want %v", err, feedback.ErrPersistenceFailed)
	}
	if !strings.Contains(out.String(), "try again") {
		t.Errorf("cli.run() output = %q, want a try-again message", out.String())
	}

	// the user may simply resubmit once the store heals
	db.FailWrites(nil)
	if err := cli.run(args); err != nil {
		t.Fatalf("cli.run() resubmit failed: %v", err)
	}
	fbs, _ := repo.QueryAllFeedback(context.Background())
	if len(fbs) != 1 {
		t.Errorf("stored %d records after resubmit, want 1", len(fbs))
	}
}

func Test_commandLine_list(t *testing.T) {
	cli, _, repo, out := setup(t)

	testutil.CreateFeedback(t, repo, "std-1", "Mathematics", "Teaching", "great", feedback.SentimentPositive)
	testutil.CreateFeedback(t, repo, "std-2", "Physics", "Examination", "poor", feedback.SentimentNegative)

	std := testutil.NewStudent("std-1", "Computer Science", 4)
	if err := cli.run([]string{"portal", "list", "-token", studentToken(t, std)}); err != nil {
		t.Fatalf("cli.run() failed: %v", err)
	}
	if got := out.String(); !strings.Contains(got, "Mathematics") || strings.Contains(got, "Physics") {
		t.Errorf("student list = %q, want own feedback only", got)
	}

	out.Reset()
	admin := testutil.NewStudent("adm-1", "", 0, student.RoleAdmin)
	if err := cli.run([]string{"portal", "list", "-token", studentToken(t, admin)}); err != nil {
		t.Fatalf("cli.run() failed: %v", err)
	}
	if got := out.String(); !strings.Contains(got, "Mathematics") || !strings.Contains(got, "Physics") {
		t.Errorf("admin list = %q, want all feedback", got)
	}
}

func Test_commandLine_initdb(t *testing.T) {
	origCreate, origMigrate := createDBFunc, migrateDBFunc
	defer func() { createDBFunc, migrateDBFunc = origCreate, origMigrate }()

	t.Run("creates and migrates", func(t *testing.T) {
		cli, _, _, out := setup(t)

		var created, migrated bool
		createDBFunc = func(conf *core.Config) error {
			created = true
			return nil
		}
		migrateDBFunc = func(db *sqlx.DB) error {
			migrated = true
			return nil
		}

		if err := cli.run([]string{"portal", "initdb"}); err != nil {
			t.Fatalf("cli.run() failed: %v", err)
		}
		if !created || !migrated {
			t.Errorf("created = %v, migrated = %v, want both true", created, migrated)
		}
		if !strings.Contains(out.String(), "Database ready.") {
			t.Errorf("cli.run() output = %q, want a ready message", out.String())
		}
	})

	t.Run("create failure stops migration", func(t *testing.T) {
		cli, _, _, _ := setup(t)

		wantErr := errors.New("connection refused")
		createDBFunc = func(conf *core.Config) error { return wantErr }
		var migrated bool
		migrateDBFunc = func(db *sqlx.DB) error {
			migrated = true
			return nil
		}

		if err := cli.run([]string{"portal", "initdb"}); !errors.Is(err, wantErr) {
			t.Fatalf("cli.run() error = %v, want %v", err, wantErr)
		}
		if migrated {
			t.Error("migration ran after a failed create")
		}
	})

	t.Run("test mode needs no setup", func(t *testing.T) {
		cli, _, _, out := setup(t)
		cli.conf.TestMode = true

		var called bool
		createDBFunc = func(conf *core.Config) error {
			called = true
			return nil
		}
		migrateDBFunc = func(db *sqlx.DB) error {
			called = true
			return nil
		}

		if err := cli.run([]string{"portal", "initdb"}); err != nil {
			t.Fatalf("cli.run() failed: %v", err)
		}
		if called {
			t.Error("database setup ran in test mode")
		}
		if !strings.Contains(out.String(), "needs no setup") {
			t.Errorf("cli.run() output = %q, want a no-setup notice", out.String())
		}
	})
}
