package dummydb

import (
	"sync"

	"github.com/openedu/campusvoice/core/feedback"
)

type (
	DB struct {
		feedback *feedbackTable
	}

	feedbackTable struct {
		sync.RWMutex
		table map[string]*feedback.Feedback

		// forcedErr, when set, is returned by every write; lets tests and the
		// CLI dry-run mode exercise persistence failure paths.
		forcedErr error
	}
)

func Open() (*DB, error) {
	db := &DB{
		feedback: &feedbackTable{table: make(map[string]*feedback.Feedback)},
	}
	return db, nil
}

// FailWrites forces subsequent feedback writes to fail with err; pass nil to heal.
func (db *DB) FailWrites(err error) {
	db.feedback.Lock()
	defer db.feedback.Unlock()
	db.feedback.forcedErr = err
}
