package main

import (
	"context"
	"fmt"

	"github.com/openedu/campusvoice/core/feedback"
)

func (cli *commandLine) list(token, subject, sentiment string) error {
	std, err := cli.resolveIdentity(token)
	if err != nil {
		return err
	}

	filter := feedback.QueryFilter{
		Subject:   subject,
		Sentiment: feedback.Sentiment(sentiment),
	}
	// students only see their own entries; faculty and admins see everything
	if !std.IsAdmin() && !std.IsFaculty() {
		if std.ID == "" {
			return feedback.ErrMissingIdentity
		}
		filter.StudentID = std.ID
	}

	var fbs []feedback.Feedback
	if filter == (feedback.QueryFilter{}) {
		fbs, err = cli.fbSvc.QueryAll(context.Background())
	} else {
		fbs, err = cli.fbSvc.Filter(context.Background(), filter)
	}
	if err != nil {
		return err
	}

	if len(fbs) == 0 {
		fmt.Fprintln(cli.out, "No feedback found.")
		return nil
	}
	for _, fb := range fbs {
		fmt.Fprintf(cli.out, "%s | %s | %s/%s | %s | %s\n",
			fb.CreatedAt.Format("2006-01-02 15:04"), fb.Sentiment, fb.Subject, fb.Category, fb.Branch, fb.Body)
	}
	return nil
}
