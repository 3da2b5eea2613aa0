package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/openedu/campusvoice/core"
	"github.com/openedu/campusvoice/core/feedback"
)

func (cli *commandLine) submit(token, subject, category, message string) error {
	std, err := cli.resolveIdentity(token)
	if err != nil {
		return err
	}

	nf := feedback.NewFeedback{
		Subject:  subject,
		Category: category,
		Body:     message,
	}
	label, err := cli.fbSvc.Submit(context.Background(), std, nf)
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrMissingIdentity):
			fmt.Fprintln(cli.out, "You must be signed in to submit feedback.")
		case errors.Is(err, feedback.ErrMissingFields):
			var vErr *core.ValidationError
			if errors.As(err, &vErr) {
				for _, fe := range vErr.Fields {
					fmt.Fprintf(cli.out, "%s: %s\n", fe.Field, fe.Error)
				}
			}
		case errors.Is(err, feedback.ErrPersistenceFailed):
			fmt.Fprintln(cli.out, "Your feedback could not be saved. Please try again.")
		}
		return err
	}

	fmt.Fprintf(cli.out, "Thank you! Your feedback was recorded (%s).\n", label)
	return nil
}
