package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/openedu/campusvoice/core"
	"github.com/openedu/campusvoice/core/feedback"
	"github.com/openedu/campusvoice/core/student"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf  *core.Config
	db    *sqlx.DB
	fbSvc *feedback.Service
	out   io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  initdb - create the database and feedback table")
	fmt.Fprintln(cli.out, "  submit -subject SUBJECT -category CATEGORY -message TEXT - submit feedback")
	fmt.Fprintln(cli.out, "  list [-subject SUBJECT] [-sentiment LABEL] - list submitted feedback")
	fmt.Fprintf(cli.out, "\nThe access token is read from -token or $%s.\n", tokenEnvVar)
}

const tokenEnvVar = "CAMPUSVOICE_ACCESS_TOKEN"

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	submitCmd := flag.NewFlagSet("submit", flag.ExitOnError)
	submitToken := submitCmd.String("token", os.Getenv(tokenEnvVar), "Signed access token identifying the student.")
	submitSubject := submitCmd.String("subject", "", "The subject the feedback is about.")
	submitCategory := submitCmd.String("category", "", "The feedback category.")
	submitMessage := submitCmd.String("message", "", fmt.Sprintf("The feedback text (up to ~%d characters).", feedback.BodyLengthHint))

	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	listToken := listCmd.String("token", os.Getenv(tokenEnvVar), "Signed access token identifying the student.")
	listSubject := listCmd.String("subject", "", "Only list feedback on this subject.")
	listSentiment := listCmd.String("sentiment", "", "Only list feedback with this sentiment label.")

	switch args[1] {
	case "initdb":
		return cli.initDB()
	case "submit":
		if err := submitCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.submit(*submitToken, *submitSubject, *submitCategory, *submitMessage)
	case "list":
		if err := listCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.list(*listToken, *listSubject, *listSentiment)
	default:
		cli.printUsage()
		return errHelp
	}
}

// resolveIdentity turns the access token into a Student. An absent token
// yields the zero Student so the pipeline reports the missing identity itself.
func (cli *commandLine) resolveIdentity(token string) (student.Student, error) {
	if token == "" {
		return student.Student{}, nil
	}
	return student.ResolveStudent(token, cli.conf.SecretKey)
}
