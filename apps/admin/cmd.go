package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"github.com/jmoiron/sqlx"
	"golang.org/x/term"

	"github.com/jnedu/classroom2030/core/class"
	"github.com/jnedu/classroom2030/core/group"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db       *sqlx.DB
	groupSvc *group.Service
	classSvc *class.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate                - apply pending database migrations")
	fmt.Println("  seedclasses            - load the published class schedule into the database")
	fmt.Println("  resetpassword -id ID   - reset a research group's password")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	resetPasswordCmd := flag.NewFlagSet("resetpassword", flag.ExitOnError)
	resetPasswordID := resetPasswordCmd.String("id", "", "The research group's id. The new password will be prompted next.")

	switch args[1] {
	case "migrate":
		return cli.migrate()
	case "seedclasses":
		return cli.seedClasses()
	case "resetpassword":
		if err := resetPasswordCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *resetPasswordID == "" {
			resetPasswordCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter new password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			resetPasswordCmd.Usage()
			return errHelp
		}
		return cli.resetPassword(*resetPasswordID, string(pwd))
	default:
		cli.printUsage()
		return errHelp
	}
}
