package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type loginCmd struct {
	email    string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log into an existing account" }
func (*loginCmd) Usage() string {
	return `sw login -email <email> -password <password>

  Logs into an existing account. The session is persisted so that following
  invocations reuse it.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.email, "email", "", "Account email (required)")
	f.StringVar(&c.password, "password", "", "Account password (required)")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	sess, err := store.Login(c.email, c.password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveSession(sess); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving session: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Welcome back, %s!\n", sess.Name)
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "log out of the current session" }
func (*logoutCmd) Usage() string {
	return `sw logout

  Clears the persisted session.
`
}

func (*logoutCmd) SetFlags(f *flag.FlagSet) {}

func (*logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := clearSession(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing session: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}
