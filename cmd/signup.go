package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type signupCmd struct {
	name     string
	email    string
	password string
	confirm  string
	terms    bool
}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "create a new account" }
func (*signupCmd) Usage() string {
	return `sw signup -name <name> -email <email> -password <password> -confirm <password> -agree-terms

  Creates a new account in the store and logs into it:
  - name: your display name.
  - email: the account key, must be unique in the store.
  - password: at least 6 characters with one uppercase letter and one number.
  - agree-terms: you must agree to the terms and conditions.
`
}

func (c *signupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name (required)")
	f.StringVar(&c.email, "email", "", "Account email (required)")
	f.StringVar(&c.password, "password", "", "Account password (required)")
	f.StringVar(&c.confirm, "confirm", "", "Password confirmation (required)")
	f.BoolVar(&c.terms, "agree-terms", false, "Agree to the terms and conditions")
}

func (c *signupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return subcommands.ExitFailure
	}

	sess, err := store.Signup(c.name, c.email, c.password, c.confirm, c.terms)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := saveSession(sess); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving session: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Account created for %s. Welcome, %s!\n", sess.Email, sess.Name)
	fmt.Println("Run 'sw onboard' to set your monthly budget and currency.")
	return subcommands.ExitSuccess
}
