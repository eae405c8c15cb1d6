// Package cmd implements the CLI application to manage a personal expense
// ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/kavyad/spendwise"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute()
// on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&signupCmd{}, "account")
	c.Register(&loginCmd{}, "account")
	c.Register(&logoutCmd{}, "account")
	c.Register(&onboardCmd{}, "account")

	c.Register(&addCmd{}, "expenses")
	c.Register(&txCmd{}, "expenses")
	c.Register(&exportCmd{}, "expenses")
	c.Register(&fmtCmd{}, "expenses")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&budgetCmd{}, "reports")

	c.Register(&assistCmd{}, "assistant")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store", "users.json", "Path to the user store file (JSON format)")
var sessionFile = flag.String("session", ".session", "Path to the file holding the logged-in email")

// OpenStore loads the user store from the app store path.
func OpenStore() (*spendwise.Store, error) {
	return spendwise.Open(*storeFile)
}

// saveSession persists the session's email so that the next invocation picks
// it up.
func saveSession(sess spendwise.Session) error {
	return os.WriteFile(*sessionFile, []byte(sess.Email+"\n"), 0600)
}

// clearSession removes the session file. Logging out twice is fine.
func clearSession() error {
	err := os.Remove(*sessionFile)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// CurrentUser resolves the persisted session against the store and returns
// the logged-in user record.
func CurrentUser(s *spendwise.Store) (*spendwise.User, error) {
	data, err := os.ReadFile(*sessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("not logged in, run 'sw login' first")
		}
		return nil, fmt.Errorf("could not read session file %q: %w", *sessionFile, err)
	}
	email := strings.TrimSpace(string(data))
	u := s.User(email)
	if u == nil {
		return nil, fmt.Errorf("session user %q is not in the store, run 'sw login' again", email)
	}
	return u, nil
}

// now returns the current time, or a fixed one when SPENDWISE_TESTING_NOW is
// set, so that documentation scenarios are reproducible.
func now() time.Time {
	if v := os.Getenv("SPENDWISE_TESTING_NOW"); v != "" {
		if t, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return t
		}
	}
	return time.Now()
}
