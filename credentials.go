package spendwise

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/kavyad/spendwise/date"
	"golang.org/x/crypto/bcrypt"
)

// Session identifies the signed-in user. It is an explicit value returned by
// Signup and Login and passed to every user-scoped call; there is no ambient
// current-user state.
type Session struct {
	Email string
	Name  string
}

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// checkPasswordPolicy enforces the signup password rules: at least 6
// characters, one uppercase letter and one digit.
func checkPasswordPolicy(password string) error {
	if len(password) < 6 {
		return validationf("password must be at least 6 characters")
	}
	var upper, digit bool
	for _, r := range password {
		upper = upper || unicode.IsUpper(r)
		digit = digit || unicode.IsDigit(r)
	}
	if !upper {
		return validationf("password must contain at least one uppercase letter")
	}
	if !digit {
		return validationf("password must contain at least one digit")
	}
	return nil
}

// HashPassword derives a salted bcrypt hash of the password. The stored hash
// never equals, nor reveals, the plaintext.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the password verifies against the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Signup validates the registration form and creates the account: no budget
// or currency yet, zero balances, empty ledger. On success the store is
// persisted and a session for the new account is returned.
func (s *Store) Signup(name, email, password, confirm string, termsAgreed bool) (Session, error) {
	if name == "" || email == "" || password == "" || confirm == "" {
		return Session{}, validationf("please fill in all fields")
	}
	if !termsAgreed {
		return Session{}, validationf("please agree to the terms and conditions")
	}
	if !emailRE.MatchString(email) {
		return Session{}, validationf("please enter a valid email address")
	}
	if s.Has(email) {
		return Session{}, validationf("email already registered")
	}
	if password != confirm {
		return Session{}, validationf("passwords do not match")
	}
	if err := checkPasswordPolicy(password); err != nil {
		return Session{}, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return Session{}, err
	}

	s.put(email, &User{
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	})
	if err := s.Save(); err != nil {
		return Session{}, err
	}
	return Session{Email: email, Name: name}, nil
}

// Login verifies the credentials and returns a session.
// It returns ErrNotFound for an unknown email and ErrUnauthorized when the
// password does not verify.
func (s *Store) Login(email, password string) (Session, error) {
	if email == "" || password == "" {
		return Session{}, validationf("please fill in all fields")
	}
	u := s.User(email)
	if u == nil {
		return Session{}, ErrNotFound
	}
	if !CheckPassword(u.PasswordHash, password) {
		return Session{}, ErrUnauthorized
	}
	return Session{Email: email, Name: u.Name}, nil
}

// BudgetMode selects what a repeat onboarding does with the budget amount.
type BudgetMode int

const (
	// BudgetTopUp adds the new amount to the existing budget (the historical
	// behavior of the onboarding screen).
	BudgetTopUp BudgetMode = iota
	// BudgetReplace overwrites the budget with the new amount.
	BudgetReplace
)

func (m BudgetMode) String() string {
	switch m {
	case BudgetTopUp:
		return "topup"
	case BudgetReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// ParseBudgetMode parses a budget mode name.
func ParseBudgetMode(s string) (BudgetMode, error) {
	switch strings.ToLower(s) {
	case "topup", "top-up", "add":
		return BudgetTopUp, nil
	case "replace", "set":
		return BudgetReplace, nil
	default:
		return 0, fmt.Errorf("unknown budget mode %q, want topup or replace", s)
	}
}

// CurrencyCode extracts the currency code from a selection string like
// "USD - US Dollar ($)"; a bare code is returned as-is.
func CurrencyCode(choice string) string {
	code, _, _ := strings.Cut(choice, " - ")
	return strings.TrimSpace(code)
}

// Onboard parses the budget input ("" and "0" mean zero; comma grouping is
// accepted), applies it to the session's account per mode, records the
// currency, and persists the store.
func (s *Store) Onboard(sess Session, budgetInput, currencyChoice string, mode BudgetMode) error {
	u := s.User(sess.Email)
	if u == nil {
		return ErrNotFound
	}

	budget, err := ParseAmount(budgetInput)
	if err != nil {
		return validationf("please enter a valid number for monthly budget")
	}
	if err := u.Onboard(budget, CurrencyCode(currencyChoice), mode); err != nil {
		return err
	}
	return s.Save()
}

// RecordExpense parses the amount, appends the entry to the session's ledger
// debiting the matching balance, and persists the store.
func (s *Store) RecordExpense(sess Session, amountInput, category string, account Account, on date.Date) (Expense, error) {
	u := s.User(sess.Email)
	if u == nil {
		return Expense{}, ErrNotFound
	}

	amount, err := ParseAmount(amountInput)
	if err != nil {
		return Expense{}, err
	}
	e, err := u.RecordExpense(amount, category, account, on, time.Now())
	if err != nil {
		return Expense{}, err
	}
	if err := s.Save(); err != nil {
		return Expense{}, err
	}
	return e, nil
}
