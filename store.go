package spendwise

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
)

// Store holds every user record, keyed by email, backed by a single JSON
// document that is rewritten wholesale on each mutation.
//
// The store assumes a single process and a single writer: there is no file
// locking, and two concurrent instances would silently lose writes.
type Store struct {
	path  string
	users map[string]*User
}

// Open loads the store from path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, users: make(map[string]*User)}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("store %q does not exist yet, starting empty", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open store %q: %w", path, err)
	}
	defer f.Close()

	users, err := DecodeUsers(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode store %q: %w", path, err)
	}
	s.users = users
	return s, nil
}

// DecodeUsers decodes the email-to-record document from r. Missing balance
// fields are backfilled to zero by the record decoder.
func DecodeUsers(r io.Reader) (map[string]*User, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	users := make(map[string]*User)
	if len(bytes.TrimSpace(data)) == 0 {
		return users, nil
	}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	for email, u := range users {
		u.email = email
	}
	return users, nil
}

// EncodeUsers writes the document to w with emails in sorted order and a
// stable field order inside each record, indented for readability.
func EncodeUsers(w io.Writer, users map[string]*User) error {
	emails := make([]string, 0, len(users))
	for email := range users {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	var ow jsonObjectWriter
	for _, email := range emails {
		ow.Append(email, users[email])
	}
	compact, err := ow.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode users: %w", err)
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, compact, "", "    "); err != nil {
		return fmt.Errorf("could not indent users document: %w", err)
	}
	indented.WriteByte('\n')
	_, err = w.Write(indented.Bytes())
	return err
}

// Save rewrites the whole store. The document is written to a temporary file
// first and atomically renamed over the old one, so a crash mid-write cannot
// leave a truncated store behind.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("could not create temporary store file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeUsers(tmp, s.users); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("could not replace store %q: %w", s.path, err)
	}
	return nil
}

// User returns the record stored under email, or nil if unknown.
func (s *Store) User(email string) *User {
	return s.users[email]
}

// Has reports whether an account exists for email.
func (s *Store) Has(email string) bool {
	_, ok := s.users[email]
	return ok
}

// Len returns the number of accounts in the store.
func (s *Store) Len() int { return len(s.users) }

// Emails returns all registered emails in sorted order.
func (s *Store) Emails() []string {
	emails := make([]string, 0, len(s.users))
	for email := range s.users {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails
}

// put registers a record under its email.
func (s *Store) put(email string, u *User) {
	u.email = email
	s.users[email] = u
}
