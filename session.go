package main

import (
	"errors"
	"fmt"
	"os"
)

// errNoSession indicates no session cookie has been saved yet.
var errNoSession = errors.New("no saved session cookie")

// sessionStore persists the session cookie as plaintext in a single file.
// The file holds the raw cookie bytes and nothing else, so anyone able to
// read the working directory can read the cookie.
type sessionStore struct {
	path string
}

func newSessionStore(path string) *sessionStore {
	return &sessionStore{path: path}
}

// save overwrites the session file with secret.
func (s *sessionStore) save(secret string) error {
	if err := os.WriteFile(s.path, []byte(secret), 0o644); err != nil {
		return fmt.Errorf("failed to write session cookie at %s: %w", s.path, err)
	}
	return nil
}

// load returns the saved session cookie exactly as stored.
func (s *sessionStore) load() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: there is no session cookie saved at %s, call aoc-fetch with -s <session-cookie> to download the problem input", errNoSession, s.path)
		}
		return "", fmt.Errorf("read session cookie at %s: %w", s.path, err)
	}
	return string(b), nil
}
