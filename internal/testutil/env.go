package testutil

import (
	"errors"

	"github.com/hbjs97/pushover-cli/internal/sysenv"
)

// FakeEnv returns pre-configured environment values for testing.
type FakeEnv struct {
	// Vars maps environment variable names to values. Missing keys read as "".
	Vars map[string]string

	// Home is returned by UserHomeDir. If empty, UserHomeDir returns an error.
	Home string

	// Lookups records every key passed to Getenv, in order.
	Lookups []string
}

var _ sysenv.Env = (*FakeEnv)(nil)

// NewFakeEnv creates a FakeEnv rooted at home with no variables set.
func NewFakeEnv(home string) *FakeEnv {
	return &FakeEnv{
		Vars: make(map[string]string),
		Home: home,
	}
}

// Set adds or replaces an environment variable.
func (e *FakeEnv) Set(key, value string) *FakeEnv {
	e.Vars[key] = value
	return e
}

// Getenv looks up key in Vars.
func (e *FakeEnv) Getenv(key string) string {
	e.Lookups = append(e.Lookups, key)
	return e.Vars[key]
}

// UserHomeDir returns Home.
func (e *FakeEnv) UserHomeDir() (string, error) {
	if e.Home == "" {
		return "", errors.New("FakeEnv: home directory not configured")
	}
	return e.Home, nil
}

// Looked returns true if Getenv was called with key.
func (e *FakeEnv) Looked(key string) bool {
	for _, k := range e.Lookups {
		if k == key {
			return true
		}
	}
	return false
}
