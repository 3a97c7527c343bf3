// Package sysenv abstracts process environment lookups for testability.
// Production code uses the Env interface; tests inject FakeEnv from testutil.
package sysenv

import "os"

// Env abstracts access to environment variables and the user's home directory.
type Env interface {
	// Getenv returns the value of the environment variable named by key,
	// or an empty string when it is unset.
	Getenv(key string) string

	// UserHomeDir returns the current user's home directory.
	UserHomeDir() (string, error)
}

// OS reads from the real process environment.
type OS struct{}

var _ Env = OS{}

// Getenv delegates to os.Getenv.
func (OS) Getenv(key string) string { return os.Getenv(key) }

// UserHomeDir delegates to os.UserHomeDir.
func (OS) UserHomeDir() (string, error) { return os.UserHomeDir() }
