// Package storage provides the profile-scoped key-value store the
// core state lives in. Values are opaque JSON strings; the store does
// no validation.
//
// The interface enforces the never-throw contract the services rely
// on: a missing or unreadable value is (_, false), a failed write is
// false, and nothing here ever returns an error to a caller.
package storage

import "github.com/sirupsen/logrus"

// Store is the persistence surface the core services depend on.
// Implementations must scope keys to a single user profile.
type Store interface {
	// Get returns the stored value and whether it was present.
	Get(key string) (string, bool)
	// Set stores the value, reporting success.
	Set(key, value string) bool
	// Remove deletes the key, reporting success. Removing an absent
	// key is a success.
	Remove(key string) bool
}

// Log carries the package's swallowed-error diagnostics. Persistence
// failures degrade to empty reads and no-op writes; the only trace is
// a debug line here.
var Log = logrus.New()
