// Package uuid wraps github.com/google/uuid for the random (version 4)
// identifiers the SSO signaling protocol expects clients to generate.
package uuid

import "github.com/google/uuid"

// UUID represents a UUID, aliased from github.com/google/uuid.UUID
type UUID = uuid.UUID

// New returns a new random UUIDv4. Panics if the system source of
// randomness fails.
func New() UUID {
	return uuid.New()
}

// NewString returns the string form of a new random UUIDv4.
func NewString() string {
	return uuid.NewString()
}

// NewRandom returns a new random UUIDv4 and any error encountered during
// generation.
func NewRandom() (UUID, error) {
	return uuid.NewRandom()
}

// Parse parses a UUID string into a UUID value. Returns an error if the
// string is not a valid UUID.
func Parse(s string) (UUID, error) {
	return uuid.Parse(s)
}

// MustParse parses a UUID string and panics if the string is not a valid UUID.
func MustParse(s string) UUID {
	return uuid.MustParse(s)
}

// IsV4 reports whether the given UUID is a version 4 UUID.
func IsV4(id UUID) bool {
	return id.Version() == uuid.Version(4)
}

// Nil is the zero UUID value.
var Nil = uuid.Nil
