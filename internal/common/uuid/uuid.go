package uuid

import (
	"github.com/google/uuid"
)

// UUID represents a UUID
type UUID = uuid.UUID

// NullUUID represents a UUID that may be NULL in the database
type NullUUID = uuid.NullUUID

// NewRandom returns a new random (version 7) UUID
func NewRandom() (UUID, error) {
	return uuid.NewV7()
}

// New returns a new random (version 7) UUID
func New() UUID {
	uuidv7, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return uuidv7
}

// Parse parses a UUID string
func Parse(s string) (UUID, error) {
	return uuid.Parse(s)
}

// MustParse parses a UUID string and panics if the string is not a valid UUID
func MustParse(s string) UUID {
	return uuid.MustParse(s)
}

// NullableString renders id for logging, or "" for the zero UUID.
func NullableString(id UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}

// Nil is the zero UUID
var Nil = uuid.Nil
