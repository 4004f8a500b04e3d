// Package uuid wraps google/uuid so that IDs can be bound from URI
// and query parameters by gin.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// NewString returns a new random UUID as string. It is used for
// installment group identifiers.
func NewString() string {
	return google_uuid.NewString()
}

// Parse parses s into a UUID.
func Parse(s string) (UUID, error) {
	parsed, err := google_uuid.Parse(s)
	if err != nil {
		return Nil, err
	}
	return UUID{parsed}, nil
}

// UnmarshalParam implements gin's BindUnmarshaler so that URIID and
// query filters can hold a UUID directly.
//
// An empty string is parsed into Nil.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := Parse(p)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}

// Pointer returns a pointer to the wrapped google UUID, or nil for Nil.
func (u UUID) Pointer() *google_uuid.UUID {
	if u == Nil {
		return nil
	}
	id := u.UUID
	return &id
}
