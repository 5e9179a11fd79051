// Package identity provides ports.IDGenerator implementations.
package identity

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// UUID generates random (version 4) UUIDs.
type UUID struct{}

// NewUUID returns the default generator.
func NewUUID() UUID {
	return UUID{}
}

// NewID returns a fresh random UUID string.
func (UUID) NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Fixed always returns the same identifier. Useful to address stubbed URLs in tests.
type Fixed string

// NewID returns the fixed identifier.
func (f Fixed) NewID() (string, error) {
	return string(f), nil
}

// Sequence hands out the given identifiers in order and fails once exhausted.
// Safe for concurrent use.
type Sequence struct {
	mu  sync.Mutex
	ids []string
	pos int
}

// NewSequence creates a Sequence over ids.
func NewSequence(ids ...string) *Sequence {
	return &Sequence{ids: ids}
}

// NewID returns the next identifier.
func (s *Sequence) NewID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos >= len(s.ids) {
		return "", fmt.Errorf("identity sequence exhausted after %d ids", len(s.ids))
	}
	id := s.ids[s.pos]
	s.pos++
	return id, nil
}
