// Package store implements the LightBnB data-access operations over an
// injected gorm session.
package store

import (
	"time"

	"gorm.io/gorm"
)

// DefaultLimit is used whenever a caller passes a non-positive limit.
const DefaultLimit = 10

// Store runs the user, reservation and property queries.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the clock used to decide which reservations have ended.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a Store on top of db. The caller owns db and closes it.
func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{
		db:  db,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
