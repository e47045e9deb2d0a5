// Package store provides durable storage of visitor preferences on SQLite or PostgreSQL.
package store

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when a preference is not found in the store.
var ErrNotFound = errors.New("preference not found")

// ErrInvalidKey is returned when the visitor or the key is empty.
var ErrInvalidKey = errors.New("visitor and key are required")

// Pref is a single stored preference.
type Pref struct {
	Visitor   string    `db:"visitor"`
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// RWLocker is a lock used to serialize access to the database.
type RWLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// noopLocker is used for databases handling their own concurrency.
type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}

// validKey checks that visitor and key are usable, trimming surrounding whitespace.
func validKey(visitor, key string) (v, k string, err error) {
	v, k = strings.TrimSpace(visitor), strings.TrimSpace(key)
	if v == "" || k == "" {
		return "", "", ErrInvalidKey
	}
	return v, k, nil
}
