// Package repository holds the gorm data access used by the services.
// Lookups of a single row return ErrNotFound when nothing matches and
// inserts that collide with a unique index return ErrDuplicate.
package repository

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a row lookup matches nothing
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a unique index
var ErrDuplicate = errors.New("duplicate record")

// translate maps driver errors onto the package sentinels
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// like wraps keyword for a SQL LIKE containment match
func like(keyword string) string {
	return "%" + keyword + "%"
}
