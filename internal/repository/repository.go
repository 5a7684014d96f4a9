// Package repository holds the GORM data access for users and ledger transactions.
// Each method is one parameterized statement.
package repository

import (
	"errors" // Error matching

	"gorm.io/gorm" // GORM ORM library
)

var (
	// ErrNotFound is returned when a lookup matches no row or a delete affects none
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert or update violates a unique index
	ErrDuplicate = errors.New("duplicate record")
)

// translate maps driver-level errors to the package sentinels
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
