package database

import "strings"

// SQLite reports constraint violations only through the error text, and the
// phrasing differs slightly between the cgo and pure-Go drivers behind
// sqliteshim. Matching on the shared substrings covers both.

// IsUniqueViolation reports whether err is a uniqueness (or primary key)
// constraint failure.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsForeignKeyViolation reports whether err is a referential-integrity
// failure.
func IsForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// IsConstraintViolation reports whether err is any constraint failure,
// including CHECK constraints.
func IsConstraintViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "constraint failed")
}
