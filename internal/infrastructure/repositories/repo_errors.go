package repositories

import (
	"strings"
)

// isUniqueViolation detects unique-constraint failures from the postgres
// driver ("duplicate key value violates unique constraint") and the sqlite
// driver used in tests ("UNIQUE constraint failed").
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
