package domain

import "strings"

type Volunteer struct {
	ID    string
	Email string
	Name  string
}

// NormalizeEmail returns the form used for every email comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
