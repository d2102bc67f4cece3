package sanitizer

import "strings"

const maxNameLength = 100

// SanitizeName trims surrounding whitespace, collapses inner runs of
// whitespace to a single space and caps the length. Applied to renter
// first and last names before validation.
func SanitizeName(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > maxNameLength {
		s = s[:maxNameLength]
	}
	return s
}
