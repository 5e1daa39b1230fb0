package services

import (
	"math/rand"
	"strings"
)

// Pre-persist transformations for derived fields. These run explicitly in the
// services before calling the store, not as hooks on the persistence layer.

// Slugify lowercases a name and replaces spaces with hyphens.
func Slugify(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", "-"))
}

// GenerateSKU returns a random 6-digit stock keeping unit in [100000, 999999].
// Uniqueness is not guaranteed.
func GenerateSKU() int {
	return 100000 + rand.Intn(900000)
}

// FormatPhone strips spaces, hyphens and parentheses, keeping a leading plus.
func FormatPhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
