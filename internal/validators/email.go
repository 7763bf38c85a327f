package validators

import "strings"

// NormalizeEmail lowercases and trims an address so lookups and the unique
// index always see the canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
