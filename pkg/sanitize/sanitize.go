// Package sanitize cleans free-text form fields before they are logged or
// forwarded to the email gateway.
package sanitize

import (
	"strings"
	"unicode"
)

// Clean removes every control character (including NUL) from s and trims
// leading and trailing whitespace. It is total and idempotent: applying it
// twice yields the same result as applying it once.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) || r == 0 {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
