// Package slug maps titles to URL-safe identifiers.
package slug

import "strings"

// Generate lowercases the title, drops anything outside [a-z0-9 -],
// collapses whitespace and hyphen runs to a single hyphen, and trims
// leading/trailing hyphens.
//
// Pure and total, but collision-unaware: two titles that normalize the
// same produce the same slug. Uniqueness is the store's job (unique index
// per slugged collection).
func Generate(title string) string {
	lower := strings.ToLower(title)

	out := make([]rune, 0, len(lower))
	for _, ch := range lower {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			out = append(out, ch)
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '-':
			if len(out) > 0 && out[len(out)-1] != '-' {
				out = append(out, '-')
			}
		}
	}

	return strings.Trim(string(out), "-")
}
