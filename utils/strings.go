package utils

import "strings"

// SlugifyFolder turns arbitrary text into a storage-folder-safe slug.
func SlugifyFolder(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		default:
			// non-ASCII destination names keep their runes; object stores
			// handle unicode keys fine
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "unknown"
	}
	return b.String()
}
