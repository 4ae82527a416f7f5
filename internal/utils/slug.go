package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// Slugify turns a display title into a URL-safe slug: lowercase ASCII
// letters and digits, runs of anything else collapsed into single hyphens,
// leading and trailing hyphens trimmed. Deterministic for a given input.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "ajussi"
	}
	return slug
}

// SlugCandidate returns the n-th candidate for a base slug: the base itself
// for n <= 1, then "base-2", "base-3", and so on for collisions.
func SlugCandidate(base string, n int) string {
	if n <= 1 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}
