package domain

import (
	"regexp"
	"strings"
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe slug from a display name: lowercase, every run of
// characters outside [a-z0-9] collapsed to one hyphen, no leading or trailing
// hyphens. The result may be empty.
func Slugify(name string) string {
	s := slugSeparators.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeSlug cleans a slug read from an external source: trimmed,
// lowercased, surrounding double quotes and carriage returns removed.
func NormalizeSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, `"`)
	return strings.ReplaceAll(s, "\r", "")
}

// NormalizeText trims surrounding whitespace and compresses runs of spaces
// into one. Case is preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
