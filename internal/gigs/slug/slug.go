// Package slug builds URL-safe listing identifiers from titles.
package slug

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// MaxLength is the longest slug Slugify returns.
const MaxLength = 80

var (
	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	separators = regexp.MustCompile(`[\s_-]+`)
	wellFormed = regexp.MustCompile(`^[a-z0-9_]+(-[a-z0-9_]+)*$`)
)

// maxStoredLength bounds a slug including its timestamp suffix.
const maxStoredLength = MaxLength + 16

// Slugify lowercases and trims s, drops everything but word characters,
// whitespace and hyphens, collapses separator runs into one hyphen and cuts
// the result to MaxLength. The result never starts or ends with a hyphen.
func Slugify(s string) string {
	out := strings.TrimSpace(strings.ToLower(s))
	out = nonWord.ReplaceAllString(out, "")
	out = separators.ReplaceAllString(out, "-")
	out = strings.Trim(out, "-")
	if len(out) > MaxLength {
		out = strings.TrimRight(out[:MaxLength], "-")
	}
	return out
}

// Suffix is the base-36 Unix millisecond timestamp appended to new slugs.
func Suffix(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 36)
}

// Unique returns Slugify(title) + "-" + Suffix(now). A title that slugifies to
// nothing yields the bare suffix.
func Unique(title string, now time.Time) string {
	base := Slugify(title)
	if base == "" {
		return Suffix(now)
	}
	return base + "-" + Suffix(now)
}

// Valid reports whether s is already a well-formed slug: lowercase word
// characters joined by single hyphens, short enough to store.
func Valid(s string) bool {
	return len(s) <= maxStoredLength && wellFormed.MatchString(s)
}
