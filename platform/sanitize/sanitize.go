// Package sanitize cleans user-provided listing text before it is stored.
package sanitize

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	inlineSpaceRe   = regexp.MustCompile(`[ \t]+`)
	blankLineRunsRe = regexp.MustCompile(`\n{3,}`)
)

// blockTags end a line when they close, so rich-text paragraphs survive as plain text.
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "br": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// StripHTML removes all HTML tags from a string, making it safe for text-only display.
func StripHTML(s string) string {
	result := textContent(s)
	// encoded tags survive the first pass
	if strings.ContainsRune(result, '<') {
		result = textContent(result)
	}
	return strings.TrimSpace(result)
}

func textContent(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		case html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if blockTags[string(name)] {
				b.WriteByte('\n')
			}
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == "br" {
				b.WriteByte('\n')
			}
		}
	}
}

// Line sanitizes a single-line field such as a title: HTML is stripped and
// all whitespace runs collapse to one space.
func Line(s string) string {
	return strings.Join(strings.Fields(StripHTML(s)), " ")
}

// Text sanitizes a multi-line field such as a description. Line breaks are kept,
// but runs of spaces collapse and more than one blank line is squeezed.
func Text(s string) string {
	result := strings.ReplaceAll(StripHTML(s), "\r\n", "\n")
	result = inlineSpaceRe.ReplaceAllString(result, " ")
	result = blankLineRunsRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// Tags sanitizes, lowercases and de-duplicates a tag list, keeping first-seen order.
// Empty tags are dropped and at most limit tags are returned when limit > 0.
func Tags(tags []string, limit int) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		clean := strings.ToLower(Line(tag))
		if clean == "" {
			continue
		}
		if _, dup := seen[clean]; dup {
			continue
		}
		if limit > 0 && len(out) == limit {
			break
		}
		seen[clean] = struct{}{}
		out = append(out, clean)
	}
	return out
}

// TextPtr is a helper for optional string pointers
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	result := Text(*s)
	return &result
}
