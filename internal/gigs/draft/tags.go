package draft

import (
	"slices"
	"strings"
)

// MaxTags is the most tags a listing can carry.
const MaxTags = 10

// Key is an input event on the tag field.
type Key int

const (
	KeyOther Key = iota
	KeyEnter
	KeyComma
	// KeyAdd is the explicit add button.
	KeyAdd
)

// TagInput keeps the pending text of the tag field apart from the committed tags.
type TagInput struct {
	pending string
	tags    []string
}

// NewTagInput returns a TagInput with tags committed in order under the usual rules.
func NewTagInput(tags []string) *TagInput {
	t := &TagInput{tags: make([]string, 0, MaxTags)}
	for _, tag := range tags {
		t.pending = tag
		t.Commit()
	}
	t.pending = ""
	return t
}

// SetPending replaces the text typed so far.
func (t *TagInput) SetPending(s string) {
	t.pending = s
}

func (t *TagInput) Pending() string {
	return t.pending
}

// Tags returns a copy of the committed tags.
func (t *TagInput) Tags() []string {
	return slices.Clone(t.tags)
}

// HandleKey commits on Enter, comma or the add button. It reports whether the
// key's character must be kept out of the input, which is true for Enter and comma.
func (t *TagInput) HandleKey(k Key) bool {
	switch k {
	case KeyEnter, KeyComma:
		t.Commit()
		return true
	case KeyAdd:
		t.Commit()
		return false
	default:
		return false
	}
}

// Commit appends the trimmed, lowercased pending text and clears it. Empty
// text, a tag already present or a full list make it a no-op.
func (t *TagInput) Commit() bool {
	tag := strings.ToLower(strings.TrimSpace(t.pending))
	if tag == "" || slices.Contains(t.tags, tag) || len(t.tags) >= MaxTags {
		return false
	}
	t.tags = append(t.tags, tag)
	t.pending = ""
	return true
}

// Remove drops the tag that matches exactly.
func (t *TagInput) Remove(tag string) {
	t.tags = slices.DeleteFunc(t.tags, func(existing string) bool { return existing == tag })
}
