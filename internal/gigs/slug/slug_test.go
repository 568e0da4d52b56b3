package slug

import (
	"strings"
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"I Will Design a Logo!!!", "i-will-design-a-logo"},
		{" ", ""},
		{"", ""},
		{"  Hello   World  ", "hello-world"},
		{"snake_case and--dashes", "snake-case-and-dashes"},
		{"--leading and trailing--", "leading-and-trailing"},
		{"Café & Bar", "caf-bar"},
		{"Web design 2024", "web-design-2024"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugifyLengthAndEdges(t *testing.T) {
	long := strings.Repeat("abcdefghi ", 20)
	got := Slugify(long)

	if len(got) > MaxLength {
		t.Fatalf("expected at most %d characters, got %d", MaxLength, len(got))
	}
	if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
		t.Fatalf("expected no edge hyphens, got %q", got)
	}
}

func TestUnique(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	if got := Unique("Professional logo design for startups", now); got != "professional-logo-design-for-startups-"+Suffix(now) {
		t.Fatalf("unexpected slug %q", got)
	}
	if got := Unique("!!!", now); got != Suffix(now) {
		t.Fatalf("expected bare suffix for empty base, got %q", got)
	}
	if Suffix(now) != "loyw3v28" {
		t.Fatalf("unexpected base36 suffix %q", Suffix(now))
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"i-will-design-a-logo-loyw3v28", true},
		{"loyw3v28", true},
		{"", false},
		{"Upper-Case", false},
		{"double--hyphen", false},
		{"-leading", false},
		{"spaces here", false},
		{strings.Repeat("a", 97), false},
	}

	for _, tc := range cases {
		if got := Valid(tc.in); got != tc.want {
			t.Fatalf("Valid(%q): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}
