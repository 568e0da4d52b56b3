package sanitize

import (
	"reflect"
	"testing"
)

func TestLine(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Logo   design ", "Logo design"},
		{"<b>Bold</b> title", "Bold title"},
		{"&lt;script&gt;alert(1)&lt;/script&gt;Hi", "alert(1)Hi"},
		{"line\nbreak", "line break"},
	}

	for _, tc := range cases {
		if got := Line(tc.in); got != tc.want {
			t.Fatalf("Line(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestTextKeepsParagraphs(t *testing.T) {
	got := Text("First  paragraph.\r\n\r\n\r\n\r\nSecond <i>one</i>.")
	want := "First paragraph.\n\nSecond one."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTextFromRichText(t *testing.T) {
	got := Text("<p>Logo   design</p><p>Two rounds<br>of revisions &amp; source files</p>")
	want := "Logo design\nTwo rounds\nof revisions & source files"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestStripHTMLKeepsLooseAngleBrackets(t *testing.T) {
	if got := StripHTML("5 < 6 and 7 > 3"); got != "5 < 6 and 7 > 3" {
		t.Fatalf("expected comparison text to survive, got %q", got)
	}
}

func TestTags(t *testing.T) {
	got := Tags([]string{" Logo ", "logo", "", "<b>Brand</b>", "Print"}, 2)
	want := []string{"logo", "brand"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
