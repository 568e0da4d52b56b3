package phone

import "testing"

func TestParseE164(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		region  string
		want    string
		wantErr bool
	}{
		{"dutch mobile local format", "06 12345678", "NL", "+31612345678", false},
		{"already international", "+31 20 123 4567", "", "+31201234567", false},
		{"belgian with region", "0470 12 34 56", "be", "+32470123456", false},
		{"empty", "   ", "NL", "", false},
		{"garbage", "not-a-number", "NL", "", true},
	}

	for _, tc := range cases {
		got, err := ParseE164(tc.input, tc.region)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error", tc.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestNormalizeE164FallsBackToInput(t *testing.T) {
	if got := NormalizeE164("  12 "); got != "12" {
		t.Fatalf("expected trimmed input, got %q", got)
	}
}
