package content

import (
	"testing"
	"time"
)

func TestTimestamp(t *testing.T) {
	in := time.Date(2024, 1, 10, 9, 30, 0, 500*int(time.Millisecond), time.UTC)
	got := Timestamp(in)
	want := "2024-01-10T09:30:00.500Z"
	if got != want {
		t.Errorf("Timestamp() = %q, want %q", got, want)
	}

	// Non-UTC inputs are normalized before formatting.
	loc := time.FixedZone("UTC+2", 2*3600)
	got = Timestamp(time.Date(2024, 1, 10, 11, 30, 0, 0, loc))
	want = "2024-01-10T09:30:00.000Z"
	if got != want {
		t.Errorf("Timestamp() = %q, want %q", got, want)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "calendar date", input: "2024-01-10", ok: true},
		{name: "stored timestamp", input: "2024-01-10T09:30:00.500Z", ok: true},
		{name: "rfc3339", input: "2024-01-10T09:30:00Z", ok: true},
		{name: "padded whitespace", input: "  2024-01-10  ", ok: true},
		{name: "free-form text", input: "Every Sunday", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseDate(tt.input)
			if ok != tt.ok {
				t.Errorf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
		})
	}
}

func TestCompareDates(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "earlier before later", a: "2024-01-10", b: "2024-03-15", want: -1},
		{name: "later after earlier", a: "2024-03-15", b: "2024-01-10", want: 1},
		{name: "equal dates", a: "2024-01-10", b: "2024-01-10", want: 0},
		{name: "mixed layouts", a: "2024-01-10", b: "2024-01-10T12:00:00Z", want: -1},
		{name: "unparseable falls back to lexicographic", a: "Easter", b: "Pentecost", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareDates(tt.a, tt.b)
			if sign(got) != tt.want {
				t.Errorf("CompareDates(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
