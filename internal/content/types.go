package content

import (
	"strings"
	"time"
)

// TimeLayout is the millisecond ISO-8601 layout used for every stored
// timestamp (createdAt, updatedAt, submittedAt). Fixed-width so that
// lexicographic order equals chronological order.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// Timestamp renders t in the canonical stored form.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Base carries the identity and lifecycle stamps shared by all indexed
// records. ID is assigned once on create and never reassigned; CreatedAt is
// preserved across updates; UpdatedAt is refreshed on every mutation.
type Base struct {
	ID        string `json:"id"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Metadata exposes the embedded stamps to the generic repository.
func (b *Base) Metadata() *Base { return b }

var dateLayouts = []string{
	"2006-01-02",
	TimeLayout,
	time.RFC3339,
}

// ParseDate parses a stored date string. Dates are admin-supplied and mostly
// calendar dates ("2024-01-10"), but full timestamps are accepted too.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CompareDates orders two date strings chronologically when both parse,
// falling back to lexicographic order for free-form values.
func CompareDates(a, b string) int {
	ta, okA := ParseDate(a)
	tb, okB := ParseDate(b)
	if okA && okB {
		switch {
		case ta.Before(tb):
			return -1
		case ta.After(tb):
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}
