package domain

import "time"

// DateLayout — каноничный формат границы периода.
const DateLayout = "2006-01-02"

// dateLayouts tried in priority order by ParseDate.
var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"2006-01-02 15:04:05",
}

// ParseDate normalizes a period boundary: a time.Time passes through with the
// time-of-day truncated, a string is tried against the layouts above. Anything
// unparseable degrades to nil ("boundary unknown"), never an error.
func ParseDate(value any) *time.Time {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		return truncate(v)
	case *time.Time:
		if v == nil {
			return nil
		}
		return truncate(*v)
	case string:
		return ParseDateString(v)
	}
	return nil
}

// ParseDateString is the string branch of ParseDate.
func ParseDateString(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncate(t)
		}
	}
	return nil
}

// FormatDate renders a boundary back to its canonical form, "" for unknown.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// SameDate — null-aware equality of two boundaries.
func SameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func truncate(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
