package class

import "strings"

// Apply returns the subsequence of classes matching every active constraint
// in `f`. Input order is preserved and the input slice is never mutated, so
// applying the same filter twice yields the same result.
func Apply(classes []Class, f Filter) []Class {
	out := make([]Class, 0, len(classes))
	for _, c := range classes {
		if matches(c, f) {
			out = append(out, c)
		}
	}
	return out
}

func matches(c Class, f Filter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Title), q) &&
			!strings.Contains(strings.ToLower(c.Teacher), q) &&
			!strings.Contains(strings.ToLower(c.Description), q) {
			return false
		}
	}
	if len(f.Subjects) > 0 && !containsString(f.Subjects, c.Subject) {
		return false
	}
	if len(f.Grades) > 0 && !containsString(f.Grades, c.Grade) {
		return false
	}
	if len(f.Regions) > 0 && !containsString(f.Regions, c.Region) {
		return false
	}
	if len(f.Statuses) > 0 && !containsString(f.Statuses, string(c.Status)) {
		return false
	}
	if f.StartDate != "" || f.EndDate != "" {
		if !InDateRange(c.Date, f.StartDate, f.EndDate) {
			return false
		}
	}
	return true
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
