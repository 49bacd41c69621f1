package class

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	classDateRegex = regexp.MustCompile(`(\d+)년\s*(\d{1,2})월\s*(\d{1,2})일`)
	timeRangeRegex = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*-\s*(\d{1,2}):(\d{2})`)
)

// TimeOfDay is a wall-clock time within a day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) on(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// ParseClassDate extracts a calendar day from a localized date string such
// as "2025년 10월 22일". Only this one pattern is supported.
func ParseClassDate(s string) (time.Time, bool) {
	m := classDateRegex.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}

// ParseTimeRange extracts the start and end of a range such as "10:45 - 11:30".
func ParseTimeRange(s string) (start, end TimeOfDay, ok bool) {
	m := timeRangeRegex.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, TimeOfDay{}, false
	}
	start.Hour, _ = strconv.Atoi(m[1])
	start.Minute, _ = strconv.Atoi(m[2])
	end.Hour, _ = strconv.Atoi(m[3])
	end.Minute, _ = strconv.Atoi(m[4])
	return start, end, true
}

// StatusAt classifies a class as upcoming, ongoing or completed at `now`.
// Both range boundaries count as ongoing. Unparseable date or time yields
// StatusUpcoming; the published site fails open here and callers depend on
// never seeing those entries as completed.
func StatusAt(dateStr, timeStr string, now time.Time) Status {
	day, ok := ParseClassDate(dateStr)
	if !ok {
		return StatusUpcoming
	}
	start, end, ok := ParseTimeRange(timeStr)
	if !ok {
		return StatusUpcoming
	}

	classStart := start.on(day)
	classEnd := end.on(day)

	switch {
	case now.Before(classStart):
		return StatusUpcoming
	case !now.After(classEnd):
		return StatusOngoing
	default:
		return StatusCompleted
	}
}

// SortableDate normalizes a localized date string to YYYY-MM-DD.
// Unparseable input is returned unchanged, which sorts wrongly against
// normalized dates; kept for parity with the published site.
func SortableDate(dateStr string) string {
	day, ok := ParseClassDate(dateStr)
	if !ok {
		return dateStr
	}
	return fmt.Sprintf("%04d-%02d-%02d", day.Year(), day.Month(), day.Day())
}

// InDateRange reports whether a class date falls within the inclusive
// [startDate, endDate] bounds (YYYY-MM-DD). Empty bounds do not constrain.
func InDateRange(dateStr, startDate, endDate string) bool {
	if startDate == "" && endDate == "" {
		return true
	}

	d := SortableDate(dateStr)
	if startDate != "" && d < startDate {
		return false
	}
	if endDate != "" && d > endDate {
		return false
	}
	return true
}
