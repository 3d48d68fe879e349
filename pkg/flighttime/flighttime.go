package flighttime

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// isoDurationPattern matches the subset of ISO-8601 durations the shopping
// API emits: PT2H35M, PT45M, PT11H. Hours and minutes are both optional.
var isoDurationPattern = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)

// ParseISOMinutes converts a duration token like "PT2H35M" to total minutes.
// Absent components count as zero, so a malformed token yields 0 rather than
// an error: a single bad record must not abort rendering of a whole batch.
func ParseISOMinutes(token string) int {
	m := isoDurationPattern.FindStringSubmatch(token)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes
}

// FormatISODuration renders a duration token for display: "2h 35m", or just
// "45m" when there is no hour component.
func FormatISODuration(token string) string {
	total := ParseISOMinutes(token)
	return FormatMinutes(total)
}

// FormatMinutes renders a minute count the same way FormatISODuration does.
func FormatMinutes(total int) string {
	h := total / 60
	m := total % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// MinutesSinceMidnight returns hour*60+minute in the value's own clock. The
// shopping API already reports local airport time, so no zone conversion
// happens here.
func MinutesSinceMidnight(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

const dateLayout = "2006-01-02"

// AddDays shifts a date-only value ("YYYY-MM-DD") by n days, rolling over
// month and year boundaries. Used to build adjacent-date price hints.
func AddDays(date string, n int) (string, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return d.AddDate(0, 0, n).Format(dateLayout), nil
}

// localTimestampLayout is the zone-less layout the shopping API uses for
// segment departure/arrival times.
const localTimestampLayout = "2006-01-02T15:04:05"

// ParseLocalTimestamp parses a naive local timestamp such as
// "2025-03-14T06:25:00". The zero time is returned when parsing fails.
func ParseLocalTimestamp(s string) time.Time {
	t, err := time.Parse(localTimestampLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
