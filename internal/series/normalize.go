package series

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CanonicalLayout is the timestamp form all chronological operations assume.
// Feed timestamps carry no zone information and are treated as UTC wall
// clock throughout the pipeline.
const CanonicalLayout = "2006-01-02 15:04"

// yearRolloverWindow is how far into the future a tentative same-year
// timestamp may land before the year is decremented. Two days of slack
// covers readings logged in late December and processed after New Year.
const yearRolloverWindow = 48 * time.Hour

var (
	// canonicalRe matches an already-normalized timestamp, e.g. "2026-01-03 10:00".
	canonicalRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`)

	// clockMonthDayRe matches the yearless feed form "HH:MM, Mon DD" or
	// "HH:MM Mon DD", e.g. "22:40, Dec 31".
	clockMonthDayRe = regexp.MustCompile(`^(\d{1,2}):(\d{2}),?\s+([A-Za-z]{3})\s+(\d{1,2})$`)
)

// fallbackLayouts are tried in order for inputs that are neither canonical
// nor in the yearless clock/month/day form.
var fallbackLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02 15:04",
	"2006/01/02 15:04:05",
	"01/02/2006 15:04",
	"1/2/2006 15:04",
	"Jan 2, 2006 15:04",
	"2 Jan 2006 15:04",
	"2006-01-02",
}

// NormalizeTimestamp converts a raw feed timestamp into canonical
// YYYY-MM-DD HH:MM form. Already-canonical input is returned unchanged,
// the yearless "HH:MM, Mon DD" form gets its year inferred relative to
// now, and any other parseable layout is reformatted. Unparseable input is
// returned with its whitespace collapsed so consumers can still display
// it; chronological operations on such a value are undefined.
func NormalizeTimestamp(raw string, now time.Time) string {
	cleaned := strings.Join(strings.Fields(raw), " ")
	if cleaned == "" {
		return ""
	}

	if canonicalRe.MatchString(cleaned) {
		return cleaned
	}

	if m := clockMonthDayRe.FindStringSubmatch(cleaned); m != nil {
		if t, ok := resolveClockMonthDay(m, now); ok {
			return t.Format(CanonicalLayout)
		}
		return cleaned
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.UTC().Format(CanonicalLayout)
		}
	}

	return cleaned
}

// resolveClockMonthDay builds a timestamp from an "HH:MM, Mon DD" match.
// The feed omits the year, so the reading is assumed to belong to the
// current year; a tentative timestamp more than 48 hours in the future
// means it was logged before a year boundary the process has since
// crossed, and the year is decremented by one.
func resolveClockMonthDay(m []string, now time.Time) (time.Time, bool) {
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[4])

	month, ok := parseMonthAbbrev(m[3])
	if !ok || hour > 23 || minute > 59 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	t := time.Date(now.Year(), month, day, hour, minute, 0, 0, time.UTC)
	if t.Sub(now) > yearRolloverWindow {
		t = time.Date(now.Year()-1, month, day, hour, minute, 0, 0, time.UTC)
	}
	return t, true
}

// parseMonthAbbrev resolves a three-letter month abbreviation in any casing.
func parseMonthAbbrev(s string) (time.Month, bool) {
	if len(s) != 3 {
		return 0, false
	}
	s = strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
	t, err := time.Parse("Jan", s)
	if err != nil {
		return 0, false
	}
	return t.Month(), true
}

// ParseCanonical parses a canonical timestamp as UTC. ok is false for any
// value not in canonical form, including unparseable strings normalization
// passed through as-is.
func ParseCanonical(s string) (time.Time, bool) {
	t, err := time.Parse(CanonicalLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
