// Package types implements special types for the expenses tracker.
package types

import "time"

// Span is the calendar distance between two dates, expressed in whole
// years, whole months and remainder days. It mirrors what a human would
// answer when asked "how long is it from A to B?", not a day count.
type Span struct {
	Years  int
	Months int
	Days   int
}

// Between returns the calendar span from start to end.
//
// The span is normalized so that Months is in [0, 11] and Days is the
// number of days that do not fit into a whole month. Month steps clamp
// to the last day of shorter months, so Jan 31 plus one month is Feb 29,
// not Mar 2. When end is before start, the zero Span is returned.
func Between(start, end time.Time) Span {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return Span{}
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if addMonths(start, months).After(end) {
		months--
	}

	days := int(end.Sub(addMonths(start, months)) / (24 * time.Hour))

	return Span{Years: months / 12, Months: months % 12, Days: days}
}

// addMonths adds n months to a date, clamping the day of month to the
// length of the target month.
func addMonths(t time.Time, n int) time.Time {
	year := t.Year()
	month := int(t.Month()) - 1 + n

	year += month / 12
	month %= 12
	if month < 0 {
		month += 12
		year--
	}

	day := t.Day()
	if last := daysIn(year, time.Month(month+1)); day > last {
		day = last
	}

	return time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
}

// TotalMonths returns the number of monthly buckets the span covers.
// A partial trailing month counts as a full bucket.
func (s Span) TotalMonths() int {
	months := s.Years*12 + s.Months
	if s.Days > 0 {
		months++
	}
	return months
}

// TotalYears returns the number of yearly buckets the span covers.
// Remainder months round the count up, remainder days are ignored.
func (s Span) TotalYears() int {
	years := s.Years
	if s.Months > 0 {
		years++
	}
	return years
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Day truncates a timestamp to its calendar date in UTC. Expense dates
// carry no time-of-day semantics, so everything is stored this way.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a date string in RFC 3339 full-date format (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
