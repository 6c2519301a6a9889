package dateutil

import (
	"fmt"
	"time"
)

// DayMonthYearLayout is the layout used for birthdays (e.g. 05.01.1990 or 5.1.1990)
const DayMonthYearLayout = "2.1.2006"

// ISODateLayout is the layout used for reported dates
const ISODateLayout = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// DaysBetween returns the number of calendar days from one date to another.
// Negative when to is before from. Time of day is ignored.
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// IsLeapYear reports whether year has a February 29
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// ParseDayMonthYear parses a day.month.year date and rejects impossible
// calendar dates such as 31.02.2020.
func ParseDayMonthYear(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(DayMonthYearLayout, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q as DD.MM.YYYY: %w", dateStr, err)
	}
	return t, nil
}

// ParseDate parses date string in ISO (2006-01-02) or day.month.year format
func ParseDate(dateStr string) (time.Time, error) {
	if t, err := time.ParseInLocation(ISODateLayout, dateStr, time.Local); err == nil {
		return t, nil
	}
	if t, err := ParseDayMonthYear(dateStr); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unsupported date format: %q", dateStr)
}

// FormatISODate formats date as YYYY-MM-DD
func FormatISODate(date time.Time) string {
	return date.Format(ISODateLayout)
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
