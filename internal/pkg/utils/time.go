package utils

import "time"

// AddDays shifts a date by n days (n may be negative) without mutating the input.
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// StartOfDay truncates a date to 00:00:00.000 in its own location.
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// EndOfDay moves a date to 23:59:59.999 in its own location.
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 999000000, date.Location())
}

// StartOfWeek returns midnight on the Sunday of the week containing date.
// Sunday is day index 0, matching the calendar the scheduling screens use.
func StartOfWeek(date time.Time) time.Time {
	shifted := AddDays(date, -int(date.Weekday()))
	return StartOfDay(shifted)
}

// StartOfMonth returns midnight on the 1st of the month containing date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// StartOfYear returns midnight on January 1 of the year containing date.
func StartOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), 1, 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns 23:59:59.999 on the last day of the month containing date.
func EndOfMonth(date time.Time) time.Time {
	firstOfNext := StartOfMonth(date).AddDate(0, 1, 0)
	return EndOfDay(AddDays(firstOfNext, -1))
}

// EndOfYear returns 23:59:59.999 on December 31 of the year containing date.
func EndOfYear(date time.Time) time.Time {
	return EndOfDay(time.Date(date.Year(), 12, 31, 0, 0, 0, 0, date.Location()))
}
