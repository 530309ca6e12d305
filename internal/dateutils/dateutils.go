// Package dateutils resolves cell values of unknown shape (spreadsheet
// serial numbers, free text in several formats, ISO strings) into calendar
// dates, and provides the date helpers used by the schedule engine.
package dateutils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutSlashed  = "02/01/2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// resolveFormats is the ordered list of layouts tried against text input.
// Order matters: ambiguous strings like 03/04/2024 resolve day-first
// because the European layouts come before the US one.
var resolveFormats = []string{
	DateLayoutEuropean, // DD.MM.YYYY
	DateLayoutSlashed,  // DD/MM/YYYY
	DateLayoutISO,      // YYYY-MM-DD
	DateLayoutUS,       // MM/DD/YYYY
	DateLayoutFull,
	"2006-01-02T15:04:05Z07:00",
	"02-01-2006",
	"2.1.2006",
	"2006/01/02",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// serialEpoch is spreadsheet day zero: the nominal 1900 epoch minus one
// day, shifted one more day to keep the historical 1900 leap-year bug.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// minTextSerial guards serial detection in text cells: digit-only cells
// this large are spreadsheet serials (1954 onward), never literal years.
const minTextSerial = 20000

// Resolve parses a value of unknown shape into a calendar date. It never
// fails: empty, absent and unparseable values resolve to the current date,
// so a bad cell can never abort an import. Callers that need to flag bad
// dates must compare input and output themselves.
func Resolve(value interface{}) time.Time {
	return ResolveAt(value, time.Now())
}

// ResolveAt is Resolve with an explicit fallback date, for callers (and
// tests) that pin "now".
func ResolveAt(value interface{}, now time.Time) time.Time {
	switch v := value.(type) {
	case nil:
		return DateOnly(now)
	case time.Time:
		return DateOnly(v)
	case float64:
		return FromSerial(int(v))
	case float32:
		return FromSerial(int(v))
	case int:
		return FromSerial(v)
	case int64:
		return FromSerial(int(v))
	case string:
		return resolveText(v, now)
	default:
		return DateOnly(now)
	}
}

func resolveText(value string, now time.Time) time.Time {
	cleaned := CleanDateString(value)
	if cleaned == "" {
		return DateOnly(now)
	}

	// Spreadsheet exports sometimes leave date cells as raw serial text.
	if serial, err := strconv.ParseFloat(cleaned, 64); err == nil {
		if serial >= minTextSerial {
			return FromSerial(int(serial))
		}
	}

	for _, format := range resolveFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return DateOnly(t)
		}
	}

	return DateOnly(now)
}

// FromSerial converts a spreadsheet serial day number to a calendar date
// using the 1899-12-30 epoch rule.
func FromSerial(serial int) time.Time {
	return serialEpoch.AddDate(0, 0, serial)
}

// ToSerial re-encodes a calendar date as a spreadsheet serial day number
// with the same epoch rule, so FromSerial(ToSerial(d)) == DateOnly(d).
func ToSerial(date time.Time) int {
	return int(DateOnly(date).Sub(serialEpoch).Hours() / 24)
}

// CleanDateString trims a date string and collapses repeated whitespace.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	re := regexp.MustCompile(`\s+`)
	return re.ReplaceAllString(dateStr, " ")
}

// DateOnly strips the time-of-day component, normalizing to midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CompareDates compares two dates ignoring time of day and returns:
//
//	-1 if date1 is before date2
//	 0 if date1 is equal to date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	date1 = DateOnly(date1)
	date2 = DateOnly(date2)

	if date1.Before(date2) {
		return -1
	} else if date1.After(date2) {
		return 1
	}
	return 0
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// AddMonths advances a date by the given number of calendar months,
// clamping to the last day of the target month instead of letting the
// 31st spill into the month after.
func AddMonths(date time.Time, months int) time.Time {
	target := date.AddDate(0, months, 0)
	// time.AddDate normalizes Jan 31 + 1 month to Mar 2/3; detect the
	// spill by checking the day-of-month survived.
	if target.Day() != date.Day() {
		target = time.Date(target.Year(), target.Month(), 1, 0, 0, 0, 0, date.Location()).AddDate(0, 0, -1)
	}
	return target
}
