package service

import (
	"regexp"
	"time"
)

// The entered strings are stored on the order exactly as typed, so the
// format is pinned down hard: two-digit day, two-digit month, four-digit
// year for dates, 24-hour HH:MM for times. time.Parse alone is too
// lenient (it accepts "9.5.2025"), so the shape is checked first and the
// parse then rejects impossible calendar values like 31.02.2025.
var (
	datePattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

const (
	dateLayout = "02.01.2006"
	timeLayout = "15:04"
)

// ValidOrderDate reports whether s is an exactly formatted DD.MM.YYYY
// string naming a real calendar date.
func ValidOrderDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ValidOrderTime reports whether s is an exactly formatted 24-hour HH:MM
// string between 00:00 and 23:59.
func ValidOrderTime(s string) bool {
	if !timePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(timeLayout, s)
	return err == nil
}
