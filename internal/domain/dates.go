package domain

import (
	"fmt"
	"regexp"
	"time"
)

const (
	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"
	// ClockLayout is the wire format for times of day.
	ClockLayout = "15:04"
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)
)

// DateOf truncates t to midnight UTC of its UTC calendar day.
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole calendar days from -> to (negative if to is earlier).
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / 24)
}

// MonthBounds returns the first and last calendar day of t's month.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	d := DateOf(t)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// WeekID returns the ISO-8601 week identifier "YYYY-WW" for t.
func WeekID(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-%02d", year, week)
}

// ParseDate parses a strict YYYY-MM-DD string into a UTC date.
func ParseDate(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("date %q: want YYYY-MM-DD", s)
	}
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", s, err)
	}
	return d, nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// IsClock reports whether s is a 24-hour HH:mm time of day.
func IsClock(s string) bool {
	return clockPattern.MatchString(s)
}

// ParseClock parses HH:mm into the offset from midnight.
func ParseClock(s string) (time.Duration, error) {
	if !IsClock(s) {
		return 0, fmt.Errorf("time %q: want HH:mm", s)
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("time %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// ClockOf returns t's UTC time of day as the offset from midnight.
func ClockOf(t time.Time) time.Duration {
	return t.UTC().Sub(DateOf(t))
}
