package calculation

import (
	"fmt"
	"strings"
	"time"

	"github.com/rgehrsitz/accrue/internal/domain"
)

// DateLayout is the ISO-8601 calendar date accepted for the selected date
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string as midnight in loc
func ParseDate(text string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(text), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", text, err)
	}
	return t, nil
}

// Midnight strips the time of day from t, keeping its wall-clock date in loc
func Midnight(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// daysInMonthBefore returns the length of the month preceding (year, month)
func daysInMonthBefore(year int, month time.Month, loc *time.Location) int {
	// Day 0 of a month normalizes to the last day of the previous one.
	return time.Date(year, month, 0, 0, 0, 0, 0, loc).Day()
}

// ElapsedBetween returns the calendar difference from selected to today.
// Both arguments are reduced to their dates first. Missing days are borrowed
// from the month before today's month (and the one before that, when a
// short February is not enough), then missing months from the years.
func ElapsedBetween(selected, today time.Time) (domain.ElapsedSpan, error) {
	loc := today.Location()
	selected = Midnight(selected, loc)
	today = Midnight(today, loc)

	if selected.After(today) {
		return domain.ElapsedSpan{}, domain.NewValidationError(domain.ErrFutureDate)
	}

	years := today.Year() - selected.Year()
	months := int(today.Month()) - int(selected.Month())
	days := today.Day() - selected.Day()

	for borrowed := 0; days < 0; borrowed++ {
		months--
		days += daysInMonthBefore(today.Year(), today.Month()-time.Month(borrowed), loc)
	}

	if months < 0 {
		years--
		months += 12
	}

	return domain.ElapsedSpan{Years: years, Months: months, Days: days}, nil
}
