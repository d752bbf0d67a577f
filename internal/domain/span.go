package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DaysPerMonth is the divisor used to turn leftover days into a fraction of a month
// when accruing interest. It is an approximation, not a calendar length.
const DaysPerMonth = 30

// ElapsedSpan is the calendar-aware difference between a past date and today
type ElapsedSpan struct {
	Years  int `json:"years" yaml:"years"`
	Months int `json:"months" yaml:"months"` // 0-11
	Days   int `json:"days" yaml:"days"`
}

// IsZero reports whether the span covers no time at all
func (s ElapsedSpan) IsZero() bool {
	return s.Years == 0 && s.Months == 0 && s.Days == 0
}

// WholeMonths returns years*12 + months
func (s ElapsedSpan) WholeMonths() int {
	return s.Years*12 + s.Months
}

// TotalMonths returns the span as months with days as a fraction of a 30-day month.
func (s ElapsedSpan) TotalMonths() decimal.Decimal {
	whole := decimal.NewFromInt(int64(s.WholeMonths()))
	if s.Days == 0 {
		return whole
	}
	return whole.Add(decimal.NewFromInt(int64(s.Days)).Div(decimal.NewFromInt(DaysPerMonth)))
}

// Phrase renders the nonzero components joined by " and ", e.g.
// "2 years and 3 months and 10 days". An all-zero span renders as "0 days".
func (s ElapsedSpan) Phrase() string {
	var parts []string
	if s.Years > 0 {
		parts = append(parts, pluralize(s.Years, "year"))
	}
	if s.Months > 0 {
		parts = append(parts, pluralize(s.Months, "month"))
	}
	if s.Days > 0 {
		parts = append(parts, pluralize(s.Days, "day"))
	}
	if len(parts) == 0 {
		return "0 days"
	}
	return strings.Join(parts, " and ")
}

func (s ElapsedSpan) String() string {
	return s.Phrase()
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
