package calculation

import (
	"github.com/rgehrsitz/accrue/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SimpleInterest accrues a flat monthly rate on principal over span:
//
//	interest = principal * rate/100 * (years*12 + months + days/30)
//
// The product is taken over 30-day month units and divided once at the end so
// whole-month spans stay exact. Both results are rounded to two places; total
// is rounded from the unrounded interest.
func SimpleInterest(principal, monthlyRatePercent decimal.Decimal, span domain.ElapsedSpan) (interest, total decimal.Decimal) {
	monthDays := decimal.NewFromInt(int64(span.WholeMonths()*domain.DaysPerMonth + span.Days))
	raw := principal.Mul(monthlyRatePercent).Mul(monthDays).
		Div(hundred.Mul(decimal.NewFromInt(domain.DaysPerMonth)))
	return raw.Round(2), principal.Add(raw).Round(2)
}

// NewLoanSummary computes the loan figures for span
func NewLoanSummary(principal, monthlyRatePercent decimal.Decimal, span domain.ElapsedSpan) *domain.LoanSummary {
	interest, total := SimpleInterest(principal, monthlyRatePercent, span)
	return &domain.LoanSummary{
		Principal:          principal,
		MonthlyRatePercent: monthlyRatePercent,
		TotalMonths:        span.TotalMonths(),
		Interest:           interest,
		Total:              total,
	}
}
