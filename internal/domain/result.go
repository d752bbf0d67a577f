package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ResultKind discriminates the outcome of a calculation
type ResultKind string

const (
	KindValidationError ResultKind = "validation_error"
	KindSameDay         ResultKind = "same_day"
	KindSuccess         ResultKind = "success"
)

// Messages shown to the user for each non-success outcome
const (
	MsgMissingDate   = "Please select a date."
	MsgInvalidAmount = "Please enter a valid loan amount."
	MsgInvalidRate   = "Please enter a valid interest percentage."
	MsgFutureDate    = "Error: Selected date is in the future. Please select a past or current date."
	MsgSameDay       = "The date you selected is today."
)

// LoanSummary holds the simple-interest figures for a successful calculation
type LoanSummary struct {
	Principal          decimal.Decimal `json:"principal"`
	MonthlyRatePercent decimal.Decimal `json:"monthly_rate_percent"`
	TotalMonths        decimal.Decimal `json:"total_months"`
	Interest           decimal.Decimal `json:"interest"` // rounded to 2 places
	Total              decimal.Decimal `json:"total"`    // rounded to 2 places
}

// Result is the outcome of one calculation. Exactly one of Err (for
// KindValidationError) or Span (for KindSuccess) is meaningful; KindSameDay
// carries only its notice line.
type Result struct {
	Label string           `json:"label,omitempty"`
	Kind  ResultKind       `json:"kind"`
	Err   *ValidationError `json:"error,omitempty"`
	Span  *ElapsedSpan     `json:"span,omitempty"`
	Loan  *LoanSummary     `json:"loan,omitempty"`
	Lines []string         `json:"lines"`
}

// NewErrorResult wraps a validation error as a result
func NewErrorResult(kind ErrorKind) Result {
	verr := NewValidationError(kind)
	return Result{
		Kind:  KindValidationError,
		Err:   verr,
		Lines: []string{verr.Message},
	}
}

// NewSameDayResult returns the informational notice for a date equal to today
func NewSameDayResult() Result {
	return Result{
		Kind:  KindSameDay,
		Lines: []string{MsgSameDay},
	}
}

// IsError reports whether the result should be displayed with error styling
func (r Result) IsError() bool {
	return r.Kind == KindValidationError
}

// IsFutureDate reports whether the result is the future-date validation error
func (r Result) IsFutureDate() bool {
	return r.Err != nil && r.Err.Kind == ErrFutureDate
}

// Text joins the display lines into the single newline-separated result string
func (r Result) Text() string {
	return strings.Join(r.Lines, "\n")
}
