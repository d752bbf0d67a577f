package calculation

import (
	"fmt"
	"strings"
	"time"

	"github.com/rgehrsitz/accrue/internal/domain"
	"github.com/rgehrsitz/accrue/internal/numfmt"
	"github.com/shopspring/decimal"
)

// Clock returns the current instant; only its local date is used
type Clock func() time.Time

// Calculator computes elapsed spans and simple interest from raw form input
type Calculator struct {
	Variant  domain.Variant
	Clock    Clock
	Location *time.Location
	Format   numfmt.Format
	Logger   Logger
}

// Option configures a Calculator
type Option func(*Calculator)

// WithVariant selects full or date-only behaviour
func WithVariant(v domain.Variant) Option {
	return func(c *Calculator) { c.Variant = v }
}

// WithClock replaces time.Now as the source of "today"
func WithClock(clock Clock) Option {
	return func(c *Calculator) { c.Clock = clock }
}

// WithLocation sets the zone whose wall-clock date defines "today"
func WithLocation(loc *time.Location) Option {
	return func(c *Calculator) { c.Location = loc }
}

// WithNumberFormat sets the currency and grouping used in display lines
func WithNumberFormat(f numfmt.Format) Option {
	return func(c *Calculator) { c.Format = f }
}

// WithLogger sets the logger; nil installs NopLogger
func WithLogger(l Logger) Option {
	return func(c *Calculator) { c.SetLogger(l) }
}

// NewCalculator creates a full-variant calculator using the local date and rupee display
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		Variant:  domain.VariantFull,
		Clock:    time.Now,
		Location: time.Local,
		Format:   numfmt.Default(),
		Logger:   NopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewCalculatorFromConfig builds a calculator from a validated configuration.
// Extra options are applied after the configuration.
func NewCalculatorFromConfig(cfg *domain.Configuration, opts ...Option) (*Calculator, error) {
	if cfg == nil {
		return NewCalculator(opts...), nil
	}

	locale, symbol := cfg.Locale, cfg.CurrencySymbol
	if locale == "" {
		locale = numfmt.DefaultLocale
	}
	if symbol == "" {
		symbol = numfmt.DefaultCurrencySymbol
	}
	format, err := numfmt.ForLocale(locale, symbol)
	if err != nil {
		return nil, err
	}

	variant := cfg.Variant
	if variant == "" {
		variant = domain.VariantFull
	}

	loc, err := LoadLocation(cfg.Location)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithVariant(variant),
		WithNumberFormat(format),
		WithLocation(loc),
	}
	return NewCalculator(append(base, opts...)...), nil
}

// LoadLocation resolves a zone name; empty and "Local" mean the system zone
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown location %q: %w", name, err)
	}
	return loc, nil
}

// SetLogger sets the logger; nil installs NopLogger
func (c *Calculator) SetLogger(l Logger) {
	if l == nil {
		c.Logger = NopLogger{}
		return
	}
	c.Logger = l
}

// Today returns the current date at midnight in the calculator's location
func (c *Calculator) Today() time.Time {
	return Midnight(c.Clock(), c.Location)
}

// Compute validates the raw inputs and returns the outcome. It never fails:
// invalid input becomes a validation-error result. Today is read once.
func (c *Calculator) Compute(selectedDateText, principalText, ratePercentText string) domain.Result {
	return c.ComputeAt(c.Today(), selectedDateText, principalText, ratePercentText)
}

// ComputeAt is Compute against a caller-supplied today
func (c *Calculator) ComputeAt(today time.Time, selectedDateText, principalText, ratePercentText string) domain.Result {
	today = Midnight(today, c.Location)
	c.Logger.Debugf("computing for today=%s variant=%s", today.Format(DateLayout), c.Variant)

	result := c.compute(today, selectedDateText, principalText, ratePercentText)
	if result.Err != nil {
		c.Logger.Debugf("validation failed: %s", result.Err.Kind)
	} else {
		c.Logger.Debugf("result: %s", result.Kind)
	}
	return result
}

// ComputeRequests runs every request against the same today
func (c *Calculator) ComputeRequests(requests []domain.Request) []domain.Result {
	today := c.Today()
	results := make([]domain.Result, 0, len(requests))
	for _, req := range requests {
		r := c.ComputeAt(today, req.Date, req.Amount, req.Rate)
		r.Label = req.Label
		results = append(results, r)
	}
	return results
}

func (c *Calculator) compute(today time.Time, dateText, principalText, rateText string) domain.Result {
	if strings.TrimSpace(dateText) == "" {
		return domain.NewErrorResult(domain.ErrMissingDate)
	}

	var principal, rate decimal.Decimal
	withLoan := c.Variant != domain.VariantDateOnly
	if withLoan {
		var ok bool
		principal, ok = parseNumber(principalText)
		if !ok || !principal.IsPositive() {
			return domain.NewErrorResult(domain.ErrInvalidAmount)
		}
		rate, ok = parseNumber(rateText)
		if !ok || rate.IsNegative() {
			return domain.NewErrorResult(domain.ErrInvalidRate)
		}
	}

	selected, err := ParseDate(dateText, c.Location)
	if err != nil {
		c.Logger.Warnf("%v", err)
		return domain.NewErrorResult(domain.ErrMissingDate)
	}

	span, err := ElapsedBetween(selected, today)
	if err != nil {
		return domain.NewErrorResult(domain.ErrFutureDate)
	}

	if span.IsZero() {
		return domain.NewSameDayResult()
	}

	result := domain.Result{
		Kind:  domain.KindSuccess,
		Span:  &span,
		Lines: []string{fmt.Sprintf("The selected date was %s ago.", span.Phrase())},
	}

	if withLoan {
		loan := NewLoanSummary(principal, rate, span)
		result.Loan = loan
		result.Lines = append(result.Lines, c.loanLines(loan)...)
	}

	return result
}

func (c *Calculator) loanLines(loan *domain.LoanSummary) []string {
	return []string{
		"Loan Amount: " + c.Format.Currency(loan.Principal),
		"Monthly Interest Rate: " + c.Format.Percent(loan.MonthlyRatePercent),
		"Interest Accrued: " + c.Format.Currency(loan.Interest),
		"Total Amount Payable: " + c.Format.Currency(loan.Total),
	}
}

// Bounds on numeric form input. Exponent notation is accepted, but values
// outside these bounds are rejected before any arithmetic expands them.
const (
	maxInputIntegerDigits  = 12
	maxInputFractionDigits = 8
)

// parseNumber reads a decimal from form text; empty text is not a number
func parseNumber(text string) (decimal.Decimal, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, false
	}
	// Checked on coefficient and exponent only; comparing against a bound
	// would rescale a value like 1e9999999 digit by digit.
	exp := int(d.Exponent())
	if exp < -maxInputFractionDigits || d.NumDigits()+exp > maxInputIntegerDigits {
		return decimal.Zero, false
	}
	return d, true
}

// ParseAmount is the exported form of the principal parser, for live hints
func ParseAmount(text string) (decimal.Decimal, bool) {
	d, ok := parseNumber(text)
	if !ok || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}
