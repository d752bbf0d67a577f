package domain

// Variant selects which inputs the calculator takes into account
type Variant string

const (
	// VariantFull validates principal and rate and reports interest
	VariantFull Variant = "full"
	// VariantDateOnly ignores principal and rate and reports only the elapsed span
	VariantDateOnly Variant = "date_only"
)

// Valid reports whether v names a known variant
func (v Variant) Valid() bool {
	return v == VariantFull || v == VariantDateOnly
}

// Configuration controls how calculations are run and displayed
type Configuration struct {
	Variant        Variant `yaml:"variant" json:"variant"`
	Locale         string  `yaml:"locale" json:"locale"`
	CurrencySymbol string  `yaml:"currency_symbol" json:"currency_symbol"`
	// Location is an IANA zone name or "Local"; only the wall-clock date is used.
	Location string `yaml:"location" json:"location"`
}

// Request is one calculation in a batch file
type Request struct {
	Label  string `yaml:"label" json:"label"`
	Date   string `yaml:"date" json:"date"`
	Amount string `yaml:"amount" json:"amount"`
	Rate   string `yaml:"rate" json:"rate"`
}

// RequestSet is the top level of a batch file
type RequestSet struct {
	Variant  Variant   `yaml:"variant,omitempty"`
	Requests []Request `yaml:"requests"`
}
