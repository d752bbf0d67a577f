package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rgehrsitz/accrue/internal/domain"
	"github.com/rgehrsitz/accrue/internal/numfmt"
	"gopkg.in/yaml.v3"
)

// Environment variables that override configuration file values
const (
	EnvVariant        = "ACCRUE_VARIANT"
	EnvLocale         = "ACCRUE_LOCALE"
	EnvCurrencySymbol = "ACCRUE_CURRENCY_SYMBOL"
	EnvLocation       = "ACCRUE_LOCATION"
)

// ConfigError describes an invalid configuration field
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// InputParser handles parsing of configuration and batch request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// DefaultConfiguration returns the rupee, full-variant, local-date configuration
func DefaultConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Variant:        domain.VariantFull,
		Locale:         numfmt.DefaultLocale,
		CurrencySymbol: numfmt.DefaultCurrencySymbol,
		Location:       "Local",
	}
}

// CreateExampleConfiguration returns a configuration suitable for `accrue example`
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return DefaultConfiguration()
}

// LoadFromFile loads configuration from a YAML file. Fields left out of the
// file keep their defaults.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config := DefaultConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfiguration validates a loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return &ConfigError{Field: "config", Message: "configuration is required"}
	}
	if !config.Variant.Valid() {
		return &ConfigError{
			Field:   "variant",
			Message: fmt.Sprintf("must be %q or %q, got %q", domain.VariantFull, domain.VariantDateOnly, config.Variant),
		}
	}
	if _, err := numfmt.ParseLocale(config.Locale); err != nil {
		return &ConfigError{Field: "locale", Message: err.Error()}
	}
	if strings.TrimSpace(config.CurrencySymbol) == "" {
		return &ConfigError{Field: "currency_symbol", Message: "currency symbol is required"}
	}
	if err := validateLocation(config.Location); err != nil {
		return &ConfigError{Field: "location", Message: err.Error()}
	}
	return nil
}

func validateLocation(name string) error {
	if name == "" || strings.EqualFold(name, "local") {
		return nil
	}
	if _, err := time.LoadLocation(name); err != nil {
		return fmt.Errorf("unknown location %q: %w", name, err)
	}
	return nil
}

// ApplyEnvironment overlays values from envFile (when non-empty) and then from
// the process environment onto config, and revalidates the result.
func (ip *InputParser) ApplyEnvironment(config *domain.Configuration, envFile string) error {
	values := map[string]string{}
	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		if err != nil {
			return fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
		values = fileValues
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}

	if v, ok := lookup(EnvVariant); ok {
		config.Variant = domain.Variant(strings.TrimSpace(v))
	}
	if v, ok := lookup(EnvLocale); ok {
		config.Locale = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvCurrencySymbol); ok {
		config.CurrencySymbol = v
	}
	if v, ok := lookup(EnvLocation); ok {
		config.Location = strings.TrimSpace(v)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return fmt.Errorf("environment overrides invalid: %w", err)
	}
	return nil
}

// SaveConfiguration writes config to filename as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
