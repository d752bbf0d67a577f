package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/accrue/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadRequests reads a batch file of the form
//
//	variant: full        # optional
//	requests:
//	  - label: car loan
//	    date: 2022-03-05
//	    amount: "100000"
//	    rate: "1.5"
//
// Request values are kept as text; they are validated by the calculator.
func (ip *InputParser) LoadRequests(filename string) (*domain.RequestSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var set domain.RequestSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if set.Variant != "" && !set.Variant.Valid() {
		return nil, &ConfigError{Field: "variant", Message: fmt.Sprintf("unknown variant %q", set.Variant)}
	}
	if len(set.Requests) == 0 {
		return nil, &ConfigError{Field: "requests", Message: "no requests provided"}
	}

	for i := range set.Requests {
		if set.Requests[i].Label == "" {
			set.Requests[i].Label = fmt.Sprintf("request %d", i+1)
		}
	}

	return &set, nil
}
