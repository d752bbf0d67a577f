package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/accrue/internal/domain"
)

// ConsoleFormatter prints each result's display lines. Results from a batch
// are headed by their label and separated by a blank line.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results []domain.Result) ([]byte, error) {
	var buf bytes.Buffer

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		if len(results) > 1 && r.Label != "" {
			fmt.Fprintln(&buf, r.Label)
			fmt.Fprintln(&buf, strings.Repeat("=", len([]rune(r.Label))))
		}
		for _, line := range r.Lines {
			fmt.Fprintln(&buf, line)
		}
	}

	return buf.Bytes(), nil
}
