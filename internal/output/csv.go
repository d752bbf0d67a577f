package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/accrue/internal/domain"
)

// CSVFormatter writes one row per result. Amounts are plain decimals so the
// file stays machine readable; the message column carries the display text.
type CSVFormatter struct{}

func (cf CSVFormatter) Name() string { return "csv" }

func (cf CSVFormatter) Format(results []domain.Result) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"Label",
		"Kind",
		"ErrorKind",
		"Years",
		"Months",
		"Days",
		"Principal",
		"MonthlyRatePercent",
		"Interest",
		"Total",
		"Message",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, r := range results {
		if err := w.Write(cf.formatRow(r)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (cf CSVFormatter) formatRow(r domain.Result) []string {
	row := make([]string, 11)
	row[0] = r.Label
	row[1] = string(r.Kind)
	if r.Err != nil {
		row[2] = string(r.Err.Kind)
	}
	if r.Span != nil {
		row[3] = strconv.Itoa(r.Span.Years)
		row[4] = strconv.Itoa(r.Span.Months)
		row[5] = strconv.Itoa(r.Span.Days)
	}
	if r.Loan != nil {
		row[6] = r.Loan.Principal.StringFixed(2)
		row[7] = r.Loan.MonthlyRatePercent.StringFixed(2)
		row[8] = r.Loan.Interest.StringFixed(2)
		row[9] = r.Loan.Total.StringFixed(2)
	}
	if len(r.Lines) > 0 {
		row[10] = r.Lines[0]
	}
	return row
}
