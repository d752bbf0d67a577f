package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/accrue/internal/domain"
)

// HTMLFormatter renders results as a standalone page. Validation errors get
// the "error" class, mirroring the form's error styling.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/results.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("results").Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results []domain.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, results); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
