package output

import (
	"encoding/json"

	"github.com/rgehrsitz/accrue/internal/domain"
)

// JSONFormatter formats results as a JSON array
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

func (jf JSONFormatter) Name() string { return "json" }

func (jf JSONFormatter) Format(results []domain.Result) ([]byte, error) {
	if results == nil {
		results = []domain.Result{}
	}

	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(results, "", "  ")
	} else {
		data, err = json.Marshal(results)
	}
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}
