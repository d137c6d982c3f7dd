package report

import (
	"encoding/json"
	"io"

	"github.com/dayooguns/tompri/pkg/interfaces"
)

// JSONFormatter writes a ranking as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON ranking formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes the ranking as indented JSON to the given writer.
func (f *JSONFormatter) Format(w io.Writer, ranking *interfaces.Ranking) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ranking)
}
