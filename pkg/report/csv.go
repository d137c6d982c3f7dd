package report

import (
	"io"

	"github.com/dayooguns/tompri/pkg/csvio"
	"github.com/dayooguns/tompri/pkg/interfaces"
)

// CSVFormatter writes a ranking in the CSV interchange format. The raw-score
// columns of the output can be re-imported.
type CSVFormatter struct{}

// NewCSVFormatter creates a CSV ranking formatter.
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// Format writes the ranking as CSV to the given writer.
func (f *CSVFormatter) Format(w io.Writer, ranking *interfaces.Ranking) error {
	return csvio.Write(w, ranking)
}
