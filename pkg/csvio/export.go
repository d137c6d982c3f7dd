package csvio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dayooguns/tompri/pkg/interfaces"
)

// exportHeader is the column order of exported rankings. Import recognises
// the raw-input subset of these labels.
var exportHeader = []string{
	"Rank",
	"Dimension",
	"Category",
	"Sub-Dimension",
	"Maturity",
	"Business Impact",
	"Feasibility",
	"Political Viability",
	"Foundation Building",
	"Base Score",
	"Adjusted Score",
	"Tier",
	"Filters",
}

// Write exports a ranking as CSV. Every field is quoted; embedded quotes are
// doubled. encoding/csv quotes only when forced, so rows are written by hand
// to keep the format stable.
func Write(w io.Writer, ranking *interfaces.Ranking) error {
	if err := writeRow(w, exportHeader); err != nil {
		return err
	}
	for _, d := range ranking.Dimensions {
		row := []string{
			strconv.Itoa(d.Rank),
			d.Name,
			string(d.Category),
			d.SubDimension,
			formatScore(d.CurrentScore),
			strconv.Itoa(d.BusinessImpact),
			strconv.Itoa(d.Feasibility),
			strconv.Itoa(d.Political),
			strconv.Itoa(d.Foundation),
			formatScore(d.BaseScore),
			formatScore(d.AdjustedScore),
			string(d.Tier),
			joinFilters(d.Filters),
		}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	if _, err := fmt.Fprintln(w, strings.Join(quoted, ",")); err != nil {
		return fmt.Errorf("csvio: writing row: %w", err)
	}
	return nil
}

func joinFilters(filters []interfaces.FilterTag) string {
	parts := make([]string, len(filters))
	for i, f := range filters {
		parts[i] = string(f)
	}
	return strings.Join(parts, "; ")
}

// formatScore renders a score with no trailing zero noise: "4.425", "3", "2.5".
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
