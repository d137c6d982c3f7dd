// Package csvio reads and writes the assessment CSV interchange format:
// comma-separated, every field quoted, embedded quotes doubled, header row
// required. Import is header-name-driven, so column order does not matter.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dayooguns/tompri/pkg/interfaces"
)

// Resolver matches an imported dimension name to a catalog entry.
// Typically catalog.ByName.
type Resolver func(name string) (interfaces.Dimension, bool)

// Column labels recognised on import, normalised to lower case. Computed
// columns (rank, scores, tier, filters) present in exports are ignored on
// import: only raw inputs round-trip.
var importColumns = map[string]string{
	"dimension":           "name",
	"name":                "name",
	"maturity":            "maturity",
	"maturity score":      "maturity",
	"business impact":     "business_impact",
	"feasibility":         "feasibility",
	"political viability": "political",
	"political":           "political",
	"foundation building": "foundation",
	"foundation":          "foundation",
}

// Read parses assessment rows from r, matching each row back to a catalog
// entry by exact name. Unmatched rows are skipped with a logged warning.
// Unparseable numbers default to 0; import never blocks on bad cells.
func Read(r io.Reader, resolve Resolver) ([]interfaces.ScoredDimension, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("csvio: reading header: %w", err)
	}

	cols := make(map[int]string, len(header))
	for i, h := range header {
		if key, ok := importColumns[strings.ToLower(strings.TrimSpace(h))]; ok {
			cols[i] = key
		}
	}
	if !hasColumn(cols, "name") {
		return nil, fmt.Errorf("csvio: header has no dimension name column")
	}

	var records []interfaces.ScoredDimension
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvio: reading row: %w", err)
		}

		var name string
		values := make(map[string]float64)
		for i, cell := range row {
			key, ok := cols[i]
			if !ok {
				continue
			}
			cell = strings.TrimSpace(cell)
			if key == "name" {
				name = cell
				continue
			}
			values[key] = lenientFloat(cell)
		}

		dim, ok := resolve(name)
		if !ok {
			slog.Warn("skipping unknown dimension on import", "name", name)
			continue
		}

		records = append(records, interfaces.ScoredDimension{
			Dimension:      dim,
			CurrentScore:   values["maturity"],
			BusinessImpact: int(values["business_impact"]),
			Feasibility:    int(values["feasibility"]),
			Political:      int(values["political"]),
			Foundation:     int(values["foundation"]),
		})
	}

	return records, nil
}

func hasColumn(cols map[int]string, key string) bool {
	for _, k := range cols {
		if k == key {
			return true
		}
	}
	return false
}

// lenientFloat parses a number, defaulting to 0 on garbage. Imports must
// never fail on a malformed cell.
func lenientFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
