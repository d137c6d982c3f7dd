// Package tests provides integration test utilities for the tompri pipeline.
package tests

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dayooguns/tompri/pkg/catalog"
	"github.com/dayooguns/tompri/pkg/csvio"
	"github.com/dayooguns/tompri/pkg/engine"
	"github.com/dayooguns/tompri/pkg/interfaces"
	"github.com/dayooguns/tompri/pkg/store"
)

// fixturesDir returns the absolute path to the test fixtures/assessments directory.
func fixturesDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "fixtures", "assessments")
}

// LoadFixtureAssessment parses a fixture CSV by name (e.g., "baseline" loads
// "baseline.csv") and returns the imported score records.
func LoadFixtureAssessment(t *testing.T, name string) []interfaces.ScoredDimension {
	t.Helper()

	path := filepath.Join(fixturesDir(), name+".csv")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("LoadFixtureAssessment(%q): %v", name, err)
	}
	defer f.Close()

	records, err := csvio.Read(f, catalog.ByName)
	if err != nil {
		t.Fatalf("LoadFixtureAssessment(%q): %v", name, err)
	}
	return records
}

// RunPipeline executes the full prioritisation pipeline (import → store →
// rank) against the complete catalog and returns the ranking. Dimensions not
// present in records stay at their zero scores, exactly as the rank command
// behaves.
func RunPipeline(t *testing.T, records []interfaces.ScoredDimension, weights interfaces.Weights) *interfaces.Ranking {
	t.Helper()

	st := store.New(catalog.Dimensions())
	for _, rec := range records {
		if err := st.Apply(rec); err != nil {
			t.Fatalf("applying %q: %v", rec.Name, err)
		}
	}

	return engine.New().Rank(st.Snapshot(), weights)
}

// FindRanked returns the ranked entry for a dimension name.
func FindRanked(t *testing.T, ranking *interfaces.Ranking, name string) interfaces.PrioritisedDimension {
	t.Helper()
	for _, d := range ranking.Dimensions {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("dimension %q not in ranking", name)
	return interfaces.PrioritisedDimension{}
}

// AssertTier asserts that a ranked dimension landed in the expected tier.
func AssertTier(t *testing.T, d interfaces.PrioritisedDimension, want interfaces.Tier) {
	t.Helper()
	if d.Tier != want {
		t.Errorf("%s tier = %q, want %q (adjusted %.3f)", d.Name, d.Tier, want, d.AdjustedScore)
	}
}

// AssertHasFilter asserts that a ranked dimension carries the given tag.
func AssertHasFilter(t *testing.T, d interfaces.PrioritisedDimension, tag interfaces.FilterTag) {
	t.Helper()
	if !d.HasFilter(tag) {
		t.Errorf("%s missing filter %q, has %v", d.Name, tag, d.Filters)
	}
}

// CountWithTier returns the number of ranked dimensions in the given tier.
func CountWithTier(ranking *interfaces.Ranking, tier interfaces.Tier) int {
	count := 0
	for _, d := range ranking.Dimensions {
		if d.Tier == tier {
			count++
		}
	}
	return count
}

// CountWithFilter returns the number of ranked dimensions carrying the tag.
func CountWithFilter(ranking *interfaces.Ranking, tag interfaces.FilterTag) int {
	count := 0
	for _, d := range ranking.Dimensions {
		if d.HasFilter(tag) {
			count++
		}
	}
	return count
}

// Formatter is the interface shared by all ranking formatters.
type Formatter interface {
	Format(w io.Writer, ranking *interfaces.Ranking) error
}

// FormatRanking formats a ranking using the given formatter and returns the
// output as a string.
func FormatRanking(t *testing.T, formatter Formatter, ranking *interfaces.Ranking) string {
	t.Helper()
	var buf bytes.Buffer
	if err := formatter.Format(&buf, ranking); err != nil {
		t.Fatalf("formatter.Format: %v", err)
	}
	return buf.String()
}
