// Package store holds the mutable per-dimension raw scores for a single
// assessment session. Records are keyed by the dimension's stable ID; clamped
// writes replace records copy-on-write so consumers can detect change by
// snapshot identity.
package store

import (
	"fmt"

	"github.com/dayooguns/tompri/pkg/interfaces"
)

// Field names a writable scoring field.
type Field string

const (
	FieldMaturity       Field = "maturity"
	FieldBusinessImpact Field = "business_impact"
	FieldFeasibility    Field = "feasibility"
	FieldPolitical      Field = "political"
	FieldFoundation     Field = "foundation"
)

// Rating domain bounds. 0 means "not yet rated".
const (
	MinRating = 0
	MaxRating = 5
)

// Store is a scoring store over a fixed dimension set. One record exists per
// catalog dimension from construction; records are never added or deleted.
//
// The store is not safe for concurrent use. The interaction model is a
// single-threaded edit loop; service callers hold one store per session.
type Store struct {
	order   []string
	records map[string]interfaces.ScoredDimension
	version uint64
}

// New creates a store with one zero-valued record per dimension.
func New(dims []interfaces.Dimension) *Store {
	s := &Store{
		order:   make([]string, 0, len(dims)),
		records: make(map[string]interfaces.ScoredDimension, len(dims)),
	}
	for _, d := range dims {
		s.order = append(s.order, d.ID)
		s.records[d.ID] = interfaces.ScoredDimension{Dimension: d}
	}
	return s
}

// Update sets a single field on the record with the given dimension ID.
// Values are clamped to their domain: maturity and ratings both live in
// [0,5], ratings additionally truncated to integers. Unknown IDs and fields
// are errors.
func (s *Store) Update(id string, field Field, value float64) error {
	rec, ok := s.records[id]
	if !ok {
		return fmt.Errorf("store: unknown dimension id %q", id)
	}

	switch field {
	case FieldMaturity:
		rec.CurrentScore = clampFloat(value, MinRating, MaxRating)
	case FieldBusinessImpact:
		rec.BusinessImpact = clampRating(value)
	case FieldFeasibility:
		rec.Feasibility = clampRating(value)
	case FieldPolitical:
		rec.Political = clampRating(value)
	case FieldFoundation:
		rec.Foundation = clampRating(value)
	default:
		return fmt.Errorf("store: unknown field %q", field)
	}

	s.records[id] = rec
	s.version++
	return nil
}

// Apply replaces every scoring field of the record matching rec's dimension
// ID in one step. Used by CSV import. Fields are clamped as in Update.
func (s *Store) Apply(rec interfaces.ScoredDimension) error {
	cur, ok := s.records[rec.ID]
	if !ok {
		return fmt.Errorf("store: unknown dimension id %q", rec.ID)
	}
	cur.CurrentScore = clampFloat(rec.CurrentScore, MinRating, MaxRating)
	cur.BusinessImpact = clampRating(float64(rec.BusinessImpact))
	cur.Feasibility = clampRating(float64(rec.Feasibility))
	cur.Political = clampRating(float64(rec.Political))
	cur.Foundation = clampRating(float64(rec.Foundation))
	s.records[rec.ID] = cur
	s.version++
	return nil
}

// Get returns the record for a dimension ID.
func (s *Store) Get(id string) (interfaces.ScoredDimension, bool) {
	rec, ok := s.records[id]
	return rec, ok
}

// Snapshot returns a fresh slice of all records in catalog order. Every call
// allocates a new collection, so callers can compare slices (or Version) for
// cheap change detection.
func (s *Store) Snapshot() []interfaces.ScoredDimension {
	out := make([]interfaces.ScoredDimension, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

// Version increments on every successful write.
func (s *Store) Version() uint64 {
	return s.version
}

func clampRating(v float64) int {
	return int(clampFloat(float64(int(v)), MinRating, MaxRating))
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
