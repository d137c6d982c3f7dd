// Package engine turns raw dimension scores and criterion weights into a
// ranked, annotated priority list.
package engine

import (
	"fmt"
	"math"

	"github.com/dayooguns/tompri/pkg/interfaces"
)

// Default criterion weight percentages.
const (
	DefaultWeightBusinessImpact = 35
	DefaultWeightFeasibility    = 30
	DefaultWeightPolitical      = 20
	DefaultWeightFoundation     = 15
)

// Bounds for a single criterion weight. No criterion can be driven to 0 or
// 100; 97 leaves the minimum 1 point for each of the other three.
const (
	MinWeight = 1
	MaxWeight = 97
)

// minRemainingBudget is the smallest budget that can still be split across
// the other three criteria at MinWeight each. Edits that would leave less
// are rejected.
const minRemainingBudget = 3

// DefaultWeights returns the default 35/30/20/15 distribution.
func DefaultWeights() interfaces.Weights {
	return interfaces.Weights{
		BusinessImpact: DefaultWeightBusinessImpact,
		Feasibility:    DefaultWeightFeasibility,
		Political:      DefaultWeightPolitical,
		Foundation:     DefaultWeightFoundation,
	}
}

// SetWeight returns a new Weights value with the given criterion set to
// value and the remaining budget redistributed across the other criteria in
// proportion to their current weights, each floored at MinWeight. Rounding
// residue is pinned on business impact so the total stays exactly 100.
//
// The edit is rejected (ok=false, w returned unchanged) when the requested
// value leaves less than 3 points for the other criteria or the other
// weights sum to zero. Requests below MinWeight clamp up to the floor.
func SetWeight(w interfaces.Weights, criterion interfaces.Criterion, value int) (next interfaces.Weights, ok bool) {
	// The budget check runs on the requested value, before any clamping:
	// asking for 98 or more is a rejection, not a silent clamp to 97.
	remaining := 100 - value
	if remaining < minRemainingBudget {
		return w, false
	}
	if value < MinWeight {
		value = MinWeight
		remaining = 100 - value
	}

	otherSum := 0
	for _, c := range interfaces.Criteria() {
		if c != criterion {
			otherSum += w.Of(c)
		}
	}
	if otherSum == 0 {
		return w, false
	}

	next = withWeight(w, criterion, value)
	for _, c := range interfaces.Criteria() {
		if c == criterion {
			continue
		}
		scaled := int(math.Round(float64(w.Of(c)) * float64(remaining) / float64(otherSum)))
		if scaled < MinWeight {
			scaled = MinWeight
		}
		next = withWeight(next, c, scaled)
	}

	// Rounding can leave the total a point or two off 100. The residue is
	// absorbed by business impact, even when business impact is the
	// criterion being edited.
	if total := next.Total(); total != 100 {
		next.BusinessImpact += 100 - total
	}

	// The residue correction can push business impact out of range when it is
	// already at the floor. Such edits are rejected rather than allowed to
	// break the invariant.
	if err := ValidateWeights(next); err != nil {
		return w, false
	}

	return next, true
}

// ValidateWeights rejects weight values that SetWeight can never produce.
func ValidateWeights(w interfaces.Weights) error {
	if total := w.Total(); total != 100 {
		return fmt.Errorf("engine: weights sum to %d, must sum to 100", total)
	}
	for _, c := range interfaces.Criteria() {
		if v := w.Of(c); v < MinWeight || v > MaxWeight {
			return fmt.Errorf("engine: weight %s=%d outside [%d,%d]", c, v, MinWeight, MaxWeight)
		}
	}
	return nil
}

func withWeight(w interfaces.Weights, c interfaces.Criterion, value int) interfaces.Weights {
	switch c {
	case interfaces.CriterionBusinessImpact:
		w.BusinessImpact = value
	case interfaces.CriterionFeasibility:
		w.Feasibility = value
	case interfaces.CriterionPolitical:
		w.Political = value
	case interfaces.CriterionFoundation:
		w.Foundation = value
	}
	return w
}
