package engine

import (
	"testing"

	"github.com/dayooguns/tompri/pkg/interfaces"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()
	if w.BusinessImpact != 35 || w.Feasibility != 30 || w.Political != 20 || w.Foundation != 15 {
		t.Errorf("unexpected defaults: %+v", w)
	}
	if err := ValidateWeights(w); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestSetWeight_RedistributesProportionally(t *testing.T) {
	// political 20 → 1: remaining 99 over others summing 80.
	// bi = round(35*99/80) = 43, fe = round(30*99/80) = 37, fo = round(15*99/80) = 19.
	w, ok := SetWeight(DefaultWeights(), interfaces.CriterionPolitical, 1)
	if !ok {
		t.Fatal("expected edit to be accepted")
	}
	want := interfaces.Weights{BusinessImpact: 43, Feasibility: 37, Political: 1, Foundation: 19}
	if w != want {
		t.Errorf("got %+v, want %+v", w, want)
	}
}

func TestSetWeight_ResidualPinnedOnBusinessImpact(t *testing.T) {
	// feasibility → 97: remaining 3 over 70. bi = round(1.5) = 2, po = 1, fo = 1.
	// Total 101, so business impact absorbs the -1 residual.
	w, ok := SetWeight(DefaultWeights(), interfaces.CriterionFeasibility, 97)
	if !ok {
		t.Fatal("expected edit to be accepted")
	}
	want := interfaces.Weights{BusinessImpact: 1, Feasibility: 97, Political: 1, Foundation: 1}
	if w != want {
		t.Errorf("got %+v, want %+v", w, want)
	}
}

func TestSetWeight_RejectsWhenBudgetTooSmall(t *testing.T) {
	orig := DefaultWeights()
	w, ok := SetWeight(orig, interfaces.CriterionBusinessImpact, 98)
	if ok {
		t.Error("98 leaves a budget of 2, edit must be rejected")
	}
	if w != orig {
		t.Errorf("rejected edit must leave weights unchanged, got %+v", w)
	}
}

func TestSetWeight_BoundsOnRequestedValue(t *testing.T) {
	// Rejection considers the raw requested value: anything above 97 leaves
	// less than 3 points of budget and is never clamped into acceptance.
	orig := DefaultWeights()
	for _, value := range []int{98, 150} {
		w, ok := SetWeight(orig, interfaces.CriterionFoundation, value)
		if ok {
			t.Errorf("request %d must be rejected", value)
		}
		if w != orig {
			t.Errorf("rejected request %d must leave weights unchanged, got %+v", value, w)
		}
	}

	// 97 is the highest acceptable request.
	w, ok := SetWeight(orig, interfaces.CriterionFoundation, 97)
	if !ok {
		t.Fatal("expected 97 to be accepted")
	}
	if w.Foundation != 97 {
		t.Errorf("expected foundation 97, got %d", w.Foundation)
	}

	// Low requests clamp up to the floor of 1.
	w, ok = SetWeight(orig, interfaces.CriterionFoundation, -5)
	if !ok {
		t.Fatal("expected edit to be accepted")
	}
	if w.Foundation != 1 {
		t.Errorf("expected foundation clamped to 1, got %d", w.Foundation)
	}
}

func TestSetWeight_InvariantHoldsAcrossEditSequences(t *testing.T) {
	edits := []struct {
		criterion interfaces.Criterion
		value     int
	}{
		{interfaces.CriterionBusinessImpact, 50},
		{interfaces.CriterionFeasibility, 10},
		{interfaces.CriterionPolitical, 97},
		{interfaces.CriterionFoundation, 1},
		{interfaces.CriterionBusinessImpact, 97},
		{interfaces.CriterionFeasibility, 97},
		{interfaces.CriterionPolitical, 1},
		{interfaces.CriterionBusinessImpact, 2},
		{interfaces.CriterionFoundation, 60},
		{interfaces.CriterionFeasibility, 33},
	}

	w := DefaultWeights()
	for i, edit := range edits {
		next, ok := SetWeight(w, edit.criterion, edit.value)
		if ok {
			w = next
		}
		if err := ValidateWeights(w); err != nil {
			t.Fatalf("after edit %d (%s=%d): %v (weights %+v)", i, edit.criterion, edit.value, err, w)
		}
	}
}

func TestSetWeight_EditingAnchorStillLandsOnTarget(t *testing.T) {
	// When business impact itself is edited and rounding misses 100, the
	// residual lands back on business impact, shifting it off the requested
	// value. The invariant must still hold.
	w, ok := SetWeight(DefaultWeights(), interfaces.CriterionBusinessImpact, 90)
	if !ok {
		t.Fatal("expected edit to be accepted")
	}
	if err := ValidateWeights(w); err != nil {
		t.Fatalf("invariant violated: %v (weights %+v)", err, w)
	}
}

func TestValidateWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights interfaces.Weights
		wantErr bool
	}{
		{"defaults", DefaultWeights(), false},
		{"sum 99", interfaces.Weights{BusinessImpact: 34, Feasibility: 30, Political: 20, Foundation: 15}, true},
		{"zero weight", interfaces.Weights{BusinessImpact: 0, Feasibility: 50, Political: 30, Foundation: 20}, true},
		{"weight 98", interfaces.Weights{BusinessImpact: 98, Feasibility: 0, Political: 1, Foundation: 1}, true},
		{"equal split", interfaces.Weights{BusinessImpact: 25, Feasibility: 25, Political: 25, Foundation: 25}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWeights(tt.weights)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWeights(%+v) error = %v, wantErr %v", tt.weights, err, tt.wantErr)
			}
		})
	}
}
