package engine

import (
	"math"
	"reflect"
	"testing"

	"github.com/dayooguns/tompri/pkg/interfaces"
)

const scoreTolerance = 1e-9

// scored builds a test dimension with the given traits and ratings.
func scored(name string, traits []interfaces.Trait, bi, fe, po, fo int) interfaces.ScoredDimension {
	return interfaces.ScoredDimension{
		Dimension: interfaces.Dimension{
			ID:     "dim-" + name,
			Name:   name,
			Traits: traits,
		},
		BusinessImpact: bi,
		Feasibility:    fe,
		Political:      po,
		Foundation:     fo,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < scoreTolerance
}

func TestRank_MetadataManagement_AllThreeFilters(t *testing.T) {
	// bi=4 fe=5 po=3 fo=5 at default weights:
	// base = 4*0.35 + 5*0.30 + 3*0.20 + 5*0.15 = 4.25
	// reputation bonus = 0.175 * (35/35) = 0.175 → adjusted = 4.425
	eng := New()
	dim := scored("Metadata Management",
		[]interfaces.Trait{interfaces.TraitReputation, interfaces.TraitFoundational},
		4, 5, 3, 5)

	ranking := eng.Rank([]interfaces.ScoredDimension{dim}, DefaultWeights())
	if len(ranking.Dimensions) != 1 {
		t.Fatalf("expected 1 ranked dimension, got %d", len(ranking.Dimensions))
	}
	got := ranking.Dimensions[0]

	if !almostEqual(got.BaseScore, 4.25) {
		t.Errorf("expected base score 4.25, got %v", got.BaseScore)
	}
	if !almostEqual(got.AdjustedScore, 4.425) {
		t.Errorf("expected adjusted score 4.425, got %v", got.AdjustedScore)
	}
	if got.Tier != interfaces.TierPriority1 {
		t.Errorf("expected Priority 1, got %s", got.Tier)
	}

	for _, want := range []interfaces.FilterTag{
		interfaces.FilterReputationRecovery,
		interfaces.FilterQuickWin,
		interfaces.FilterFoundationBuilder,
	} {
		if !got.HasFilter(want) {
			t.Errorf("expected filter %q, got %v", want, got.Filters)
		}
	}
	if got.HasFilter(interfaces.FilterParadox) {
		t.Errorf("min rated is 3, gap alone must not trigger a paradox: %v", got.Filters)
	}
	if got.Rank != 1 {
		t.Errorf("expected rank 1, got %d", got.Rank)
	}
}

func TestRank_ReputationBonusScalesWithWeight(t *testing.T) {
	// Push business impact to 70%: bonus = 0.175 * (70/35) = 0.35.
	eng := New()
	weights, ok := SetWeight(DefaultWeights(), interfaces.CriterionBusinessImpact, 70)
	if !ok {
		t.Fatal("expected weight edit to be accepted")
	}
	dim := scored("Support", []interfaces.Trait{interfaces.TraitReputation}, 3, 0, 0, 0)

	got := eng.Rank([]interfaces.ScoredDimension{dim}, weights).Dimensions[0]
	wantBonus := ReputationBonus * (float64(weights.BusinessImpact) / ReferenceBusinessImpact)
	if !almostEqual(got.AdjustedScore-got.BaseScore, wantBonus) {
		t.Errorf("expected bonus %v, got %v", wantBonus, got.AdjustedScore-got.BaseScore)
	}
}

func TestRank_ReputationTraitWithoutImpact_NoFilter(t *testing.T) {
	eng := New()
	dim := scored("Support", []interfaces.Trait{interfaces.TraitReputation}, 2, 5, 5, 5)

	got := eng.Rank([]interfaces.ScoredDimension{dim}, DefaultWeights()).Dimensions[0]
	if got.HasFilter(interfaces.FilterReputationRecovery) {
		t.Errorf("business impact 2 must not trigger reputation recovery: %v", got.Filters)
	}
	if !almostEqual(got.AdjustedScore, got.BaseScore) {
		t.Errorf("no bonus expected, base %v adjusted %v", got.BaseScore, got.AdjustedScore)
	}
}

func TestRank_PoliticalRisk(t *testing.T) {
	tests := []struct {
		name      string
		traits    []interfaces.Trait
		political int
		want      bool
	}{
		{"governance trait low political", []interfaces.Trait{interfaces.TraitGovernance}, 2, true},
		{"governance trait unrated political", []interfaces.Trait{interfaces.TraitGovernance}, 0, true},
		{"governance trait political at threshold", []interfaces.Trait{interfaces.TraitGovernance}, 3, false},
		{"no trait low political", nil, 1, false},
	}

	eng := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dim := scored("Compliance", tt.traits, 3, 3, tt.political, 3)
			got := eng.Rank([]interfaces.ScoredDimension{dim}, DefaultWeights()).Dimensions[0]
			if got.HasFilter(interfaces.FilterPoliticalRisk) != tt.want {
				t.Errorf("political risk = %v, want %v (filters %v)", !tt.want, tt.want, got.Filters)
			}
		})
	}
}

func TestRank_QuickWinBoundaries(t *testing.T) {
	tests := []struct {
		feasibility    int
		businessImpact int
		want           bool
	}{
		{4, 3, true},
		{5, 5, true},
		{3, 3, false},
		{4, 2, false},
	}

	eng := New()
	for _, tt := range tests {
		dim := scored("Anything", nil, tt.businessImpact, tt.feasibility, 3, 3)
		got := eng.Rank([]interfaces.ScoredDimension{dim}, DefaultWeights()).Dimensions[0]
		if got.HasFilter(interfaces.FilterQuickWin) != tt.want {
			t.Errorf("feasibility=%d impact=%d: quick win = %v, want %v",
				tt.feasibility, tt.businessImpact, !tt.want, tt.want)
		}
	}
}

func TestRank_FoundationBuilderNeedsTraitAndRating(t *testing.T) {
	eng := New()

	with := scored("Roles", []interfaces.Trait{interfaces.TraitFoundational}, 3, 3, 3, 4)
	got := eng.Rank([]interfaces.ScoredDimension{with}, DefaultWeights()).Dimensions[0]
	if !got.HasFilter(interfaces.FilterFoundationBuilder) {
		t.Errorf("expected foundation builder, got %v", got.Filters)
	}

	without := scored("Roles", []interfaces.Trait{interfaces.TraitFoundational}, 3, 3, 3, 3)
	got = eng.Rank([]interfaces.ScoredDimension{without}, DefaultWeights()).Dimensions[0]
	if got.HasFilter(interfaces.FilterFoundationBuilder) {
		t.Errorf("foundation 3 must not trigger foundation builder: %v", got.Filters)
	}
}

func TestRank_SortsDescendingByAdjustedScore(t *testing.T) {
	eng := New()
	dims := []interfaces.ScoredDimension{
		scored("Low", nil, 1, 1, 1, 1),
		scored("High", nil, 5, 5, 5, 5),
		scored("Mid", nil, 3, 3, 3, 3),
	}

	ranking := eng.Rank(dims, DefaultWeights())
	var names []string
	for _, d := range ranking.Dimensions {
		names = append(names, d.Name)
	}
	want := []string{"High", "Mid", "Low"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected order %v, got %v", want, names)
	}
	for i, d := range ranking.Dimensions {
		if d.Rank != i+1 {
			t.Errorf("position %d has rank %d", i, d.Rank)
		}
	}
}

func TestRank_StableTieOrder(t *testing.T) {
	eng := New()
	dims := []interfaces.ScoredDimension{
		scored("First", nil, 3, 3, 3, 3),
		scored("Second", nil, 3, 3, 3, 3),
	}

	ranking := eng.Rank(dims, DefaultWeights())
	if ranking.Dimensions[0].Name != "First" || ranking.Dimensions[1].Name != "Second" {
		t.Errorf("tied scores must keep input order, got %s then %s",
			ranking.Dimensions[0].Name, ranking.Dimensions[1].Name)
	}
}

func TestRank_AdjustedNeverBelowBase(t *testing.T) {
	eng := New()
	var dims []interfaces.ScoredDimension
	for bi := 0; bi <= 5; bi++ {
		for fe := 0; fe <= 5; fe++ {
			dims = append(dims,
				scored("Support", []interfaces.Trait{interfaces.TraitReputation, interfaces.TraitGovernance, interfaces.TraitFoundational}, bi, fe, 5-bi, 5-fe),
				scored("Plain", nil, bi, fe, bi, fe),
			)
		}
	}

	for _, d := range eng.Rank(dims, DefaultWeights()).Dimensions {
		if d.AdjustedScore < d.BaseScore-scoreTolerance {
			t.Fatalf("%s: adjusted %v below base %v", d.Name, d.AdjustedScore, d.BaseScore)
		}
	}
}

func TestRank_Idempotent(t *testing.T) {
	eng := New()
	dims := []interfaces.ScoredDimension{
		scored("A", []interfaces.Trait{interfaces.TraitReputation}, 4, 5, 1, 2),
		scored("B", []interfaces.Trait{interfaces.TraitGovernance}, 2, 3, 1, 5),
		scored("C", nil, 0, 0, 0, 0),
	}
	w := DefaultWeights()

	first := eng.Rank(dims, w)
	second := eng.Rank(dims, w)
	if !reflect.DeepEqual(first.Dimensions, second.Dimensions) {
		t.Error("identical inputs must produce identical rankings")
	}
}

func TestRank_UnratedCountsAsZeroInBaseScore(t *testing.T) {
	// bi=5, everything else unrated: base = 5*0.35 = 1.75, not 5.
	eng := New()
	dim := scored("Partial", nil, 5, 0, 0, 0)

	got := eng.Rank([]interfaces.ScoredDimension{dim}, DefaultWeights()).Dimensions[0]
	if !almostEqual(got.BaseScore, 1.75) {
		t.Errorf("expected base 1.75 with unrated criteria as zeroes, got %v", got.BaseScore)
	}
	if got.Tier != interfaces.TierDeprioritise {
		t.Errorf("expected Deprioritise, got %s", got.Tier)
	}
}

func TestRank_EmptyInput(t *testing.T) {
	eng := New()
	ranking := eng.Rank(nil, DefaultWeights())
	if len(ranking.Dimensions) != 0 {
		t.Errorf("expected empty ranking, got %d dimensions", len(ranking.Dimensions))
	}
}

func TestRank_CustomRules(t *testing.T) {
	always := Rule{
		Tag:   interfaces.FilterTag("Flagged"),
		Match: func(interfaces.ScoredDimension) bool { return true },
	}
	eng := New(WithRules([]Rule{always}))

	got := eng.Rank([]interfaces.ScoredDimension{scored("X", nil, 1, 1, 1, 1)}, DefaultWeights()).Dimensions[0]
	if !got.HasFilter("Flagged") {
		t.Errorf("expected custom rule tag, got %v", got.Filters)
	}
	if got.HasFilter(interfaces.FilterQuickWin) {
		t.Error("default rules must be replaced, not appended")
	}
}

func TestTierFromScore_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  interfaces.Tier
	}{
		{4.425, interfaces.TierPriority1},
		{4.0, interfaces.TierPriority1},
		{3.9999, interfaces.TierPriority2},
		{3.0, interfaces.TierPriority2},
		{2.9999, interfaces.TierPriority3},
		{2.0, interfaces.TierPriority3},
		{1.9999, interfaces.TierDeprioritise},
		{0, interfaces.TierDeprioritise},
	}

	for _, tt := range tests {
		if got := TierFromScore(tt.score, DefaultTierThresholds()); got != tt.want {
			t.Errorf("TierFromScore(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestTierFromScore_CustomThresholds(t *testing.T) {
	tight := TierThresholds{Priority1: 4.5, Priority2: 3.5, Priority3: 2.5}
	if got := TierFromScore(4.25, tight); got != interfaces.TierPriority2 {
		t.Errorf("expected Priority 2 with raised thresholds, got %s", got)
	}
}
