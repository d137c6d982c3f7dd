// Package interfaces defines the shared types and contracts for all tompri modules.
// This package has ZERO dependencies on any other pkg/ package.
// All cross-module communication goes through types defined here.
package interfaces

import "time"

// Category partitions the dimension catalog.
type Category string

const (
	CategoryStrategy       Category = "STRATEGY"
	CategoryImplementation Category = "IMPLEMENTATION"
	CategoryServiceValue   Category = "SERVICE & VALUE DELIVERY"
)

// Criterion identifies one of the four weighted prioritisation criteria.
type Criterion string

const (
	CriterionBusinessImpact Criterion = "business_impact"
	CriterionFeasibility    Criterion = "feasibility"
	CriterionPolitical      Criterion = "political"
	CriterionFoundation     Criterion = "foundation"
)

// Criteria lists the four criteria in their canonical order.
// Paradox descriptions and weight charts follow this order.
func Criteria() []Criterion {
	return []Criterion{
		CriterionBusinessImpact,
		CriterionFeasibility,
		CriterionPolitical,
		CriterionFoundation,
	}
}

// Label returns the display name for a criterion.
func (c Criterion) Label() string {
	switch c {
	case CriterionBusinessImpact:
		return "Business Impact"
	case CriterionFeasibility:
		return "Feasibility"
	case CriterionPolitical:
		return "Political Viability"
	case CriterionFoundation:
		return "Foundation Building"
	}
	return string(c)
}

// Trait classifies a dimension for filter-rule matching. Traits are assigned
// by the catalog at definition time so rules never inspect display names.
type Trait string

const (
	// TraitReputation marks dimensions whose improvement is visible enough to
	// repair the data function's standing with the business.
	TraitReputation Trait = "reputation"
	// TraitGovernance marks dimensions that live or die on stakeholder buy-in.
	TraitGovernance Trait = "governance"
	// TraitFoundational marks dimensions that unlock other improvements.
	TraitFoundational Trait = "foundational"
)

// Tier is the coarse priority bucket derived from the adjusted score.
type Tier string

const (
	TierPriority1    Tier = "Priority 1"
	TierPriority2    Tier = "Priority 2"
	TierPriority3    Tier = "Priority 3"
	TierDeprioritise Tier = "Deprioritise"
)

// FilterTag flags a noteworthy pattern in a dimension's ratings.
type FilterTag string

const (
	FilterReputationRecovery FilterTag = "Reputation Recovery"
	FilterQuickWin           FilterTag = "Quick Win"
	FilterPoliticalRisk      FilterTag = "Political Risk"
	FilterFoundationBuilder  FilterTag = "Foundation Builder"
	FilterParadox            FilterTag = "Paradox"
)

// Dimension is an immutable catalog entry: a named area of organisational
// capability. ID is a stable opaque identifier derived once from the catalog
// definition; Name is presentational and safe to change.
type Dimension struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Category     Category  `json:"category"`
	SubDimension string    `json:"sub_dimension,omitempty"`
	Description  string    `json:"description,omitempty"`
	Levels       [5]string `json:"levels,omitempty"`
	Traits       []Trait   `json:"traits,omitempty"`
}

// HasTrait reports whether the dimension carries the given trait.
func (d Dimension) HasTrait(t Trait) bool {
	for _, dt := range d.Traits {
		if dt == t {
			return true
		}
	}
	return false
}

// ScoredDimension pairs a catalog entry with the user's raw inputs.
// CurrentScore is the self-assessed maturity in [0,5]. The four criterion
// ratings are integers in [0,5] where 0 means "not yet rated".
type ScoredDimension struct {
	Dimension
	CurrentScore   float64 `json:"current_score"`
	BusinessImpact int     `json:"business_impact"`
	Feasibility    int     `json:"feasibility"`
	Political      int     `json:"political"`
	Foundation     int     `json:"foundation"`
}

// Rating returns the raw rating for a criterion.
func (s ScoredDimension) Rating(c Criterion) int {
	switch c {
	case CriterionBusinessImpact:
		return s.BusinessImpact
	case CriterionFeasibility:
		return s.Feasibility
	case CriterionPolitical:
		return s.Political
	case CriterionFoundation:
		return s.Foundation
	}
	return 0
}

// Weights holds the criterion percentages. A valid Weights value sums to
// exactly 100 with each weight in [1,97]; all mutation goes through the
// engine package, which maintains that invariant.
type Weights struct {
	BusinessImpact int `json:"business_impact" yaml:"business_impact"`
	Feasibility    int `json:"feasibility" yaml:"feasibility"`
	Political      int `json:"political" yaml:"political"`
	Foundation     int `json:"foundation" yaml:"foundation"`
}

// Of returns the percentage assigned to a criterion.
func (w Weights) Of(c Criterion) int {
	switch c {
	case CriterionBusinessImpact:
		return w.BusinessImpact
	case CriterionFeasibility:
		return w.Feasibility
	case CriterionPolitical:
		return w.Political
	case CriterionFoundation:
		return w.Foundation
	}
	return 0
}

// Total returns the sum of the four weights.
func (w Weights) Total() int {
	return w.BusinessImpact + w.Feasibility + w.Political + w.Foundation
}

// PrioritisedDimension is the engine's per-dimension output: the raw inputs
// annotated with composite scores, a tier, and any triggered filter tags.
// It is derived data, rebuilt from scratch on every recompute.
type PrioritisedDimension struct {
	ScoredDimension
	Rank               int         `json:"rank"`
	BaseScore          float64     `json:"base_score"`
	AdjustedScore      float64     `json:"adjusted_score"`
	Tier               Tier        `json:"tier"`
	Filters            []FilterTag `json:"filters,omitempty"`
	ParadoxDescription string      `json:"paradox_description,omitempty"`
}

// HasFilter reports whether the given tag was triggered.
func (p PrioritisedDimension) HasFilter(tag FilterTag) bool {
	for _, f := range p.Filters {
		if f == tag {
			return true
		}
	}
	return false
}

// Ranking is the full engine output: all dimensions ordered by descending
// adjusted score, together with the weights that produced them.
type Ranking struct {
	Dimensions  []PrioritisedDimension `json:"dimensions"`
	Weights     Weights                `json:"weights"`
	GeneratedAt time.Time              `json:"generated_at"`
}

// ChartPoint is the name/score projection consumed by bar and radar charts.
type ChartPoint struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}
