package engine

import "github.com/dayooguns/tompri/pkg/interfaces"

// Bonus parameters for the Reputation Recovery rule. The bonus scales with
// how far business impact is weighted above its reference percentage.
const (
	ReputationBonus           = 0.175
	ReferenceBusinessImpact   = 35.0
	reputationImpactThreshold = 3
)

// Rule tags a dimension when its predicate matches. Bonus, when non-nil,
// returns an additive adjustment to the adjusted score; most rules are
// tag-only. Rules are independent: a dimension may match any subset.
type Rule struct {
	Tag   interfaces.FilterTag
	Match func(d interfaces.ScoredDimension) bool
	Bonus func(d interfaces.ScoredDimension, w interfaces.Weights) float64
}

// DefaultRules returns the standard filter rule table, in evaluation order.
// Predicates match catalog traits and ratings only, never display names.
func DefaultRules() []Rule {
	return []Rule{
		{
			Tag: interfaces.FilterReputationRecovery,
			Match: func(d interfaces.ScoredDimension) bool {
				return d.HasTrait(interfaces.TraitReputation) && d.BusinessImpact >= reputationImpactThreshold
			},
			Bonus: func(_ interfaces.ScoredDimension, w interfaces.Weights) float64 {
				return ReputationBonus * (float64(w.BusinessImpact) / ReferenceBusinessImpact)
			},
		},
		{
			Tag: interfaces.FilterQuickWin,
			Match: func(d interfaces.ScoredDimension) bool {
				return d.Feasibility >= 4 && d.BusinessImpact >= 3
			},
		},
		{
			Tag: interfaces.FilterPoliticalRisk,
			Match: func(d interfaces.ScoredDimension) bool {
				return d.HasTrait(interfaces.TraitGovernance) && d.Political < 3
			},
		},
		{
			Tag: interfaces.FilterFoundationBuilder,
			Match: func(d interfaces.ScoredDimension) bool {
				return d.HasTrait(interfaces.TraitFoundational) && d.Foundation >= 4
			},
		},
	}
}
