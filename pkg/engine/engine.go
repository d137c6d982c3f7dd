package engine

import (
	"sort"
	"time"

	"github.com/dayooguns/tompri/pkg/interfaces"
)

// Engine computes prioritisation rankings from scored dimensions and weights.
type Engine struct {
	rules      []Rule
	thresholds TierThresholds
}

// Option configures the Engine.
type Option func(*Engine)

// WithRules overrides the default filter rule table.
func WithRules(rules []Rule) Option {
	return func(e *Engine) {
		e.rules = rules
	}
}

// WithTierThresholds overrides the default tier boundaries.
func WithTierThresholds(t TierThresholds) Option {
	return func(e *Engine) {
		e.thresholds = t
	}
}

// New creates an engine with optional configuration.
func New(opts ...Option) *Engine {
	e := &Engine{
		rules:      DefaultRules(),
		thresholds: DefaultTierThresholds(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BaseScore is the weighted linear combination of the four criterion ratings.
// Unrated criteria (0) count as literal zeroes and pull the score down.
func BaseScore(d interfaces.ScoredDimension, w interfaces.Weights) float64 {
	return float64(d.BusinessImpact)*(float64(w.BusinessImpact)/100) +
		float64(d.Feasibility)*(float64(w.Feasibility)/100) +
		float64(d.Political)*(float64(w.Political)/100) +
		float64(d.Foundation)*(float64(w.Foundation)/100)
}

// Rank computes the full ranked priority list for the given dimensions and
// weights. It is a pure function of its inputs (the GeneratedAt stamp aside):
// no caching, no shared state, recomputed from scratch on every call, so
// concurrent calls are safe.
//
// Out-of-range ratings are a precondition violation; clamping is the scoring
// store's job, not the engine's.
func (e *Engine) Rank(dims []interfaces.ScoredDimension, w interfaces.Weights) *interfaces.Ranking {
	ranked := make([]interfaces.PrioritisedDimension, len(dims))
	for i, d := range dims {
		ranked[i] = e.prioritise(d, w)
	}

	// Stable sort: input (catalog) order breaks adjusted-score ties, so the
	// output is deterministic for a given input ordering.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AdjustedScore > ranked[j].AdjustedScore
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return &interfaces.Ranking{
		Dimensions:  ranked,
		Weights:     w,
		GeneratedAt: time.Now(),
	}
}

// prioritise annotates a single dimension: composite scores, filter tags,
// paradox description, and tier.
func (e *Engine) prioritise(d interfaces.ScoredDimension, w interfaces.Weights) interfaces.PrioritisedDimension {
	base := BaseScore(d, w)
	adjusted := base

	var filters []interfaces.FilterTag
	for _, rule := range e.rules {
		if !rule.Match(d) {
			continue
		}
		filters = append(filters, rule.Tag)
		if rule.Bonus != nil {
			adjusted += rule.Bonus(d, w)
		}
	}

	var paradoxDesc string
	if isParadox, desc := detectParadox(d); isParadox {
		filters = append(filters, interfaces.FilterParadox)
		paradoxDesc = desc
	}

	return interfaces.PrioritisedDimension{
		ScoredDimension:    d,
		BaseScore:          base,
		AdjustedScore:      adjusted,
		Tier:               TierFromScore(adjusted, e.thresholds),
		Filters:            filters,
		ParadoxDescription: paradoxDesc,
	}
}
