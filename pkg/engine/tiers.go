package engine

import "github.com/dayooguns/tompri/pkg/interfaces"

// Default tier boundaries on the adjusted score.
const (
	DefaultPriority1Threshold = 4.0
	DefaultPriority2Threshold = 3.0
	DefaultPriority3Threshold = 2.0
)

// TierThresholds holds the step-function boundaries for tier assignment.
type TierThresholds struct {
	Priority1 float64
	Priority2 float64
	Priority3 float64
}

// DefaultTierThresholds returns the standard 4.0/3.0/2.0 boundaries.
func DefaultTierThresholds() TierThresholds {
	return TierThresholds{
		Priority1: DefaultPriority1Threshold,
		Priority2: DefaultPriority2Threshold,
		Priority3: DefaultPriority3Threshold,
	}
}

// TierFromScore returns the priority tier for an adjusted score.
// Boundaries are evaluated descending, first match wins:
// Priority 1: score >= t.Priority1
// Priority 2: score >= t.Priority2
// Priority 3: score >= t.Priority3
// Deprioritise otherwise.
func TierFromScore(score float64, t TierThresholds) interfaces.Tier {
	switch {
	case score >= t.Priority1:
		return interfaces.TierPriority1
	case score >= t.Priority2:
		return interfaces.TierPriority2
	case score >= t.Priority3:
		return interfaces.TierPriority3
	default:
		return interfaces.TierDeprioritise
	}
}
