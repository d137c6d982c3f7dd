package engine

import (
	"fmt"
	"strings"

	"github.com/dayooguns/tompri/pkg/interfaces"
)

// Paradox boundaries: a dimension is paradoxical when its rated criteria
// disagree sharply, with at least one very high and at least one very low.
const (
	paradoxHighFloor = 4
	paradoxLowCeil   = 2
	paradoxMinGap    = 2
)

// detectParadox inspects the rated (strictly positive) criteria of a
// dimension. Unrated criteria are excluded here, unlike the base-score
// formula. Fewer than two rated criteria can never form a paradox.
//
// The description names every criterion at the maximum and every criterion at
// the minimum, e.g. "High Business Impact (5) vs Low Feasibility (1)".
func detectParadox(d interfaces.ScoredDimension) (bool, string) {
	rated := 0
	maxScore, minScore := 0, 0
	for _, c := range interfaces.Criteria() {
		v := d.Rating(c)
		if v <= 0 {
			continue
		}
		if rated == 0 {
			maxScore, minScore = v, v
		} else {
			if v > maxScore {
				maxScore = v
			}
			if v < minScore {
				minScore = v
			}
		}
		rated++
	}

	if rated < 2 {
		return false, ""
	}
	if maxScore < paradoxHighFloor || minScore > paradoxLowCeil || maxScore-minScore < paradoxMinGap {
		return false, ""
	}

	var high, low []string
	for _, c := range interfaces.Criteria() {
		switch d.Rating(c) {
		case maxScore:
			high = append(high, c.Label())
		case minScore:
			low = append(low, c.Label())
		}
	}

	desc := fmt.Sprintf("High %s (%d) vs Low %s (%d)",
		strings.Join(high, "/"), maxScore,
		strings.Join(low, "/"), minScore)
	return true, desc
}
