package report

import (
	"sort"

	"github.com/dayooguns/tompri/pkg/interfaces"
)

// Average is a labelled mean maturity score.
type Average struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
	Count int     `json:"count"`
}

// CategoryAverages computes mean current maturity per category, sorted
// descending by score.
func CategoryAverages(dims []interfaces.ScoredDimension) []Average {
	return averagesBy(dims, func(d interfaces.ScoredDimension) string {
		return string(d.Category)
	})
}

// SubDimensionAverages computes mean current maturity per sub-dimension,
// sorted descending by score. Dimensions without a sub-dimension are
// grouped under their own name.
func SubDimensionAverages(dims []interfaces.ScoredDimension) []Average {
	return averagesBy(dims, func(d interfaces.ScoredDimension) string {
		if d.SubDimension != "" {
			return d.SubDimension
		}
		return d.Name
	})
}

func averagesBy(dims []interfaces.ScoredDimension, keyOf func(interfaces.ScoredDimension) string) []Average {
	totals := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for _, d := range dims {
		key := keyOf(d)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		totals[key] += d.CurrentScore
		counts[key]++
	}

	averages := make([]Average, 0, len(order))
	for _, key := range order {
		averages = append(averages, Average{
			Label: key,
			Score: totals[key] / float64(counts[key]),
			Count: counts[key],
		})
	}

	sort.SliceStable(averages, func(i, j int) bool {
		return averages[i].Score > averages[j].Score
	})
	return averages
}
