// Chart projections: the thin name/score slices that bar, radar and weight
// charts consume instead of the full ranked records.
package report

import "github.com/dayooguns/tompri/pkg/interfaces"

// BarSeries projects a ranking onto adjusted scores, in rank order.
func BarSeries(ranking *interfaces.Ranking) []interfaces.ChartPoint {
	points := make([]interfaces.ChartPoint, len(ranking.Dimensions))
	for i, d := range ranking.Dimensions {
		points[i] = interfaces.ChartPoint{Name: d.Name, Score: d.AdjustedScore}
	}
	return points
}

// RadarSeries projects current maturity per dimension, in the given order.
func RadarSeries(dims []interfaces.ScoredDimension) []interfaces.ChartPoint {
	points := make([]interfaces.ChartPoint, len(dims))
	for i, d := range dims {
		points[i] = interfaces.ChartPoint{Name: d.Name, Score: d.CurrentScore}
	}
	return points
}

// WeightSegment is one slice of the weight distribution chart.
type WeightSegment struct {
	Criterion interfaces.Criterion `json:"criterion"`
	Label     string               `json:"label"`
	Percent   int                  `json:"percent"`
	Offset    int                  `json:"offset"`
}

// WeightSegments lays the four weights out as cumulative chart segments in
// canonical criterion order.
func WeightSegments(w interfaces.Weights) []WeightSegment {
	segments := make([]WeightSegment, 0, 4)
	offset := 0
	for _, c := range interfaces.Criteria() {
		pct := w.Of(c)
		segments = append(segments, WeightSegment{
			Criterion: c,
			Label:     c.Label(),
			Percent:   pct,
			Offset:    offset,
		})
		offset += pct
	}
	return segments
}
