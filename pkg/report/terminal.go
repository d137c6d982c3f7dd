package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dayooguns/tompri/pkg/interfaces"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

// tierOrder lists tiers from most to least urgent for grouped display.
var tierOrder = []interfaces.Tier{
	interfaces.TierPriority1,
	interfaces.TierPriority2,
	interfaces.TierPriority3,
	interfaces.TierDeprioritise,
}

// TerminalFormatter writes a color-coded ranking to a terminal.
type TerminalFormatter struct{}

// NewTerminalFormatter creates a terminal ranking formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// Format writes the ranking to the given writer using ANSI colors.
func (f *TerminalFormatter) Format(w io.Writer, ranking *interfaces.Ranking) error {
	f.writeHeader(w)
	f.writeWeights(w, ranking.Weights)
	f.writeTiers(w, ranking)
	f.writeMaturity(w, ranking)
	f.writeFooter(w, ranking)
	return nil
}

func (f *TerminalFormatter) writeHeader(w io.Writer) {
	fmt.Fprintf(w, "\n%s%s══════════════════════════════════════════%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s  TOM Prioritisation Report%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s══════════════════════════════════════════%s\n\n", colorBold, colorCyan, colorReset)
}

func (f *TerminalFormatter) writeWeights(w io.Writer, weights interfaces.Weights) {
	var parts []string
	for _, seg := range WeightSegments(weights) {
		parts = append(parts, fmt.Sprintf("%s %d%%", seg.Label, seg.Percent))
	}
	fmt.Fprintf(w, "  %sWeights: %s%s\n\n", colorDim, strings.Join(parts, " | "), colorReset)
}

func (f *TerminalFormatter) writeTiers(w io.Writer, ranking *interfaces.Ranking) {
	grouped := groupByTier(ranking.Dimensions)

	for _, tier := range tierOrder {
		dims, ok := grouped[tier]
		if !ok {
			continue
		}

		color := tierColor(tier)
		fmt.Fprintf(w, "  %s%s── %s (%d) ──%s\n", colorBold, color, strings.ToUpper(string(tier)), len(dims), colorReset)

		for _, d := range dims {
			fmt.Fprintf(w, "    %s%2d.%s %s %s(%.2f)%s\n", color, d.Rank, colorReset, d.Name, colorDim, d.AdjustedScore, colorReset)
			if len(d.Filters) > 0 {
				fmt.Fprintf(w, "        %s%s%s\n", colorCyan, joinTags(d.Filters), colorReset)
			}
			if d.ParadoxDescription != "" {
				fmt.Fprintf(w, "        %s%s%s\n", colorYellow, d.ParadoxDescription, colorReset)
			}
		}
		fmt.Fprintln(w)
	}
}

func (f *TerminalFormatter) writeMaturity(w io.Writer, ranking *interfaces.Ranking) {
	scored := make([]interfaces.ScoredDimension, len(ranking.Dimensions))
	for i, d := range ranking.Dimensions {
		scored[i] = d.ScoredDimension
	}

	fmt.Fprintf(w, "  %s%s── CURRENT MATURITY ──%s\n", colorBold, colorCyan, colorReset)
	for _, avg := range CategoryAverages(scored) {
		fmt.Fprintf(w, "    %-28s %.2f\n", avg.Label, avg.Score)
	}
	fmt.Fprintln(w)
}

func (f *TerminalFormatter) writeFooter(w io.Writer, ranking *interfaces.Ranking) {
	fmt.Fprintf(w, "  %s%s──────────────────────────────────────────%s\n", colorDim, colorCyan, colorReset)
	fmt.Fprintf(w, "  %sDimensions: %d | Generated: %s%s\n\n",
		colorDim, len(ranking.Dimensions), ranking.GeneratedAt.Format("2006-01-02 15:04:05"), colorReset)
}

// tierColor returns the ANSI color for a tier.
func tierColor(t interfaces.Tier) string {
	switch t {
	case interfaces.TierPriority1:
		return colorRed
	case interfaces.TierPriority2:
		return colorYellow
	case interfaces.TierPriority3:
		return colorGreen
	case interfaces.TierDeprioritise:
		return colorDim
	default:
		return colorReset
	}
}

// groupByTier groups ranked dimensions by their tier, preserving rank order.
func groupByTier(dims []interfaces.PrioritisedDimension) map[interfaces.Tier][]interfaces.PrioritisedDimension {
	grouped := make(map[interfaces.Tier][]interfaces.PrioritisedDimension)
	for _, d := range dims {
		grouped[d.Tier] = append(grouped[d.Tier], d)
	}
	return grouped
}

func joinTags(tags []interfaces.FilterTag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, "; ")
}
