package report

import (
	"fmt"
	"io"

	"github.com/dayooguns/tompri/pkg/interfaces"
)

// MarkdownFormatter writes a ranking as Markdown suitable for sharing in
// docs or chat.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a Markdown ranking formatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format writes the ranking as Markdown to the given writer.
func (f *MarkdownFormatter) Format(w io.Writer, ranking *interfaces.Ranking) error {
	f.writeHeader(w, ranking)
	f.writeTable(w, ranking)
	f.writeParadoxes(w, ranking)
	f.writeFooter(w, ranking)
	return nil
}

func (f *MarkdownFormatter) writeHeader(w io.Writer, ranking *interfaces.Ranking) {
	fmt.Fprintln(w, "# TOM Prioritisation Report")
	fmt.Fprintln(w)
	weights := ranking.Weights
	fmt.Fprintf(w, "Weights: Business Impact %d%%, Feasibility %d%%, Political Viability %d%%, Foundation Building %d%%\n\n",
		weights.BusinessImpact, weights.Feasibility, weights.Political, weights.Foundation)
}

func (f *MarkdownFormatter) writeTable(w io.Writer, ranking *interfaces.Ranking) {
	fmt.Fprintln(w, "| Rank | Dimension | Tier | Base | Adjusted | Filters |")
	fmt.Fprintln(w, "|------|-----------|------|------|----------|---------|")
	for _, d := range ranking.Dimensions {
		fmt.Fprintf(w, "| %d | %s | %s | %.2f | %.2f | %s |\n",
			d.Rank, d.Name, d.Tier, d.BaseScore, d.AdjustedScore, joinTags(d.Filters))
	}
	fmt.Fprintln(w)
}

func (f *MarkdownFormatter) writeParadoxes(w io.Writer, ranking *interfaces.Ranking) {
	wrote := false
	for _, d := range ranking.Dimensions {
		if d.ParadoxDescription == "" {
			continue
		}
		if !wrote {
			fmt.Fprintln(w, "## Paradoxes")
			fmt.Fprintln(w)
			wrote = true
		}
		fmt.Fprintf(w, "- **%s**: %s\n", d.Name, d.ParadoxDescription)
	}
	if wrote {
		fmt.Fprintln(w)
	}
}

func (f *MarkdownFormatter) writeFooter(w io.Writer, ranking *interfaces.Ranking) {
	fmt.Fprintf(w, "_%d dimensions, generated %s_\n",
		len(ranking.Dimensions), ranking.GeneratedAt.Format("2006-01-02 15:04:05"))
}
