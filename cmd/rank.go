package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dayooguns/tompri/pkg/catalog"
	"github.com/dayooguns/tompri/pkg/cli"
	"github.com/dayooguns/tompri/pkg/csvio"
	"github.com/dayooguns/tompri/pkg/engine"
	"github.com/dayooguns/tompri/pkg/interfaces"
	"github.com/dayooguns/tompri/pkg/report"
	"github.com/dayooguns/tompri/pkg/store"
)

var rankCmd = &cobra.Command{
	Use:   "rank <scores.csv>",
	Short: "Rank dimensions from an assessment CSV",
	Long: `Rank reads raw assessment scores from a CSV file, runs the prioritisation
engine, and writes the ranked priority list.

The CSV needs a header row; columns are matched by name, in any order:
  Dimension, Maturity, Business Impact, Feasibility, Political Viability,
  Foundation Building

Rows naming unknown dimensions are skipped with a warning. Dimensions absent
from the file keep zero scores. Weights come from .tompri.yml or defaults.`,
	Args: cobra.ExactArgs(1),
	RunE: runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)
}

// formatter writes a ranking to a writer.
type formatter interface {
	Format(w io.Writer, ranking *interfaces.Ranking) error
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("rank: %w", err)
	}

	slog.Debug("config loaded",
		"weights.business_impact", cfg.Weights.BusinessImpact,
		"weights.feasibility", cfg.Weights.Feasibility,
		"weights.political", cfg.Weights.Political,
		"weights.foundation", cfg.Weights.Foundation,
	)

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("rank: opening scores file: %w", err)
	}
	defer file.Close()

	records, err := csvio.Read(file, catalog.ByName)
	if err != nil {
		return fmt.Errorf("rank: %w", err)
	}
	slog.Info("scores imported", "rows", len(records))

	// The store clamps out-of-range values and fills in zero records for
	// dimensions the file does not mention.
	st := store.New(catalog.Dimensions())
	for _, rec := range records {
		if err := st.Apply(rec); err != nil {
			return fmt.Errorf("rank: %w", err)
		}
	}

	eng := engine.New(engine.WithTierThresholds(cfg.Tiers.Thresholds()))
	ranking := eng.Rank(st.Snapshot(), cfg.Weights)

	name := format
	if name == "" {
		name = cfg.Output.Format
	}
	f := selectFormatter(name)

	var w io.Writer = os.Stdout
	if output != "" {
		out, fileErr := os.Create(output)
		if fileErr != nil {
			return fmt.Errorf("rank: creating output file: %w", fileErr)
		}
		defer out.Close() // best-effort cleanup
		w = out
	}

	if err := f.Format(w, ranking); err != nil {
		return fmt.Errorf("rank: writing ranking: %w", err)
	}

	return nil
}

// selectFormatter maps a format name to a ranking formatter, defaulting to
// terminal output for unknown names.
func selectFormatter(name string) formatter {
	switch name {
	case "json":
		return report.NewJSONFormatter()
	case "markdown":
		return report.NewMarkdownFormatter()
	case "csv":
		return report.NewCSVFormatter()
	default:
		return report.NewTerminalFormatter()
	}
}
