package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dayooguns/tompri/pkg/catalog"
)

var showCriteria bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the dimension catalog",
	Long: `Catalog prints the reference dimensions grouped by category, or the four
weighted criteria with their rating scales when --criteria is given.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().BoolVar(&showCriteria, "criteria", false, "show the weighted criteria instead of dimensions")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	if showCriteria {
		printCriteria()
		return nil
	}
	printDimensions()
	return nil
}

func printDimensions() {
	var lastCategory string
	for _, d := range catalog.Dimensions() {
		if string(d.Category) != lastCategory {
			fmt.Fprintf(os.Stdout, "\n%s\n", d.Category)
			lastCategory = string(d.Category)
		}
		fmt.Fprintf(os.Stdout, "  %s\n", d.Name)
		if verbose {
			fmt.Fprintf(os.Stdout, "    id: %s\n", d.ID)
			fmt.Fprintf(os.Stdout, "    %s\n", d.Description)
		}
	}
	fmt.Fprintln(os.Stdout)
}

func printCriteria() {
	for _, c := range catalog.Criteria() {
		fmt.Fprintf(os.Stdout, "\n%s\n", c.Title)
		fmt.Fprintf(os.Stdout, "  %s\n", c.Description)
		for _, line := range c.Scale {
			fmt.Fprintf(os.Stdout, "    %s\n", line)
		}
	}
	fmt.Fprintln(os.Stdout)
}
