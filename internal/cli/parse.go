package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pantryops/pantryd/internal/normalize"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Parse grocery text into structured items",
	Long: `Parse free-form grocery text into structured inventory changes without
touching the database.

Uses the configured extraction provider; if it is unreachable the
deterministic fallback parser answers instead (flagged used_fallback).

Examples:
  pantry parse "bought 2 gallons of milk and a dozen eggs"
  pantry parse --json "used 3 eggs"`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the raw extraction result as JSON")
}

func runParse(cmd *cobra.Command, args []string) error {
	extractor, err := getExtractor()
	if err != nil {
		return err
	}

	res := extractor.ParseText(context.Background(), args[0])
	res.Items = normalize.Items(res.Items)

	if parseJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	if res.Error != "" {
		fmt.Printf("warning: %s\n", res.Error)
	}
	fmt.Printf("%d item(s), confidence %.2f", len(res.Items), res.OverallConfidence)
	if res.UsedFallback {
		fmt.Print(" (fallback)")
	}
	if res.NeedsReview {
		fmt.Print(" (needs review)")
	}
	fmt.Println()
	for _, it := range res.Items {
		line := fmt.Sprintf("  %-9s %g %s %s", it.Action, it.Quantity, it.Unit, it.Name)
		if it.Category != "" {
			line += " [" + it.Category + "]"
		}
		fmt.Printf("%s (%.2f)\n", line, it.Confidence)
	}
	return nil
}
