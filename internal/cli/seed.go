package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/internal/inventory"
	"github.com/pantryops/pantryd/internal/repository"
)

var (
	seedUser string
	seedFile string
)

type seedItem struct {
	Name              string   `json:"name"`
	Quantity          float64  `json:"quantity"`
	Unit              string   `json:"unit,omitempty"`
	Category          string   `json:"category,omitempty"`
	Location          *string  `json:"location,omitempty"`
	LowStockThreshold *float64 `json:"low_stock_threshold,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Bulk-load inventory records from a JSON file",
	Long: `Bulk-insert inventory records for a user from a JSON array. Inserts
bypass the mutation engine; use this for dev fixtures, not for real updates.

Example:
  pantry seed --user alice --file fixtures/pantry.json`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedUser, "user", "u", "", "user id (required)")
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "JSON file with records, - for stdin (required)")
	_ = seedCmd.MarkFlagRequired("user")
	_ = seedCmd.MarkFlagRequired("file")
}

func runSeed(cmd *cobra.Command, args []string) error {
	data, err := readFileOrStdin(seedFile)
	if err != nil {
		return err
	}
	var items []seedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	recs := make([]inventory.Record, 0, len(items))
	for i, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return fmt.Errorf("items[%d]: name is required", i)
		}
		rec := inventory.Record{
			UserID:            seedUser,
			Name:              strings.TrimSpace(it.Name),
			Quantity:          it.Quantity,
			Unit:              constants.NormalizeUnit(it.Unit),
			Category:          string(constants.NormalizeCategory(it.Category)),
			Location:          it.Location,
			LowStockThreshold: 1,
			Notes:             it.Notes,
		}
		if rec.Unit == "" {
			rec.Unit = constants.DefaultUnit
		}
		if it.LowStockThreshold != nil && *it.LowStockThreshold >= 0 {
			rec.LowStockThreshold = *it.LowStockThreshold
		}
		recs = append(recs, rec)
	}

	ctx := context.Background()
	client, err := getClient(ctx)
	if err != nil {
		return err
	}
	n, err := repository.SeedInventory(ctx, client, recs, logger)
	if err != nil {
		return fmt.Errorf("seed (%d inserted): %w", n, err)
	}
	fmt.Printf("seeded %d record(s) for %s\n", n, seedUser)
	return nil
}
