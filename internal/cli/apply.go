package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/internal/common"
	"github.com/pantryops/pantryd/internal/inventory"
	"github.com/pantryops/pantryd/internal/normalize"
	"github.com/pantryops/pantryd/internal/repository"
)

var (
	applyUser string
	applyFile string
)

// applyInput mirrors the wire item shape: expiration distinguishes null
// (clear) from absent (preserve).
type applyInput struct {
	Name              string                  `json:"name"`
	Quantity          float64                 `json:"quantity"`
	Unit              string                  `json:"unit,omitempty"`
	Action            string                  `json:"action"`
	Category          string                  `json:"category,omitempty"`
	Location          string                  `json:"location,omitempty"`
	LowStockThreshold *float64                `json:"low_stock_threshold,omitempty"`
	Expiration        common.Optional[string] `json:"expiration,omitzero"`
	Notes             string                  `json:"notes,omitempty"`
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a batch of inventory updates from a JSON file",
	Long: `Apply a JSON array of inventory updates for a user, in file order.

Each element needs name, quantity and action (add, subtract or set).
Subtract and set clamp at zero. Unknown items are created with defaults.

Example:
  pantry apply --user alice --file updates.json`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringVarP(&applyUser, "user", "u", "", "user id (required)")
	applyCmd.Flags().StringVarP(&applyFile, "file", "f", "", "JSON file with updates, - for stdin (required)")
	_ = applyCmd.MarkFlagRequired("user")
	_ = applyCmd.MarkFlagRequired("file")
}

func runApply(cmd *cobra.Command, args []string) error {
	data, err := readFileOrStdin(applyFile)
	if err != nil {
		return err
	}
	var inputs []applyInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return fmt.Errorf("parse updates file: %w", err)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no updates in %s", applyFile)
	}

	updates := make([]inventory.UpdateRecord, 0, len(inputs))
	for i, in := range inputs {
		upd := inventory.UpdateRecord{
			Name:     in.Name,
			Quantity: in.Quantity,
			Unit:     constants.NormalizeUnit(in.Unit),
			Action:   strings.ToLower(strings.TrimSpace(in.Action)),
		}
		if strings.TrimSpace(in.Category) != "" {
			upd.Category = string(constants.NormalizeCategory(in.Category))
		}
		if strings.TrimSpace(in.Location) != "" {
			upd.Location = common.Some(strings.TrimSpace(in.Location))
		}
		if in.LowStockThreshold != nil && *in.LowStockThreshold >= 0 {
			upd.LowStockThreshold = common.Some(*in.LowStockThreshold)
		}
		if strings.TrimSpace(in.Notes) != "" {
			upd.Notes = common.Some(strings.TrimSpace(in.Notes))
		}
		if in.Expiration.Present {
			if in.Expiration.Null {
				upd.Expiration = common.Null[time.Time]()
			} else if t, ok := normalize.ParseInstant(in.Expiration.Value); ok {
				upd.Expiration = common.Some(t)
			} else {
				return fmt.Errorf("updates[%d]: expiration %q is not a recognized date", i, in.Expiration.Value)
			}
		}
		updates = append(updates, upd)
	}

	ctx := context.Background()
	client, err := getClient(ctx)
	if err != nil {
		return err
	}
	inventoryRepo := repository.NewInventoryRepository(client, logger)
	auditRepo := repository.NewAuditRepository(client, logger)
	engine := inventory.NewEngine(inventoryRepo, auditRepo, logger)

	result, err := engine.Apply(ctx, applyUser, constants.AuditActionApply, updates)
	if err != nil {
		return fmt.Errorf("apply: %w", err)
	}

	for _, o := range result.Outcomes {
		if o.Success {
			fmt.Printf("  ok   %s\n", o.Message)
		} else {
			fmt.Printf("  FAIL %s: %s\n", o.Name, o.Error)
		}
	}
	fmt.Printf("%d applied, %d failed\n", result.Summary.Successful, result.Summary.Failed)
	if !result.Success {
		os.Exit(1)
	}
	return nil
}

func readFileOrStdin(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
