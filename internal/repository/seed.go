package repository

import (
	"context"
	"log/slog"

	"github.com/pantryops/pantryd/gen/ent"
	"github.com/pantryops/pantryd/internal/inventory"
)

// seedChunkSize keeps each bulk insert under the driver parameter limit.
const seedChunkSize = 400

// SeedInventory bulk-inserts records, chunked. Meant for dev fixtures and
// test setup; it bypasses the mutation engine on purpose.
func SeedInventory(ctx context.Context, client *ent.Client, recs []inventory.Record, logger *slog.Logger) (int, error) {
	if logger == nil {
		logger = slog.Default()
	}
	inserted := 0
	for start := 0; start < len(recs); start += seedChunkSize {
		end := start + seedChunkSize
		if end > len(recs) {
			end = len(recs)
		}
		builders := make([]*ent.InventoryItemCreate, 0, end-start)
		for _, rec := range recs[start:end] {
			builders = append(builders, client.InventoryItem.Create().
				SetUserID(rec.UserID).
				SetName(rec.Name).
				SetNameKey(inventory.NameKey(rec.Name)).
				SetQuantity(rec.Quantity).
				SetUnit(rec.Unit).
				SetCategory(rec.Category).
				SetLowStockThreshold(rec.LowStockThreshold).
				SetNillableLocation(rec.Location).
				SetNillableExpiration(rec.Expiration).
				SetNillableNotes(rec.Notes))
		}
		if err := client.InventoryItem.CreateBulk(builders...).Exec(ctx); err != nil {
			logger.Error("seed chunk failed", "offset", start, "size", end-start, "error", err)
			return inserted, err
		}
		inserted += end - start
	}
	logger.Info("seeded inventory", "records", inserted)
	return inserted, nil
}
