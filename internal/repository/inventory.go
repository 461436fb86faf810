package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/pantryops/pantryd/gen/ent"
	"github.com/pantryops/pantryd/gen/ent/inventoryitem"
	"github.com/pantryops/pantryd/internal/inventory"
)

// InventoryRepository backs both the mutation engine's record store and the
// agent's read-only context view.
type InventoryRepository interface {
	inventory.Store
	RecentInventory(ctx context.Context, userID string, limit int) ([]inventory.Record, error)
}

type inventoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInventoryRepository(client *ent.Client, logger *slog.Logger) InventoryRepository {
	return &inventoryRepository{
		client: client,
		logger: logger,
	}
}

// SnapshotFor loads every live record for the user. The engine indexes the
// result once per batch.
func (r *inventoryRepository) SnapshotFor(ctx context.Context, userID string) ([]inventory.Record, error) {
	rows, err := r.client.InventoryItem.Query().
		Where(inventoryitem.UserID(userID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load inventory snapshot", "user_id", userID, "error", err)
		return nil, err
	}
	recs := make([]inventory.Record, len(rows))
	for i, row := range rows {
		recs[i] = toInventoryRecord(row)
	}
	return recs, nil
}

func (r *inventoryRepository) Create(ctx context.Context, rec inventory.Record) (inventory.Record, error) {
	builder := r.client.InventoryItem.Create().
		SetUserID(rec.UserID).
		SetName(rec.Name).
		SetNameKey(inventory.NameKey(rec.Name)).
		SetQuantity(rec.Quantity).
		SetUnit(rec.Unit).
		SetCategory(rec.Category).
		SetLowStockThreshold(rec.LowStockThreshold).
		SetNillableLocation(rec.Location).
		SetNillableExpiration(rec.Expiration).
		SetNillableNotes(rec.Notes)

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create inventory item", "user_id", rec.UserID, "name", rec.Name, "error", err)
		return inventory.Record{}, err
	}
	return toInventoryRecord(row), nil
}

func (r *inventoryRepository) Update(ctx context.Context, id uuid.UUID, mut inventory.Mutation) (inventory.Record, error) {
	builder := r.client.InventoryItem.UpdateOneID(id).
		SetNillableQuantity(mut.Quantity).
		SetNillableUnit(mut.Unit).
		SetNillableCategory(mut.Category).
		SetNillableLowStockThreshold(mut.LowStockThreshold)

	if mut.Location.Present {
		if mut.Location.Null {
			builder = builder.ClearLocation()
		} else {
			builder = builder.SetLocation(mut.Location.Value)
		}
	}
	if mut.Expiration.Present {
		if mut.Expiration.Null {
			builder = builder.ClearExpiration()
		} else {
			builder = builder.SetExpiration(mut.Expiration.Value)
		}
	}
	if mut.Notes.Present {
		if mut.Notes.Null {
			builder = builder.ClearNotes()
		} else {
			builder = builder.SetNotes(mut.Notes.Value)
		}
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update inventory item", "item_id", id, "error", err)
		return inventory.Record{}, err
	}
	return toInventoryRecord(row), nil
}

// RecentInventory returns the user's most recently touched records, newest
// first, bounded by limit.
func (r *inventoryRepository) RecentInventory(ctx context.Context, userID string, limit int) ([]inventory.Record, error) {
	rows, err := r.client.InventoryItem.Query().
		Where(inventoryitem.UserID(userID)).
		Order(inventoryitem.ByUpdatedAt(entsql.OrderDesc())).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load recent inventory", "user_id", userID, "error", err)
		return nil, err
	}
	recs := make([]inventory.Record, len(rows))
	for i, row := range rows {
		recs[i] = toInventoryRecord(row)
	}
	return recs, nil
}

func toInventoryRecord(row *ent.InventoryItem) inventory.Record {
	return inventory.Record{
		ID:                row.ID,
		UserID:            row.UserID,
		Name:              row.Name,
		Quantity:          row.Quantity,
		Unit:              row.Unit,
		Category:          row.Category,
		Location:          row.Location,
		LowStockThreshold: row.LowStockThreshold,
		Expiration:        row.Expiration,
		Notes:             row.Notes,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
