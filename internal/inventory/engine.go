package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/internal/extract"
)

// Engine applies update batches against a user's inventory. A batch runs
// sequentially against one in-memory snapshot so that two updates naming the
// same item compose ("add 2" then "subtract 1" nets +1 on the stored value).
// Concurrent batches from different requests are not serialized against each
// other; last write wins per field.
type Engine struct {
	store  Store
	audit  AuditSink
	logger *slog.Logger
}

func NewEngine(store Store, audit AuditSink, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{store: store, audit: audit, logger: logger}
}

// Apply processes updates in input order and returns exactly one outcome per
// update, in the same order. A per-item failure is isolated to its outcome;
// earlier committed items stay committed. The returned error is reserved for
// batch-level failures (the snapshot read), never per-item ones.
func (e *Engine) Apply(ctx context.Context, userID string, action constants.AuditAction, updates []UpdateRecord) (ApplyResult, error) {
	snapshot, err := e.store.SnapshotFor(ctx, userID)
	if err != nil {
		e.logger.Error("inventory.apply.snapshot_failed", "user_id", userID, "error", err)
		return ApplyResult{}, fmt.Errorf("read inventory snapshot: %w", err)
	}

	index := make(map[string]Record, len(snapshot))
	for _, rec := range snapshot {
		index[nameKey(rec.Name)] = rec
	}

	outcomes := make([]ApplyOutcome, 0, len(updates))
	var changed []string
	for _, upd := range updates {
		outcome := e.applyOne(ctx, userID, index, upd)
		outcomes = append(outcomes, outcome)
		if outcome.Success {
			changed = append(changed, outcome.Name)
		}
	}

	result := ApplyResult{Outcomes: outcomes}
	result.Summary.Total = len(outcomes)
	for _, o := range outcomes {
		if o.Success {
			result.Summary.Successful++
		} else {
			result.Summary.Failed++
		}
	}
	result.Success = result.Summary.Failed == 0

	if e.audit != nil && len(changed) > 0 {
		detail, _ := json.Marshal(result.Summary)
		if err := e.audit.RecordBatch(ctx, userID, action, changed, detail); err != nil {
			// audit is best-effort; the mutations are already committed
			e.logger.Warn("inventory.apply.audit_failed", "user_id", userID, "error", err)
		}
	}

	e.logger.Info("inventory.apply.done",
		"user_id", userID,
		"action", string(action),
		"total", result.Summary.Total,
		"successful", result.Summary.Successful,
		"failed", result.Summary.Failed,
	)
	return result, nil
}

func (e *Engine) applyOne(ctx context.Context, userID string, index map[string]Record, upd UpdateRecord) ApplyOutcome {
	name := strings.TrimSpace(upd.Name)
	if name == "" {
		return ApplyOutcome{Name: upd.Name, Error: "item name is empty"}
	}
	switch upd.Action {
	case extract.ActionAdd, extract.ActionSubtract, extract.ActionSet:
	default:
		return ApplyOutcome{Name: name, Error: fmt.Sprintf("unknown action %q", upd.Action)}
	}

	key := nameKey(name)
	existing, ok := index[key]
	if !ok {
		rec, err := e.create(ctx, userID, name, upd)
		if err != nil {
			e.logger.Error("inventory.apply.create_failed", "user_id", userID, "name", name, "error", err)
			return ApplyOutcome{Name: name, Error: err.Error()}
		}
		index[key] = rec
		qty := rec.Quantity
		return ApplyOutcome{
			ID:           &rec.ID,
			Name:         rec.Name,
			Success:      true,
			ResultAction: ResultCreated,
			Quantity:     &qty,
			LowStock:     qty <= rec.LowStockThreshold,
			Message:      "created " + rec.Name,
		}
	}

	newQty := applyQuantity(existing.Quantity, upd.Action, upd.Quantity)
	mut := Mutation{
		Quantity:   &newQty,
		Location:   upd.Location,
		Expiration: upd.Expiration,
		Notes:      upd.Notes,
	}
	if upd.Unit != "" {
		mut.Unit = &upd.Unit
	}
	if upd.Category != "" {
		mut.Category = &upd.Category
	}
	if v, ok := upd.LowStockThreshold.Get(); ok {
		mut.LowStockThreshold = &v
	}

	rec, err := e.store.Update(ctx, existing.ID, mut)
	if err != nil {
		e.logger.Error("inventory.apply.update_failed", "user_id", userID, "name", name, "error", err)
		return ApplyOutcome{Name: name, Error: err.Error()}
	}
	index[key] = rec
	qty := rec.Quantity
	return ApplyOutcome{
		ID:           &rec.ID,
		Name:         rec.Name,
		Success:      true,
		ResultAction: ResultUpdated,
		Quantity:     &qty,
		LowStock:     qty <= rec.LowStockThreshold,
		Message:      fmt.Sprintf("%s: %s %g -> %g", rec.Name, upd.Action, existing.Quantity, qty),
	}
}

func (e *Engine) create(ctx context.Context, userID, name string, upd UpdateRecord) (Record, error) {
	rec := Record{
		UserID:            userID,
		Name:              name,
		Quantity:          applyQuantity(0, upd.Action, upd.Quantity),
		Unit:              constants.DefaultUnit,
		Category:          string(constants.Uncategorized),
		LowStockThreshold: 1,
	}
	if upd.Unit != "" {
		rec.Unit = upd.Unit
	}
	if upd.Category != "" {
		rec.Category = upd.Category
	}
	if v, ok := upd.LowStockThreshold.Get(); ok {
		rec.LowStockThreshold = v
	}
	if v, ok := upd.Location.Get(); ok {
		rec.Location = &v
	}
	if v, ok := upd.Expiration.Get(); ok {
		rec.Expiration = &v
	}
	if v, ok := upd.Notes.Get(); ok {
		rec.Notes = &v
	}
	return e.store.Create(ctx, rec)
}

// applyQuantity computes the new quantity. Every action clamps at zero;
// stock never goes negative, even for an add carrying a negative delta.
func applyQuantity(old float64, action string, delta float64) float64 {
	switch action {
	case extract.ActionAdd:
		if old+delta < 0 {
			return 0
		}
		return old + delta
	case extract.ActionSubtract:
		if old-delta < 0 {
			return 0
		}
		return old - delta
	case extract.ActionSet:
		if delta < 0 {
			return 0
		}
		return delta
	default:
		return old
	}
}

// nameKey is the case-insensitive, whitespace-trimmed identity of a record.
func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NameKey exposes the identity used by the engine so stores index the same way.
func NameKey(name string) string {
	return nameKey(name)
}
