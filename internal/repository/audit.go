package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/gen/ent"
)

// AuditRepository writes one audit row per applied batch.
type AuditRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAuditRepository(client *ent.Client, logger *slog.Logger) *AuditRepository {
	return &AuditRepository{client: client, logger: logger}
}

func (r *AuditRepository) RecordBatch(ctx context.Context, userID string, action constants.AuditAction, itemNames []string, detail json.RawMessage) error {
	builder := r.client.AuditEntry.Create().
		SetUserID(userID).
		SetAction(string(action)).
		SetItemNames(itemNames)
	if len(detail) > 0 {
		builder = builder.SetDetail(detail)
	}
	if err := builder.Exec(ctx); err != nil {
		r.logger.Error("failed to write audit entry", "user_id", userID, "action", string(action), "error", err)
		return err
	}
	return nil
}
