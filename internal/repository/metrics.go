package repository

import (
	"context"
	"log/slog"

	"github.com/pantryops/pantryd/gen/ent"
	"github.com/pantryops/pantryd/gen/ent/interactionevent"
	"github.com/pantryops/pantryd/gen/ent/metricssnapshot"
	"github.com/pantryops/pantryd/internal/metrics"
)

// MetricsRepository backs the aggregator: an append-only event log plus keyed
// snapshot rows updated with additive increments.
type MetricsRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewMetricsRepository(client *ent.Client, logger *slog.Logger) *MetricsRepository {
	return &MetricsRepository{client: client, logger: logger}
}

func (r *MetricsRepository) Append(ctx context.Context, ev metrics.Event) error {
	builder := r.client.InteractionEvent.Create().
		SetUserID(ev.UserID).
		SetInput(ev.Input).
		SetAgent(ev.Agent).
		SetSuccess(ev.Success).
		SetUsedFallback(ev.UsedFallback).
		SetLatencyMs(ev.LatencyMS).
		SetTimestamp(ev.Timestamp)
	if ev.Confidence != nil {
		builder = builder.SetConfidence(float32(*ev.Confidence))
	}
	if ev.Error != "" {
		builder = builder.SetError(ev.Error)
	}
	return builder.Exec(ctx)
}

func (r *MetricsRepository) All(ctx context.Context) ([]metrics.Event, error) {
	rows, err := r.client.InteractionEvent.Query().
		Order(interactionevent.ByTimestamp()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	events := make([]metrics.Event, len(rows))
	for i, row := range rows {
		ev := metrics.Event{
			UserID:       row.UserID,
			Input:        row.Input,
			Agent:        row.Agent,
			Success:      row.Success,
			UsedFallback: row.UsedFallback,
			LatencyMS:    row.LatencyMs,
			Timestamp:    row.Timestamp,
		}
		if row.Confidence != nil {
			c := float64(*row.Confidence)
			ev.Confidence = &c
		}
		if row.Error != nil {
			ev.Error = *row.Error
		}
		events[i] = ev
	}
	return events, nil
}

// AddDelta folds d into the snapshot under key. The row is created lazily;
// the constraint-error retry covers two writers racing to create it.
func (r *MetricsRepository) AddDelta(ctx context.Context, key string, d metrics.Delta) error {
	n, err := r.addToExisting(ctx, key, d)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	err = r.createSnapshot(ctx, key, d)
	if err == nil {
		return nil
	}
	if !ent.IsConstraintError(err) {
		return err
	}
	// lost the create race, the row exists now
	_, err = r.addToExisting(ctx, key, d)
	return err
}

func (r *MetricsRepository) addToExisting(ctx context.Context, key string, d metrics.Delta) (int, error) {
	return r.client.MetricsSnapshot.Update().
		Where(metricssnapshot.Key(key)).
		AddTotal(d.Total).
		AddSuccessCount(d.SuccessCount).
		AddFallbackCount(d.FallbackCount).
		AddLatencySumMs(d.LatencySumMS).
		AddConfidenceSum(d.ConfidenceSum).
		AddLatencyLt2s(d.LatencyLt2s).
		AddLatency2s5s(d.Latency2s5s).
		AddLatencyGt5s(d.LatencyGt5s).
		AddConfidenceLow(d.ConfidenceLow).
		AddConfidenceMedium(d.ConfidenceMedium).
		AddConfidenceHigh(d.ConfidenceHigh).
		Save(ctx)
}

func (r *MetricsRepository) createSnapshot(ctx context.Context, key string, d metrics.Delta) error {
	return r.client.MetricsSnapshot.Create().
		SetKey(key).
		SetTotal(d.Total).
		SetSuccessCount(d.SuccessCount).
		SetFallbackCount(d.FallbackCount).
		SetLatencySumMs(d.LatencySumMS).
		SetConfidenceSum(d.ConfidenceSum).
		SetLatencyLt2s(d.LatencyLt2s).
		SetLatency2s5s(d.Latency2s5s).
		SetLatencyGt5s(d.LatencyGt5s).
		SetConfidenceLow(d.ConfidenceLow).
		SetConfidenceMedium(d.ConfidenceMedium).
		SetConfidenceHigh(d.ConfidenceHigh).
		Exec(ctx)
}

func (r *MetricsRepository) Get(ctx context.Context, key string) (metrics.Delta, bool, error) {
	row, err := r.client.MetricsSnapshot.Query().
		Where(metricssnapshot.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return metrics.Delta{}, false, nil
		}
		return metrics.Delta{}, false, err
	}
	return toDelta(row), true, nil
}

// Replace swaps the whole snapshot table for the recomputed set in one
// transaction.
func (r *MetricsRepository) Replace(ctx context.Context, snapshots map[string]metrics.Delta) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.MetricsSnapshot.Delete().Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}
	for key, d := range snapshots {
		if err := tx.MetricsSnapshot.Create().
			SetKey(key).
			SetTotal(d.Total).
			SetSuccessCount(d.SuccessCount).
			SetFallbackCount(d.FallbackCount).
			SetLatencySumMs(d.LatencySumMS).
			SetConfidenceSum(d.ConfidenceSum).
			SetLatencyLt2s(d.LatencyLt2s).
			SetLatency2s5s(d.Latency2s5s).
			SetLatencyGt5s(d.LatencyGt5s).
			SetConfidenceLow(d.ConfidenceLow).
			SetConfidenceMedium(d.ConfidenceMedium).
			SetConfidenceHigh(d.ConfidenceHigh).
			Exec(ctx); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func toDelta(row *ent.MetricsSnapshot) metrics.Delta {
	return metrics.Delta{
		Total:            row.Total,
		SuccessCount:     row.SuccessCount,
		FallbackCount:    row.FallbackCount,
		LatencySumMS:     row.LatencySumMs,
		ConfidenceSum:    row.ConfidenceSum,
		LatencyLt2s:      row.LatencyLt2s,
		Latency2s5s:      row.Latency2s5s,
		LatencyGt5s:      row.LatencyGt5s,
		ConfidenceLow:    row.ConfidenceLow,
		ConfidenceMedium: row.ConfidenceMedium,
		ConfidenceHigh:   row.ConfidenceHigh,
	}
}
