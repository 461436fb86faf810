// Package metrics folds interaction events into rolling snapshots: one global
// and one per UTC day. Snapshots are purely additive and recomputable from
// the append-only event stream.
package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// GlobalKey is the snapshot key for the all-time aggregate; daily snapshots
// use the event's UTC date formatted as 2006-01-02.
const GlobalKey = "global"

// Event is one completed pipeline invocation (sync parse, async ingestion,
// or inline agent request).
type Event struct {
	UserID       string
	Input        string
	Agent        string
	Success      bool
	UsedFallback bool
	LatencyMS    int64
	Confidence   *float64
	Error        string
	Timestamp    time.Time
}

// Delta is the additive contribution of one or more events to a snapshot.
type Delta struct {
	Total            int64
	SuccessCount     int64
	FallbackCount    int64
	LatencySumMS     int64
	ConfidenceSum    float64
	LatencyLt2s      int64
	Latency2s5s      int64
	LatencyGt5s      int64
	ConfidenceLow    int64
	ConfidenceMedium int64
	ConfidenceHigh   int64
}

// Add accumulates other into d.
func (d *Delta) Add(other Delta) {
	d.Total += other.Total
	d.SuccessCount += other.SuccessCount
	d.FallbackCount += other.FallbackCount
	d.LatencySumMS += other.LatencySumMS
	d.ConfidenceSum += other.ConfidenceSum
	d.LatencyLt2s += other.LatencyLt2s
	d.Latency2s5s += other.Latency2s5s
	d.LatencyGt5s += other.LatencyGt5s
	d.ConfidenceLow += other.ConfidenceLow
	d.ConfidenceMedium += other.ConfidenceMedium
	d.ConfidenceHigh += other.ConfidenceHigh
}

// EventStore is the append-only event log.
type EventStore interface {
	Append(ctx context.Context, ev Event) error
	// All streams the full log in timestamp order, for recompute.
	All(ctx context.Context) ([]Event, error)
}

// SnapshotStore persists keyed snapshots with additive updates.
type SnapshotStore interface {
	AddDelta(ctx context.Context, key string, d Delta) error
	Get(ctx context.Context, key string) (Delta, bool, error)
	// Replace swaps all snapshots for the given set atomically enough for a
	// recompute (delete-then-write).
	Replace(ctx context.Context, snapshots map[string]Delta) error
}

// Aggregator is the streaming fold over interaction events.
type Aggregator struct {
	events EventStore
	snaps  SnapshotStore
	logger *slog.Logger
}

func NewAggregator(events EventStore, snaps SnapshotStore, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{events: events, snaps: snaps, logger: logger}
}

// Record appends the event and folds it into the global and daily snapshots.
func (a *Aggregator) Record(ctx context.Context, ev Event) error {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	}
	if ev.LatencyMS < 0 {
		ev.LatencyMS = 0
	}
	if err := a.events.Append(ctx, ev); err != nil {
		return fmt.Errorf("append interaction event: %w", err)
	}

	d := DeltaFor(ev)
	for _, key := range []string{GlobalKey, DayKey(ev.Timestamp)} {
		if err := a.snaps.AddDelta(ctx, key, d); err != nil {
			// the event log is the source of truth; a missed fold is
			// recoverable via Recompute
			a.logger.Warn("metrics.fold_failed", "key", key, "error", err)
		}
	}
	return nil
}

// Snapshot returns the snapshot under key, zero-valued when absent.
func (a *Aggregator) Snapshot(ctx context.Context, key string) (Delta, error) {
	d, _, err := a.snaps.Get(ctx, key)
	return d, err
}

// Recompute replays the whole event log into fresh snapshots. Safe to re-run
// at any time: the fold is purely additive over an append-only stream.
func (a *Aggregator) Recompute(ctx context.Context) (int, error) {
	events, err := a.events.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("read event log: %w", err)
	}
	folded := make(map[string]Delta)
	for _, ev := range events {
		d := DeltaFor(ev)
		g := folded[GlobalKey]
		g.Add(d)
		folded[GlobalKey] = g
		day := folded[DayKey(ev.Timestamp)]
		day.Add(d)
		folded[DayKey(ev.Timestamp)] = day
	}
	if err := a.snaps.Replace(ctx, folded); err != nil {
		return 0, fmt.Errorf("write recomputed snapshots: %w", err)
	}
	a.logger.Info("metrics.recomputed", "events", len(events), "snapshots", len(folded))
	return len(events), nil
}

// DeltaFor is the pure fold step for one event.
func DeltaFor(ev Event) Delta {
	d := Delta{Total: 1, LatencySumMS: ev.LatencyMS}
	if ev.Success {
		d.SuccessCount = 1
	}
	if ev.UsedFallback {
		d.FallbackCount = 1
	}
	switch {
	case ev.LatencyMS < 2000:
		d.LatencyLt2s = 1
	case ev.LatencyMS < 5000:
		d.Latency2s5s = 1
	default:
		d.LatencyGt5s = 1
	}
	if ev.Confidence != nil {
		c := *ev.Confidence
		d.ConfidenceSum = c
		switch {
		case c < 0.5:
			d.ConfidenceLow = 1
		case c < 0.8:
			d.ConfidenceMedium = 1
		default:
			d.ConfidenceHigh = 1
		}
	}
	return d
}

// DayKey formats an instant as its UTC date.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
