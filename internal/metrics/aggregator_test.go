package metrics

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"
	"time"
)

type fakeEventStore struct {
	events    []Event
	appendErr error
}

func (s *fakeEventStore) Append(_ context.Context, ev Event) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.events = append(s.events, ev)
	return nil
}

func (s *fakeEventStore) All(_ context.Context) ([]Event, error) {
	return s.events, nil
}

type fakeSnapshotStore struct {
	snaps  map[string]Delta
	addErr error
}

func newFakeSnapshotStore() *fakeSnapshotStore {
	return &fakeSnapshotStore{snaps: map[string]Delta{}}
}

func (s *fakeSnapshotStore) AddDelta(_ context.Context, key string, d Delta) error {
	if s.addErr != nil {
		return s.addErr
	}
	cur := s.snaps[key]
	cur.Add(d)
	s.snaps[key] = cur
	return nil
}

func (s *fakeSnapshotStore) Get(_ context.Context, key string) (Delta, bool, error) {
	d, ok := s.snaps[key]
	return d, ok, nil
}

func (s *fakeSnapshotStore) Replace(_ context.Context, snapshots map[string]Delta) error {
	s.snaps = snapshots
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fptr(f float64) *float64 { return &f }

func TestDeltaFor(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want Delta
	}{
		{
			name: "fast success with high confidence",
			ev:   Event{Success: true, LatencyMS: 800, Confidence: fptr(0.9)},
			want: Delta{Total: 1, SuccessCount: 1, LatencySumMS: 800, LatencyLt2s: 1, ConfidenceSum: 0.9, ConfidenceHigh: 1},
		},
		{
			name: "fallback failure without confidence",
			ev:   Event{UsedFallback: true, LatencyMS: 100},
			want: Delta{Total: 1, FallbackCount: 1, LatencySumMS: 100, LatencyLt2s: 1},
		},
		{
			name: "latency just under middle bucket",
			ev:   Event{LatencyMS: 1999},
			want: Delta{Total: 1, LatencySumMS: 1999, LatencyLt2s: 1},
		},
		{
			name: "latency at middle bucket boundary",
			ev:   Event{LatencyMS: 2000},
			want: Delta{Total: 1, LatencySumMS: 2000, Latency2s5s: 1},
		},
		{
			name: "latency just under slow bucket",
			ev:   Event{LatencyMS: 4999},
			want: Delta{Total: 1, LatencySumMS: 4999, Latency2s5s: 1},
		},
		{
			name: "latency at slow bucket boundary",
			ev:   Event{LatencyMS: 5000},
			want: Delta{Total: 1, LatencySumMS: 5000, LatencyGt5s: 1},
		},
		{
			name: "confidence just under medium",
			ev:   Event{Confidence: fptr(0.49)},
			want: Delta{Total: 1, LatencyLt2s: 1, ConfidenceSum: 0.49, ConfidenceLow: 1},
		},
		{
			name: "confidence at medium boundary",
			ev:   Event{Confidence: fptr(0.5)},
			want: Delta{Total: 1, LatencyLt2s: 1, ConfidenceSum: 0.5, ConfidenceMedium: 1},
		},
		{
			name: "confidence at high boundary",
			ev:   Event{Confidence: fptr(0.8)},
			want: Delta{Total: 1, LatencyLt2s: 1, ConfidenceSum: 0.8, ConfidenceHigh: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeltaFor(tt.ev); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DeltaFor = %+v\nwant      %+v", got, tt.want)
			}
		})
	}
}

func TestAggregatorRecordFoldsGlobalAndDay(t *testing.T) {
	events := &fakeEventStore{}
	snaps := newFakeSnapshotStore()
	agg := NewAggregator(events, snaps, discardLogger())

	ts := time.Date(2026, 8, 29, 14, 0, 0, 0, time.UTC)
	ev := Event{UserID: "alice", Agent: "parse", Success: true, LatencyMS: 1200, Confidence: fptr(0.85), Timestamp: ts}
	if err := agg.Record(context.Background(), ev); err != nil {
		t.Fatalf("Record: %v", err)
	}

	if len(events.events) != 1 {
		t.Fatalf("event log has %d entries, want 1", len(events.events))
	}
	want := DeltaFor(ev)
	for _, key := range []string{GlobalKey, "2026-08-29"} {
		got, ok, err := snaps.Get(context.Background(), key)
		if err != nil || !ok {
			t.Fatalf("snapshot %q missing (ok=%v err=%v)", key, ok, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("snapshot %q = %+v, want %+v", key, got, want)
		}
	}
}

func TestAggregatorRecordAppendErrorFails(t *testing.T) {
	events := &fakeEventStore{appendErr: errors.New("log down")}
	agg := NewAggregator(events, newFakeSnapshotStore(), discardLogger())

	if err := agg.Record(context.Background(), Event{Success: true}); err == nil {
		t.Fatal("expected error when the event log append fails")
	}
}

func TestAggregatorRecordFoldErrorIsNonFatal(t *testing.T) {
	events := &fakeEventStore{}
	snaps := newFakeSnapshotStore()
	snaps.addErr = errors.New("snapshot write failed")
	agg := NewAggregator(events, snaps, discardLogger())

	if err := agg.Record(context.Background(), Event{Success: true}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if len(events.events) != 1 {
		t.Error("event must land in the log even when the fold fails")
	}
}

func TestAggregatorRecomputeMatchesIncrementalFold(t *testing.T) {
	events := &fakeEventStore{}
	incremental := newFakeSnapshotStore()
	agg := NewAggregator(events, incremental, discardLogger())

	day1 := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	evs := []Event{
		{Success: true, LatencyMS: 500, Confidence: fptr(0.9), Timestamp: day1},
		{UsedFallback: true, LatencyMS: 3000, Confidence: fptr(0.4), Timestamp: day1},
		{Success: true, LatencyMS: 6000, Timestamp: day2},
	}
	for _, ev := range evs {
		if err := agg.Record(context.Background(), ev); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	recomputed := newFakeSnapshotStore()
	agg2 := NewAggregator(events, recomputed, discardLogger())
	n, err := agg2.Recompute(context.Background())
	if err != nil {
		t.Fatalf("Recompute: %v", err)
	}
	if n != len(evs) {
		t.Errorf("recomputed %d events, want %d", n, len(evs))
	}
	if !reflect.DeepEqual(recomputed.snaps, incremental.snaps) {
		t.Errorf("recompute diverged from incremental fold:\nrecomputed  %+v\nincremental %+v", recomputed.snaps, incremental.snaps)
	}
}

func TestAggregatorSnapshotAbsentKeyIsZero(t *testing.T) {
	agg := NewAggregator(&fakeEventStore{}, newFakeSnapshotStore(), discardLogger())
	d, err := agg.Snapshot(context.Background(), "2026-01-01")
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if !reflect.DeepEqual(d, Delta{}) {
		t.Errorf("snapshot = %+v, want zero", d)
	}
}

func TestAggregatorRecordNormalizesEvent(t *testing.T) {
	events := &fakeEventStore{}
	agg := NewAggregator(events, newFakeSnapshotStore(), discardLogger())

	if err := agg.Record(context.Background(), Event{LatencyMS: -50}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	got := events.events[0]
	if got.Timestamp.IsZero() {
		t.Error("zero timestamp should be replaced with now")
	}
	if got.LatencyMS != 0 {
		t.Errorf("negative latency stored as %d, want clamped to 0", got.LatencyMS)
	}
}
