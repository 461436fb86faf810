package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/internal/common"
)

type fakeStore struct {
	records     map[uuid.UUID]Record
	snapshotErr error
	createErr   error
	updateErr   error
}

func newFakeStore(recs ...Record) *fakeStore {
	s := &fakeStore{records: map[uuid.UUID]Record{}}
	for _, r := range recs {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		s.records[r.ID] = r
	}
	return s
}

func (s *fakeStore) SnapshotFor(_ context.Context, userID string) ([]Record, error) {
	if s.snapshotErr != nil {
		return nil, s.snapshotErr
	}
	var out []Record
	for _, r := range s.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeStore) Create(_ context.Context, rec Record) (Record, error) {
	if s.createErr != nil {
		return Record{}, s.createErr
	}
	rec.ID = uuid.New()
	s.records[rec.ID] = rec
	return rec, nil
}

func (s *fakeStore) Update(_ context.Context, id uuid.UUID, mut Mutation) (Record, error) {
	if s.updateErr != nil {
		return Record{}, s.updateErr
	}
	rec, ok := s.records[id]
	if !ok {
		return Record{}, errors.New("record not found")
	}
	if mut.Quantity != nil {
		rec.Quantity = *mut.Quantity
	}
	if mut.Unit != nil {
		rec.Unit = *mut.Unit
	}
	if mut.Category != nil {
		rec.Category = *mut.Category
	}
	if mut.LowStockThreshold != nil {
		rec.LowStockThreshold = *mut.LowStockThreshold
	}
	rec.Location = applyOptional(rec.Location, mut.Location)
	rec.Expiration = applyOptional(rec.Expiration, mut.Expiration)
	rec.Notes = applyOptional(rec.Notes, mut.Notes)
	s.records[id] = rec
	return rec, nil
}

func applyOptional[T any](cur *T, o common.Optional[T]) *T {
	if !o.Present {
		return cur
	}
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}

func (s *fakeStore) byName(userID, name string) (Record, bool) {
	for _, r := range s.records {
		if r.UserID == userID && nameKey(r.Name) == nameKey(name) {
			return r, true
		}
	}
	return Record{}, false
}

type fakeAudit struct {
	calls []auditCall
	err   error
}

type auditCall struct {
	userID string
	action constants.AuditAction
	names  []string
	detail json.RawMessage
}

func (a *fakeAudit) RecordBatch(_ context.Context, userID string, action constants.AuditAction, itemNames []string, detail json.RawMessage) error {
	a.calls = append(a.calls, auditCall{userID: userID, action: action, names: itemNames, detail: detail})
	return a.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEngineApplyCreatesMissingRecord(t *testing.T) {
	store := newFakeStore()
	audit := &fakeAudit{}
	eng := NewEngine(store, audit, discardLogger())

	res, err := eng.Apply(context.Background(), "alice", constants.AuditActionUpdate, []UpdateRecord{
		{Name: "Milk", Quantity: 2, Action: "add"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !res.Success || len(res.Outcomes) != 1 {
		t.Fatalf("result = %+v", res)
	}
	o := res.Outcomes[0]
	if !o.Success || o.ResultAction != ResultCreated {
		t.Fatalf("outcome = %+v", o)
	}
	if o.Quantity == nil || *o.Quantity != 2 {
		t.Errorf("quantity = %v, want 2", o.Quantity)
	}

	rec, ok := store.byName("alice", "milk")
	if !ok {
		t.Fatal("record was not stored")
	}
	if rec.Unit != constants.DefaultUnit {
		t.Errorf("unit = %q, want default %q", rec.Unit, constants.DefaultUnit)
	}
	if rec.Category != string(constants.Uncategorized) {
		t.Errorf("category = %q, want uncategorized", rec.Category)
	}
	if rec.LowStockThreshold != 1 {
		t.Errorf("threshold = %v, want 1", rec.LowStockThreshold)
	}
}

func TestEngineApplyCreateClampsNegativeQuantity(t *testing.T) {
	store := newFakeStore()
	eng := NewEngine(store, nil, discardLogger())

	res, err := eng.Apply(context.Background(), "alice", constants.AuditActionUpdate, []UpdateRecord{
		{Name: "Milk", Quantity: -5, Action: "add"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	o := res.Outcomes[0]
	if !o.Success || o.ResultAction != ResultCreated {
		t.Fatalf("outcome = %+v", o)
	}
	if o.Quantity == nil || *o.Quantity != 0 {
		t.Errorf("quantity = %v, want 0", o.Quantity)
	}
	rec, ok := store.byName("alice", "milk")
	if !ok {
		t.Fatal("record was not stored")
	}
	if rec.Quantity != 0 {
		t.Errorf("stored quantity = %v, want 0", rec.Quantity)
	}
}

func TestEngineApplyQuantityRules(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		action   string
		delta    float64
		want     float64
		lowStock bool
	}{
		{name: "add", start: 3, action: "add", delta: 2, want: 5},
		{name: "add negative delta clamps at zero", start: 3, action: "add", delta: -5, want: 0, lowStock: true},
		{name: "subtract", start: 3, action: "subtract", delta: 2, want: 1, lowStock: true},
		{name: "subtract clamps at zero", start: 1, action: "subtract", delta: 5, want: 0, lowStock: true},
		{name: "set", start: 3, action: "set", delta: 7, want: 7},
		{name: "set negative clamps at zero", start: 3, action: "set", delta: -2, want: 0, lowStock: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore(Record{
				UserID: "alice", Name: "Milk", Quantity: tt.start,
				Unit: "gallon", Category: "dairy", LowStockThreshold: 1,
			})
			eng := NewEngine(store, nil, discardLogger())

			res, err := eng.Apply(context.Background(), "alice", constants.AuditActionUpdate, []UpdateRecord{
				{Name: "milk", Quantity: tt.delta, Action: tt.action},
			})
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			o := res.Outcomes[0]
			if !o.Success || o.ResultAction != ResultUpdated {
				t.Fatalf("outcome = %+v", o)
			}
			if o.Quantity == nil || *o.Quantity != tt.want {
				t.Errorf("quantity = %v, want %v", o.Quantity, tt.want)
			}
			if o.LowStock != tt.lowStock {
				t.Errorf("lowStock = %v, want %v", o.LowStock, tt.lowStock)
			}
		})
	}
}

func TestEngineApplyMatchesCaseInsensitively(t *testing.T) {
	store := newFakeStore(Record{UserID: "alice", Name: "Whole Milk", Quantity: 1, LowStockThreshold: 1})
	eng := NewEngine(store, nil, discardLogger())

	res, err := eng.Apply(context.Background(), "alice", constants.AuditActionUpdate, []UpdateRecord{
		{Name: "  WHOLE milk ", Quantity: 2, Action: "add"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Outcomes[0].ResultAction != ResultUpdated {
		t.Fatalf("outcome = %+v, want update of existing record", res.Outcomes[0])
	}
	if len(store.records) != 1 {
		t.Errorf("store has %d records, want 1", len(store.records))
	}
}

func TestEngineApplyComposesWithinBatch(t *testing.T) {
	store := newFakeStore()
	eng := NewEngine(store, nil, discardLogger())

	res, err := eng.Apply(context.Background(), "alice", constants.AuditActionUpdate, []UpdateRecord{
		{Name: "milk", Quantity: 2, Action: "add"},
		{Name: "Milk", Quantity: 1, Action: "subtract"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Outcomes[0].ResultAction != ResultCreated || res.Outcomes[1].ResultAction != ResultUpdated {
		t.Fatalf("outcomes = %+v", res.Outcomes)
	}
	rec, _ := store.byName("alice", "milk")
	if rec.Quantity != 1 {
		t.Errorf("quantity = %v, want 1 (2 added then 1 subtracted)", rec.Quantity)
	}
}

func TestEngineApplyIsolatesItemFailures(t *testing.T) {
	store := newFakeStore()
	audit := &fakeAudit{}
	eng := NewEngine(store, audit, discardLogger())

	res, err := eng.Apply(context.Background(), "alice", constants.AuditActionUpdate, []UpdateRecord{
		{Name: "milk", Quantity: 1, Action: "add"},
		{Name: "", Quantity: 1, Action: "add"},
		{Name: "eggs", Quantity: 1, Action: "multiply"},
		{Name: "bread", Quantity: 1, Action: "add"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if res.Success {
		t.Error("batch Success = true despite failed items")
	}
	if res.Summary.Total != 4 || res.Summary.Successful != 2 || res.Summary.Failed != 2 {
		t.Errorf("summary = %+v", res.Summary)
	}
	if res.Outcomes[1].Error == "" || res.Outcomes[2].Error == "" {
		t.Errorf("failed outcomes missing errors: %+v", res.Outcomes)
	}
	if !strings.Contains(res.Outcomes[2].Error, "multiply") {
		t.Errorf("unknown action error = %q", res.Outcomes[2].Error)
	}
	if _, ok := store.byName("alice", "bread"); !ok {
		t.Error("item after a failure was not applied")
	}

	if len(audit.calls) != 1 {
		t.Fatalf("audit calls = %d, want 1", len(audit.calls))
	}
	if got := audit.calls[0].names; len(got) != 2 || got[0] != "milk" || got[1] != "bread" {
		t.Errorf("audited names = %v, want only the successful ones", got)
	}
}

func TestEngineApplyOptionalFields(t *testing.T) {
	loc := "pantry"
	exp := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	store := newFakeStore(Record{
		UserID: "alice", Name: "Milk", Quantity: 1,
		Location: &loc, Expiration: &exp, LowStockThreshold: 1,
	})
	eng := NewEngine(store, nil, discardLogger())

	_, err := eng.Apply(context.Background(), "alice", constants.AuditActionUpdate, []UpdateRecord{
		{
			Name:       "milk",
			Quantity:   1,
			Action:     "add",
			Location:   common.Some("fridge"),
			Expiration: common.Null[time.Time](),
		},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	rec, _ := store.byName("alice", "milk")
	if rec.Location == nil || *rec.Location != "fridge" {
		t.Errorf("location = %v, want fridge", rec.Location)
	}
	if rec.Expiration != nil {
		t.Errorf("expiration = %v, want cleared by explicit null", rec.Expiration)
	}
	if rec.Notes != nil {
		t.Errorf("notes = %v, want untouched nil", rec.Notes)
	}
}

func TestEngineApplySnapshotErrorAbortsBatch(t *testing.T) {
	store := newFakeStore()
	store.snapshotErr = errors.New("db down")
	eng := NewEngine(store, nil, discardLogger())

	_, err := eng.Apply(context.Background(), "alice", constants.AuditActionUpdate, []UpdateRecord{
		{Name: "milk", Quantity: 1, Action: "add"},
	})
	if err == nil {
		t.Fatal("expected batch-level error when the snapshot read fails")
	}
}

func TestEngineApplyAuditFailureIsNonFatal(t *testing.T) {
	store := newFakeStore()
	audit := &fakeAudit{err: errors.New("audit sink down")}
	eng := NewEngine(store, audit, discardLogger())

	res, err := eng.Apply(context.Background(), "alice", constants.AuditActionUpdate, []UpdateRecord{
		{Name: "milk", Quantity: 1, Action: "add"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !res.Success {
		t.Error("mutations should survive an audit failure")
	}
}
