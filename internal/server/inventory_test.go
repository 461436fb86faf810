package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	pantryv1 "github.com/pantryops/pantryd/gen/proto/pantry/v1"
	"github.com/pantryops/pantryd/internal/inventory"
)

type fakeInventoryStore struct {
	records map[uuid.UUID]inventory.Record
}

func newFakeInventoryStore(seed ...inventory.Record) *fakeInventoryStore {
	s := &fakeInventoryStore{records: map[uuid.UUID]inventory.Record{}}
	for _, rec := range seed {
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		s.records[rec.ID] = rec
	}
	return s
}

func (s *fakeInventoryStore) SnapshotFor(_ context.Context, userID string) ([]inventory.Record, error) {
	var out []inventory.Record
	for _, rec := range s.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *fakeInventoryStore) Create(_ context.Context, rec inventory.Record) (inventory.Record, error) {
	rec.ID = uuid.New()
	s.records[rec.ID] = rec
	return rec, nil
}

func (s *fakeInventoryStore) Update(_ context.Context, id uuid.UUID, mut inventory.Mutation) (inventory.Record, error) {
	rec, ok := s.records[id]
	if !ok {
		return inventory.Record{}, errors.New("record not found")
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
	if v, ok := mut.Location.Get(); ok {
		rec.Location = &v
	} else if mut.Location.Null {
		rec.Location = nil
	}
	if v, ok := mut.Expiration.Get(); ok {
		rec.Expiration = &v
	} else if mut.Expiration.Null {
		rec.Expiration = nil
	}
	if v, ok := mut.Notes.Get(); ok {
		rec.Notes = &v
	} else if mut.Notes.Null {
		rec.Notes = nil
	}
	if mut.LowStockThreshold != nil {
		rec.LowStockThreshold = *mut.LowStockThreshold
	}
	s.records[id] = rec
	return rec, nil
}

func newTestInventoryService(store inventory.Store) *InventoryService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewInventoryService(inventory.NewEngine(store, nil, logger), logger)
}

func TestApplyUpdatesCountsRejectedItems(t *testing.T) {
	store := newFakeInventoryStore(
		inventory.Record{UserID: "alice", Name: "Milk", Quantity: 1, LowStockThreshold: 1},
		inventory.Record{UserID: "alice", Name: "Bread", Quantity: 3, LowStockThreshold: 1},
	)
	svc := newTestInventoryService(store)

	resp, err := svc.ApplyUpdates(context.Background(), &pantryv1.ApplyUpdatesRequest{
		UserId: "alice",
		Updates: []*pantryv1.ExtractedItem{
			{Name: "Milk", Quantity: 2, Action: "add"},
			{Name: "Bread", Quantity: 1, Action: "subtract"},
			{Name: "Eggs", Quantity: 2, Action: "multiply"},
		},
	})
	if err != nil {
		t.Fatalf("ApplyUpdates: %v", err)
	}

	sum := resp.GetSummary()
	if sum.GetTotal() != 3 || sum.GetSuccessful() != 2 || sum.GetFailed() != 1 {
		t.Errorf("summary = %+v, want total 3, successful 2, failed 1", sum)
	}
	if resp.GetSuccess() {
		t.Error("Success = true with a rejected item")
	}
	if len(resp.GetOutcomes()) != 3 {
		t.Fatalf("outcomes = %d, want one per input item", len(resp.GetOutcomes()))
	}

	eggs := resp.GetOutcomes()[2]
	if eggs.GetSuccess() || eggs.GetName() != "Eggs" || eggs.GetError() == "" {
		t.Errorf("rejected outcome = %+v", eggs)
	}
	if resp.GetOutcomes()[0].GetQuantity() != 3 {
		t.Errorf("milk quantity = %v, want 3", resp.GetOutcomes()[0].GetQuantity())
	}
	if resp.GetOutcomes()[1].GetQuantity() != 2 {
		t.Errorf("bread quantity = %v, want 2", resp.GetOutcomes()[1].GetQuantity())
	}
	if len(resp.GetValidationErrors()) != 1 {
		t.Errorf("validation errors = %v, want 1", resp.GetValidationErrors())
	}
}

func TestApplyUpdatesRejectionReasons(t *testing.T) {
	exp := "not a date"
	tests := []struct {
		name string
		item *pantryv1.ExtractedItem
	}{
		{name: "empty name", item: &pantryv1.ExtractedItem{Name: "  ", Quantity: 1, Action: "add"}},
		{name: "unknown action", item: &pantryv1.ExtractedItem{Name: "Eggs", Quantity: 1, Action: "multiply"}},
		{name: "negative quantity", item: &pantryv1.ExtractedItem{Name: "Eggs", Quantity: -1, Action: "add"}},
		{name: "unparseable expiration", item: &pantryv1.ExtractedItem{Name: "Eggs", Quantity: 1, Action: "add", Expiration: &exp}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestInventoryService(newFakeInventoryStore())

			resp, err := svc.ApplyUpdates(context.Background(), &pantryv1.ApplyUpdatesRequest{
				UserId:  "alice",
				Updates: []*pantryv1.ExtractedItem{tt.item},
			})
			if err != nil {
				t.Fatalf("ApplyUpdates: %v", err)
			}
			sum := resp.GetSummary()
			if sum.GetTotal() != 1 || sum.GetFailed() != 1 {
				t.Errorf("summary = %+v, want total 1, failed 1", sum)
			}
			if resp.GetSuccess() {
				t.Error("Success = true for an all-rejected batch")
			}
			if len(resp.GetOutcomes()) != 1 || resp.GetOutcomes()[0].GetSuccess() {
				t.Errorf("outcomes = %+v", resp.GetOutcomes())
			}
			if len(resp.GetValidationErrors()) != 1 {
				t.Errorf("validation errors = %v", resp.GetValidationErrors())
			}
		})
	}
}

func TestApplyUpdatesAllValid(t *testing.T) {
	svc := newTestInventoryService(newFakeInventoryStore())

	resp, err := svc.ApplyUpdates(context.Background(), &pantryv1.ApplyUpdatesRequest{
		UserId: "alice",
		Updates: []*pantryv1.ExtractedItem{
			{Name: "Milk", Quantity: 2, Action: "add"},
		},
	})
	if err != nil {
		t.Fatalf("ApplyUpdates: %v", err)
	}
	if !resp.GetSuccess() {
		t.Errorf("response = %+v, want success", resp)
	}
	if resp.GetSummary().GetTotal() != 1 || resp.GetSummary().GetSuccessful() != 1 {
		t.Errorf("summary = %+v", resp.GetSummary())
	}
	if len(resp.GetValidationErrors()) != 0 {
		t.Errorf("validation errors = %v, want none", resp.GetValidationErrors())
	}
}
