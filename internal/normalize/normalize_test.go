package normalize

import (
	"reflect"
	"testing"
	"time"

	"github.com/pantryops/pantryd/internal/common"
	"github.com/pantryops/pantryd/internal/extract"
)

func TestItems(t *testing.T) {
	tests := []struct {
		name string
		in   extract.ExtractedItem
		want extract.ExtractedItem
	}{
		{
			name: "title cases name and canonicalizes unit",
			in:   extract.ExtractedItem{Name: "  whole MILK ", Quantity: 2, Unit: "Gallons", Action: "add", Confidence: 0.9},
			want: extract.ExtractedItem{Name: "Whole Milk", Quantity: 2, Unit: "gallon", Action: "add", Confidence: 0.9},
		},
		{
			name: "category synonym maps into vocabulary",
			in:   extract.ExtractedItem{Name: "carrots", Quantity: 1, Action: "add", Category: "Veggies"},
			want: extract.ExtractedItem{Name: "Carrots", Quantity: 1, Action: "add", Category: "produce"},
		},
		{
			name: "unknown category becomes uncategorized",
			in:   extract.ExtractedItem{Name: "thing", Quantity: 1, Action: "add", Category: "mystery"},
			want: extract.ExtractedItem{Name: "Thing", Quantity: 1, Action: "add", Category: "uncategorized"},
		},
		{
			name: "empty category stays empty",
			in:   extract.ExtractedItem{Name: "thing", Quantity: 1, Action: "add"},
			want: extract.ExtractedItem{Name: "Thing", Quantity: 1, Action: "add"},
		},
		{
			name: "negative quantity clamps to zero",
			in:   extract.ExtractedItem{Name: "milk", Quantity: -3, Action: "set"},
			want: extract.ExtractedItem{Name: "Milk", Quantity: 0, Action: "set"},
		},
		{
			name: "confidence clamps into unit interval",
			in:   extract.ExtractedItem{Name: "milk", Quantity: 1, Action: "add", Confidence: 1.7},
			want: extract.ExtractedItem{Name: "Milk", Quantity: 1, Action: "add", Confidence: 1},
		},
		{
			name: "unknown action defaults to add",
			in:   extract.ExtractedItem{Name: "milk", Quantity: 1, Action: "increment"},
			want: extract.ExtractedItem{Name: "Milk", Quantity: 1, Action: "add"},
		},
		{
			name: "action is case folded",
			in:   extract.ExtractedItem{Name: "milk", Quantity: 1, Action: " SET "},
			want: extract.ExtractedItem{Name: "Milk", Quantity: 1, Action: "set"},
		},
		{
			name: "expiration canonicalized to utc rfc3339",
			in:   extract.ExtractedItem{Name: "milk", Quantity: 1, Action: "add", Expiration: common.Some("2026/09/15")},
			want: extract.ExtractedItem{Name: "Milk", Quantity: 1, Action: "add", Expiration: common.Some("2026-09-15T00:00:00Z")},
		},
		{
			name: "explicit null expiration passes through",
			in:   extract.ExtractedItem{Name: "milk", Quantity: 1, Action: "add", Expiration: common.Null[string]()},
			want: extract.ExtractedItem{Name: "Milk", Quantity: 1, Action: "add", Expiration: common.Null[string]()},
		},
		{
			name: "unparseable expiration is dropped",
			in:   extract.ExtractedItem{Name: "milk", Quantity: 1, Action: "add", Expiration: common.Some("next tuesday")},
			want: extract.ExtractedItem{Name: "Milk", Quantity: 1, Action: "add"},
		},
		{
			name: "location notes and brand are trimmed",
			in:   extract.ExtractedItem{Name: "milk", Quantity: 1, Action: "add", Location: " fridge ", Notes: " organic ", Brand: " Acme "},
			want: extract.ExtractedItem{Name: "Milk", Quantity: 1, Action: "add", Location: "fridge", Notes: "organic", Brand: "Acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Items([]extract.ExtractedItem{tt.in})
			if len(got) != 1 {
				t.Fatalf("got %d items, want 1", len(got))
			}
			if !reflect.DeepEqual(got[0], tt.want) {
				t.Errorf("got %+v\nwant %+v", got[0], tt.want)
			}
		})
	}
}

func TestItemsDropsEmptyNames(t *testing.T) {
	got := Items([]extract.ExtractedItem{
		{Name: "", Quantity: 1, Action: "add"},
		{Name: "   ", Quantity: 1, Action: "add"},
		{Name: "milk", Quantity: 1, Action: "add"},
	})
	if len(got) != 1 || got[0].Name != "Milk" {
		t.Fatalf("got %+v, want just Milk", got)
	}
}

func TestItemsIdempotent(t *testing.T) {
	in := []extract.ExtractedItem{
		{Name: "whole MILK", Quantity: 2, Unit: "gallons", Action: "ADD", Category: "drinks", Confidence: 1.4},
		{Name: "eggs", Quantity: -1, Action: "set", Expiration: common.Some("09/15/2026")},
	}
	once := Items(in)
	twice := Items(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalization is not idempotent:\nonce  %+v\ntwice %+v", once, twice)
	}
}

func TestParseInstant(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2026-09-15", "2026-09-15T00:00:00Z", true},
		{"2026/09/15", "2026-09-15T00:00:00Z", true},
		{"09/15/2026", "2026-09-15T00:00:00Z", true},
		{"Sep 15, 2026", "2026-09-15T00:00:00Z", true},
		{"September 15, 2026", "2026-09-15T00:00:00Z", true},
		{"15 Sep 2026", "2026-09-15T00:00:00Z", true},
		{"2026-09-15T10:30:00Z", "2026-09-15T10:30:00Z", true},
		{"  2026-09-15  ", "2026-09-15T00:00:00Z", true},
		{"", "", false},
		{"soon", "", false},
		{"15/09/2026", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseInstant(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got.Format(time.RFC3339) != tt.want {
				t.Errorf("got %s, want %s", got.Format(time.RFC3339), tt.want)
			}
		})
	}
}

func TestToUpdateRecords(t *testing.T) {
	items := Items([]extract.ExtractedItem{
		{Name: "milk", Quantity: 2, Unit: "gallons", Action: "add", Location: "fridge", Notes: "2%", Expiration: common.Some("2026-09-15")},
		{Name: "eggs", Quantity: 1, Action: "set", Expiration: common.Null[string]()},
		{Name: "bread", Quantity: 1, Action: "add"},
	})
	recs := ToUpdateRecords(items)
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}

	milk := recs[0]
	if milk.Name != "Milk" || milk.Unit != "gallon" || milk.Action != "add" {
		t.Errorf("milk = %+v", milk)
	}
	if v, ok := milk.Location.Get(); !ok || v != "fridge" {
		t.Errorf("milk.Location = %+v, want fridge", milk.Location)
	}
	if v, ok := milk.Notes.Get(); !ok || v != "2%" {
		t.Errorf("milk.Notes = %+v, want 2%%", milk.Notes)
	}
	exp, ok := milk.Expiration.Get()
	if !ok || !exp.Equal(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("milk.Expiration = %+v", milk.Expiration)
	}

	eggs := recs[1]
	if !eggs.Expiration.Present || !eggs.Expiration.Null {
		t.Errorf("eggs.Expiration = %+v, want explicit null", eggs.Expiration)
	}

	bread := recs[2]
	if bread.Expiration.Present {
		t.Errorf("bread.Expiration = %+v, want absent", bread.Expiration)
	}
	if bread.Location.Present || bread.Notes.Present {
		t.Errorf("bread optionals should be absent: %+v", bread)
	}
}
