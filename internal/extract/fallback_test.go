package extract

import (
	"io"
	"log/slog"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestParser(t *testing.T) *FallbackParser {
	t.Helper()
	p, err := NewFallbackParser(testLogger())
	if err != nil {
		t.Fatalf("NewFallbackParser: %v", err)
	}
	return p
}

func TestFallbackParse(t *testing.T) {
	p := newTestParser(t)

	tests := []struct {
		name string
		text string
		want []ExtractedItem
	}{
		{
			name: "action quantity unit item",
			text: "bought 2 gallons of milk",
			want: []ExtractedItem{
				{Name: "milk", Quantity: 2, Unit: "gallon", Action: ActionAdd, Category: "dairy"},
			},
		},
		{
			name: "subtract verb",
			text: "used 3 eggs",
			want: []ExtractedItem{
				{Name: "eggs", Quantity: 3, Unit: "dozen", Action: ActionSubtract, Category: "dairy"},
			},
		},
		{
			name: "set verb with explicit unit",
			text: "have 3 cans of beans",
			want: []ExtractedItem{
				{Name: "beans", Quantity: 3, Unit: "can", Action: ActionSet, Category: "pantry"},
			},
		},
		{
			name: "multi word add phrase",
			text: "picked up some bread",
			want: []ExtractedItem{
				{Name: "bread", Quantity: 1, Unit: "loaf", Action: ActionAdd, Category: "bakery"},
			},
		},
		{
			name: "multi word subtract phrase",
			text: "ran out of milk",
			want: []ExtractedItem{
				{Name: "milk", Quantity: 1, Unit: "gallon", Action: ActionSubtract, Category: "dairy"},
			},
		},
		{
			name: "decimal quantity",
			text: "bought 1.5 lbs of chicken",
			want: []ExtractedItem{
				{Name: "chicken", Quantity: 1.5, Unit: "lb", Action: ActionAdd, Category: "meat"},
			},
		},
		{
			name: "action carries across items",
			text: "used 2 eggs and milk",
			want: []ExtractedItem{
				{Name: "eggs", Quantity: 2, Unit: "dozen", Action: ActionSubtract, Category: "dairy"},
				{Name: "milk", Quantity: 1, Unit: "gallon", Action: ActionSubtract, Category: "dairy"},
			},
		},
		{
			name: "action switches mid sentence",
			text: "bought milk and used 2 eggs",
			want: []ExtractedItem{
				{Name: "milk", Quantity: 1, Unit: "gallon", Action: ActionAdd, Category: "dairy"},
				{Name: "eggs", Quantity: 2, Unit: "dozen", Action: ActionSubtract, Category: "dairy"},
			},
		},
		{
			name: "singular bridges to plural table entry",
			text: "bought an apple",
			want: []ExtractedItem{
				{Name: "apple", Quantity: 1, Unit: "count", Action: ActionAdd, Category: "produce"},
			},
		},
		{
			name: "no action defaults to add",
			text: "2 bottles of juice",
			want: []ExtractedItem{
				{Name: "juice", Quantity: 2, Unit: "bottle", Action: ActionAdd, Category: "beverages"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.Parse(tt.text)
			if !res.NeedsReview {
				t.Error("NeedsReview = false, fallback output must always need review")
			}
			if !res.UsedFallback {
				t.Error("UsedFallback = false")
			}
			if res.OriginalText != tt.text {
				t.Errorf("OriginalText = %q, want %q", res.OriginalText, tt.text)
			}
			if len(res.Items) != len(tt.want) {
				t.Fatalf("got %d items, want %d: %+v", len(res.Items), len(tt.want), res.Items)
			}
			for i, want := range tt.want {
				got := res.Items[i]
				if got.Name != want.Name || got.Quantity != want.Quantity ||
					got.Unit != want.Unit || got.Action != want.Action ||
					got.Category != want.Category {
					t.Errorf("items[%d] = %+v, want %+v", i, got, want)
				}
				if got.Confidence != fallbackMatchedConfidence {
					t.Errorf("items[%d].Confidence = %v, want %v", i, got.Confidence, fallbackMatchedConfidence)
				}
			}
		})
	}
}

func TestFallbackParseNoMatches(t *testing.T) {
	p := newTestParser(t)

	for _, text := range []string{"", "   ", "the weather is nice today"} {
		res := p.Parse(text)
		if len(res.Items) != 0 {
			t.Errorf("Parse(%q) returned %d items, want 0", text, len(res.Items))
		}
		if res.OverallConfidence != fallbackEmptyConfidence {
			t.Errorf("Parse(%q) confidence = %v, want %v", text, res.OverallConfidence, fallbackEmptyConfidence)
		}
		if !res.NeedsReview || !res.UsedFallback {
			t.Errorf("Parse(%q) must flag NeedsReview and UsedFallback", text)
		}
	}
}

func TestFallbackParseCaseInsensitive(t *testing.T) {
	p := newTestParser(t)

	res := p.Parse("BOUGHT 2 Gallons Of MILK")
	if len(res.Items) != 1 {
		t.Fatalf("got %d items, want 1", len(res.Items))
	}
	if res.Items[0].Name != "milk" || res.Items[0].Quantity != 2 {
		t.Errorf("item = %+v", res.Items[0])
	}
}

func TestNewFallbackParserRejectsEmptyTables(t *testing.T) {
	if _, err := newFallbackParser([]byte("actions:\n  add: [bought]\n"), testLogger()); err == nil {
		t.Fatal("expected error for tables without items")
	}
	if _, err := newFallbackParser([]byte("{not yaml"), testLogger()); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
