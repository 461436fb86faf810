package extract

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeProvider struct {
	textRes  ExtractionResult
	textErr  error
	imageRes ExtractionResult
	imageErr error
}

func (p *fakeProvider) ExtractText(_ context.Context, _ string) (ExtractionResult, error) {
	return p.textRes, p.textErr
}

func (p *fakeProvider) ExtractImage(_ context.Context, _ []byte, _, _ string) (ExtractionResult, error) {
	return p.imageRes, p.imageErr
}

func newTestService(t *testing.T, p Provider) *Service {
	t.Helper()
	fb, err := NewFallbackParser(testLogger())
	if err != nil {
		t.Fatalf("NewFallbackParser: %v", err)
	}
	return NewService(p, fb, time.Second, testLogger())
}

func TestParseTextProviderSuccess(t *testing.T) {
	p := &fakeProvider{textRes: ExtractionResult{
		Items: []ExtractedItem{
			{Name: "milk", Quantity: 2, Action: ActionAdd, Confidence: 0.95},
		},
		OverallConfidence: 0.95,
	}}
	svc := newTestService(t, p)

	res := svc.ParseText(context.Background(), "bought 2 milk")
	if res.NeedsReview {
		t.Error("confident provider result should not need review")
	}
	if res.UsedFallback {
		t.Error("UsedFallback = true on provider success")
	}
	if res.Error != "" {
		t.Errorf("Error = %q", res.Error)
	}
	if res.OriginalText != "bought 2 milk" {
		t.Errorf("OriginalText = %q", res.OriginalText)
	}
}

func TestParseTextFailsOverToFallback(t *testing.T) {
	p := &fakeProvider{textErr: errors.New("provider down")}
	svc := newTestService(t, p)

	res := svc.ParseText(context.Background(), "bought 2 gallons of milk")
	if !res.UsedFallback {
		t.Error("UsedFallback = false after provider failure")
	}
	if !res.NeedsReview {
		t.Error("fallback output must need review")
	}
	if !strings.Contains(res.Error, "provider down") {
		t.Errorf("Error = %q, want the provider failure surfaced", res.Error)
	}
	if len(res.Items) != 1 || res.Items[0].Name != "milk" {
		t.Errorf("items = %+v, want the fallback parse of the text", res.Items)
	}
}

func TestParseTextReviewGate(t *testing.T) {
	tests := []struct {
		name string
		res  ExtractionResult
		want bool
	}{
		{
			name: "low overall confidence",
			res: ExtractionResult{
				Items:             []ExtractedItem{{Name: "milk", Confidence: 0.9, Action: ActionAdd}},
				OverallConfidence: 0.6,
			},
			want: true,
		},
		{
			name: "one ambiguous item",
			res: ExtractionResult{
				Items: []ExtractedItem{
					{Name: "milk", Confidence: 0.9, Action: ActionAdd},
					{Name: "thing", Confidence: 0.5, Action: ActionAdd},
				},
				OverallConfidence: 0.85,
			},
			want: true,
		},
		{
			name: "mixed acquisition and consumption",
			res: ExtractionResult{
				Items: []ExtractedItem{
					{Name: "milk", Confidence: 0.9, Action: ActionAdd},
					{Name: "eggs", Confidence: 0.9, Action: ActionSubtract},
				},
				OverallConfidence: 0.9,
			},
			want: true,
		},
		{
			name: "confident homogeneous batch",
			res: ExtractionResult{
				Items: []ExtractedItem{
					{Name: "milk", Confidence: 0.9, Action: ActionAdd},
					{Name: "eggs", Confidence: 0.85, Action: ActionAdd},
				},
				OverallConfidence: 0.9,
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, &fakeProvider{textRes: tt.res})
			got := svc.ParseText(context.Background(), "whatever")
			if got.NeedsReview != tt.want {
				t.Errorf("NeedsReview = %v, want %v", got.NeedsReview, tt.want)
			}
		})
	}
}

func TestParseImageNoFallbackForPixels(t *testing.T) {
	p := &fakeProvider{imageErr: errors.New("vision down")}
	svc := newTestService(t, p)

	res := svc.ParseImage(context.Background(), []byte{0xff, 0xd8}, "image/jpeg", "receipt")
	if len(res.Items) != 0 {
		t.Errorf("items = %+v, want none", res.Items)
	}
	if !res.NeedsReview || !res.UsedFallback {
		t.Error("failed vision extraction must flag review and fallback")
	}
	if !strings.Contains(res.Error, "vision down") {
		t.Errorf("Error = %q", res.Error)
	}
}

func TestParseImageSuccessGated(t *testing.T) {
	p := &fakeProvider{imageRes: ExtractionResult{
		Items:             []ExtractedItem{{Name: "milk", Quantity: 1, Action: ActionAdd, Confidence: 0.9}},
		OverallConfidence: 0.9,
	}}
	svc := newTestService(t, p)

	res := svc.ParseImage(context.Background(), []byte{0xff, 0xd8}, "image/jpeg", "receipt")
	if res.NeedsReview || res.Error != "" {
		t.Errorf("result = %+v", res)
	}
}
