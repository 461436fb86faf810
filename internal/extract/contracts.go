package extract

import (
	"context"

	"github.com/pantryops/pantryd/internal/common"
)

// Actions an extracted item can request against the inventory.
const (
	ActionAdd      = "add"
	ActionSubtract = "subtract"
	ActionSet      = "set"
)

// Actions lists the valid action values in schema order.
var Actions = []string{ActionAdd, ActionSubtract, ActionSet}

// ExtractedItem is one candidate inventory change as reported by extraction.
// Immutable once emitted; normalization copies rather than mutates.
type ExtractedItem struct {
	Name       string                  `json:"name"`
	Quantity   float64                 `json:"quantity"`
	Unit       string                  `json:"unit,omitempty"`
	Action     string                  `json:"action"`
	Category   string                  `json:"category,omitempty"`
	Location   string                  `json:"location,omitempty"`
	Brand      string                  `json:"brand,omitempty"`
	Notes      string                  `json:"notes,omitempty"`
	Confidence float64                 `json:"confidence"`
	Expiration common.Optional[string] `json:"expiration,omitzero"`
}

// ExtractionResult is the transient output of one extraction attempt.
// Item order is source order and carries no meaning beyond display.
type ExtractionResult struct {
	Items             []ExtractedItem `json:"items"`
	OverallConfidence float64         `json:"overall_confidence"`
	OriginalText      string          `json:"original_text"`
	NeedsReview       bool            `json:"needs_review"`
	UsedFallback      bool            `json:"used_fallback,omitempty"`
	Error             string          `json:"error,omitempty"`
}

// Provider is the structured-extraction provider interface. Implementations
// return an error on provider failure or malformed output; they never guess.
// The Service is responsible for failing over to the fallback parser.
type Provider interface {
	ExtractText(ctx context.Context, text string) (ExtractionResult, error)
	ExtractImage(ctx context.Context, image []byte, imageType string, hint string) (ExtractionResult, error)
}
