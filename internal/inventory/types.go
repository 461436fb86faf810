package inventory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/internal/common"
)

// Result actions for an ApplyOutcome.
const (
	ResultCreated = "created"
	ResultUpdated = "updated"
)

// Record is the domain view of one inventory row. No two live records for the
// same user may have case-insensitive equal names.
type Record struct {
	ID                uuid.UUID
	UserID            string
	Name              string
	Quantity          float64
	Unit              string
	Category          string
	Location          *string
	LowStockThreshold float64
	Expiration        *time.Time
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// UpdateRecord is the canonical, validated form of an extracted item, ready
// for application. Optional fields distinguish null (clear the stored value)
// from absent (leave it untouched).
type UpdateRecord struct {
	Name              string
	Quantity          float64
	Unit              string // empty = not provided
	Action            string
	Category          string // empty = not provided
	Location          common.Optional[string]
	LowStockThreshold common.Optional[float64]
	Expiration        common.Optional[time.Time]
	Notes             common.Optional[string]
}

// Mutation carries only the fields an update actually sets. Nil / absent
// fields are preserved by the store.
type Mutation struct {
	Quantity          *float64
	Unit              *string
	Category          *string
	Location          common.Optional[string]
	LowStockThreshold *float64
	Expiration        common.Optional[time.Time]
	Notes             common.Optional[string]
}

// ApplyOutcome reports the result of one UpdateRecord, in input order.
type ApplyOutcome struct {
	ID           *uuid.UUID `json:"id,omitempty"`
	Name         string     `json:"name"`
	Success      bool       `json:"success"`
	ResultAction string     `json:"result_action,omitempty"`
	Quantity     *float64   `json:"quantity,omitempty"`
	LowStock     bool       `json:"low_stock,omitempty"`
	Message      string     `json:"message,omitempty"`
	Error        string     `json:"error,omitempty"`
}

// Summary counts a batch's outcomes.
type Summary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// ApplyResult is the batch-level result. Success is true iff every item
// succeeded; per-item failures never abort the batch.
type ApplyResult struct {
	Success  bool           `json:"success"`
	Outcomes []ApplyOutcome `json:"outcomes"`
	Summary  Summary        `json:"summary"`
}

// Store is the record-store surface the engine needs: one snapshot read per
// batch, then per-item writes.
type Store interface {
	SnapshotFor(ctx context.Context, userID string) ([]Record, error)
	Create(ctx context.Context, rec Record) (Record, error)
	Update(ctx context.Context, id uuid.UUID, mut Mutation) (Record, error)
}

// AuditSink receives one entry per applied batch.
type AuditSink interface {
	RecordBatch(ctx context.Context, userID string, action constants.AuditAction, itemNames []string, detail json.RawMessage) error
}
