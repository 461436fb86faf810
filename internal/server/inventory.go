package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/pantryops/pantryd/constants"
	pantryv1 "github.com/pantryops/pantryd/gen/proto/pantry/v1"
	"github.com/pantryops/pantryd/internal/common"
	"github.com/pantryops/pantryd/internal/extract"
	"github.com/pantryops/pantryd/internal/inventory"
	"github.com/pantryops/pantryd/internal/normalize"
	"github.com/pantryops/pantryd/internal/utils"
)

const maxBatchSize = 100

type InventoryService struct {
	pantryv1.UnimplementedInventoryServiceServer
	engine *inventory.Engine
	logger *slog.Logger
}

func NewInventoryService(engine *inventory.Engine, logger *slog.Logger) *InventoryService {
	return &InventoryService{
		engine: engine,
		logger: logger,
	}
}

// ApplyUpdates validates the batch, applies the well-formed updates in input
// order, and always answers OK with exactly one outcome per input item:
// items rejected at this boundary get a failed outcome (and a positional
// validation_errors entry), per-item apply failures land in their outcome,
// and the gRPC status is reserved for request-level problems.
func (s *InventoryService) ApplyUpdates(ctx context.Context, req *pantryv1.ApplyUpdatesRequest) (*pantryv1.ApplyUpdatesResponse, error) {
	userID := strings.TrimSpace(req.GetUserId())
	if userID == "" {
		s.logger.Error("apply updates request missing user_id")
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	if len(req.GetUpdates()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "updates must not be empty")
	}
	if len(req.GetUpdates()) > maxBatchSize {
		return nil, status.Errorf(codes.InvalidArgument, "batch exceeds %d updates", maxBatchSize)
	}

	screened, validationErrors := screenUpdates(req.GetUpdates())
	records := make([]inventory.UpdateRecord, 0, len(screened))
	for _, su := range screened {
		if su.reject == "" {
			records = append(records, su.record)
		}
	}

	var applied inventory.ApplyResult
	if len(records) > 0 {
		var err error
		applied, err = s.engine.Apply(ctx, userID, constants.AuditActionUpdate, records)
		if err != nil {
			s.logger.Error("apply updates failed", "user_id", userID, "error", err)
			return nil, status.Errorf(codes.Internal, "apply updates: %v", err)
		}
	}
	result := mergeOutcomes(screened, applied)

	s.logger.Info("apply updates completed",
		"user_id", userID,
		"total", result.Summary.Total,
		"successful", result.Summary.Successful,
		"failed", result.Summary.Failed,
		"rejected", len(validationErrors),
	)
	return utils.ToPBApplyResult(result, validationErrors), nil
}

// screenedUpdate pairs one request position with either its engine-ready
// record or the boundary rejection that becomes its failed outcome.
type screenedUpdate struct {
	name   string
	record inventory.UpdateRecord
	reject string
}

// screenUpdates converts the request items position by position. Rejected
// items keep their slot; the returned strings mirror the rejections with
// their input index for validation_errors.
func screenUpdates(items []*pantryv1.ExtractedItem) ([]screenedUpdate, []string) {
	screened := make([]screenedUpdate, 0, len(items))
	var errs []string
	reject := func(i int, name, msg string) {
		screened = append(screened, screenedUpdate{name: name, reject: msg})
		errs = append(errs, fmt.Sprintf("updates[%d]: %s", i, msg))
	}
	for i, it := range items {
		name := strings.TrimSpace(it.GetName())
		if name == "" {
			reject(i, it.GetName(), "item name is empty")
			continue
		}
		action := strings.ToLower(strings.TrimSpace(it.GetAction()))
		switch action {
		case extract.ActionAdd, extract.ActionSubtract, extract.ActionSet:
		default:
			reject(i, name, fmt.Sprintf("unknown action %q", it.GetAction()))
			continue
		}
		if it.GetQuantity() < 0 {
			reject(i, name, "quantity must not be negative")
			continue
		}

		upd := inventory.UpdateRecord{
			Name:     name,
			Quantity: it.GetQuantity(),
			Unit:     constants.NormalizeUnit(it.GetUnit()),
			Action:   action,
		}
		if strings.TrimSpace(it.GetCategory()) != "" {
			upd.Category = string(constants.NormalizeCategory(it.GetCategory()))
		}
		if loc := strings.TrimSpace(it.GetLocation()); loc != "" {
			upd.Location = common.Some(loc)
		}
		if it.LowStockThreshold != nil && it.GetLowStockThreshold() >= 0 {
			upd.LowStockThreshold = common.Some(it.GetLowStockThreshold())
		}
		if notes := strings.TrimSpace(it.GetNotes()); notes != "" {
			upd.Notes = common.Some(notes)
		}
		switch {
		case it.GetClearExpiration():
			upd.Expiration = common.Null[time.Time]()
		case it.Expiration != nil:
			t, ok := normalize.ParseInstant(it.GetExpiration())
			if !ok {
				reject(i, name, fmt.Sprintf("expiration %q is not a recognized date", it.GetExpiration()))
				continue
			}
			upd.Expiration = common.Some(t)
		}
		screened = append(screened, screenedUpdate{name: name, record: upd})
	}
	return screened, errs
}

// mergeOutcomes reassembles the response in request order: engine outcomes
// for applied items, synthesized failures for rejected ones.
func mergeOutcomes(screened []screenedUpdate, applied inventory.ApplyResult) inventory.ApplyResult {
	result := inventory.ApplyResult{
		Outcomes: make([]inventory.ApplyOutcome, 0, len(screened)),
	}
	next := 0
	for _, su := range screened {
		if su.reject != "" {
			result.Outcomes = append(result.Outcomes, inventory.ApplyOutcome{Name: su.name, Error: su.reject})
			continue
		}
		result.Outcomes = append(result.Outcomes, applied.Outcomes[next])
		next++
	}
	result.Summary.Total = len(result.Outcomes)
	for _, o := range result.Outcomes {
		if o.Success {
			result.Summary.Successful++
		} else {
			result.Summary.Failed++
		}
	}
	result.Success = result.Summary.Failed == 0
	return result
}
