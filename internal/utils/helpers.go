package utils

import (
	"time"

	pantryv1 "github.com/pantryops/pantryd/gen/proto/pantry/v1"
	"github.com/pantryops/pantryd/internal/agent"
	"github.com/pantryops/pantryd/internal/extract"
	"github.com/pantryops/pantryd/internal/inventory"
	"github.com/pantryops/pantryd/internal/metrics"
	"github.com/pantryops/pantryd/internal/upload"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.UTC().Format(time.RFC3339)
}

func ToPBItem(it extract.ExtractedItem) *pantryv1.ExtractedItem {
	out := &pantryv1.ExtractedItem{
		Name:       it.Name,
		Quantity:   it.Quantity,
		Unit:       it.Unit,
		Action:     it.Action,
		Category:   it.Category,
		Location:   it.Location,
		Notes:      it.Notes,
		Confidence: it.Confidence,
		Brand:      it.Brand,
	}
	if it.Expiration.Present {
		if it.Expiration.Null {
			out.ClearExpiration = true
		} else {
			v := it.Expiration.Value
			out.Expiration = &v
		}
	}
	return out
}

func ToPBParseResponse(res extract.ExtractionResult) *pantryv1.ParseResponse {
	items := make([]*pantryv1.ExtractedItem, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, ToPBItem(it))
	}
	return &pantryv1.ParseResponse{
		Items:             items,
		OverallConfidence: res.OverallConfidence,
		NeedsReview:       res.NeedsReview,
		UsedFallback:      res.UsedFallback,
		Error:             res.Error,
	}
}

func ToPBApplyResult(res inventory.ApplyResult, validationErrors []string) *pantryv1.ApplyUpdatesResponse {
	outcomes := make([]*pantryv1.ApplyOutcome, 0, len(res.Outcomes))
	for _, o := range res.Outcomes {
		pb := &pantryv1.ApplyOutcome{
			Name:         o.Name,
			Success:      o.Success,
			ResultAction: o.ResultAction,
			LowStock:     o.LowStock,
			Message:      o.Message,
			Error:        o.Error,
		}
		if o.ID != nil {
			pb.Id = o.ID.String()
		}
		if o.Quantity != nil {
			q := *o.Quantity
			pb.Quantity = &q
		}
		outcomes = append(outcomes, pb)
	}
	return &pantryv1.ApplyUpdatesResponse{
		Success:  res.Success && len(validationErrors) == 0,
		Outcomes: outcomes,
		Summary: &pantryv1.ApplySummary{
			Total:      int32(res.Summary.Total),
			Successful: int32(res.Summary.Successful),
			Failed:     int32(res.Summary.Failed),
		},
		ValidationErrors: validationErrors,
	}
}

func ToPBIngestionJob(j agent.IngestionJob) *pantryv1.IngestionJob {
	out := &pantryv1.IngestionJob{
		Id:            j.ID.String(),
		UserId:        j.UserID,
		Status:        string(j.Status),
		InputText:     strOrEmpty(j.InputText),
		AgentResponse: strOrEmpty(j.AgentResponse),
		ResultSummary: strOrEmpty(j.ResultSummary),
		LastError:     strOrEmpty(j.LastError),
		CreatedAt:     j.CreatedAt.UTC().Format(time.RFC3339),
		FinishedAt:    timeOrEmpty(j.FinishedAt),
	}
	if j.UploadID != nil {
		out.UploadId = j.UploadID.String()
	}
	return out
}

func ToPBUpload(u upload.Upload) *pantryv1.Upload {
	out := &pantryv1.Upload{
		Id:               u.ID.String(),
		UserId:           u.UserID,
		Filename:         u.Filename,
		OriginalFilename: u.OriginalFilename,
		ContentType:      u.ContentType,
		SourceType:       string(u.SourceType),
		Status:           string(u.Status),
		LastError:        strOrEmpty(u.LastError),
		TextPreview:      strOrEmpty(u.TextPreview),
		Bucket:           u.Bucket,
		StoragePath:      u.StoragePath,
		CreatedAt:        u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        u.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if u.SizeBytes != nil {
		out.SizeBytes = *u.SizeBytes
	}
	if u.IngestionJobID != nil {
		out.IngestionJobId = u.IngestionJobID.String()
	}
	if u.ProcessingJobID != nil {
		out.ProcessingJobId = u.ProcessingJobID.String()
	}
	return out
}

// ToPBMetrics derives the rate fields from the raw counters so every reader
// computes them the same way.
func ToPBMetrics(key string, d metrics.Delta) *pantryv1.MetricsSnapshot {
	out := &pantryv1.MetricsSnapshot{
		Key:              key,
		Total:            d.Total,
		SuccessCount:     d.SuccessCount,
		FallbackCount:    d.FallbackCount,
		LatencySumMs:     d.LatencySumMS,
		ConfidenceSum:    d.ConfidenceSum,
		LatencyLt_2S:     d.LatencyLt2s,
		Latency_2S_5S:    d.Latency2s5s,
		LatencyGt_5S:     d.LatencyGt5s,
		ConfidenceLow:    d.ConfidenceLow,
		ConfidenceMedium: d.ConfidenceMedium,
		ConfidenceHigh:   d.ConfidenceHigh,
	}
	if d.Total > 0 {
		out.SuccessRate = float64(d.SuccessCount) / float64(d.Total)
		out.FallbackRate = float64(d.FallbackCount) / float64(d.Total)
		out.AvgLatencyMs = float64(d.LatencySumMS) / float64(d.Total)
	}
	if scored := d.ConfidenceLow + d.ConfidenceMedium + d.ConfidenceHigh; scored > 0 {
		out.AvgConfidence = d.ConfidenceSum / float64(scored)
	}
	return out
}

// ParseYMD parses a UTC calendar date in the 2006-01-02 layout.
func ParseYMD(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
