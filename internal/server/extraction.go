package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pantryv1 "github.com/pantryops/pantryd/gen/proto/pantry/v1"
	"github.com/pantryops/pantryd/internal/extract"
	"github.com/pantryops/pantryd/internal/metrics"
	"github.com/pantryops/pantryd/internal/normalize"
	"github.com/pantryops/pantryd/internal/utils"
)

// agent label recorded on interaction events produced by the sync parse RPCs.
const parseAgent = "parse"

const maxInlineTextLen = 32 << 10

type ExtractionService struct {
	pantryv1.UnimplementedExtractionServiceServer
	extractor *extract.Service
	agg       *metrics.Aggregator
	logger    *slog.Logger
}

func NewExtractionService(extractor *extract.Service, agg *metrics.Aggregator, logger *slog.Logger) *ExtractionService {
	return &ExtractionService{
		extractor: extractor,
		agg:       agg,
		logger:    logger,
	}
}

// ParseText extracts structured items from free-form text. It never fails on
// provider trouble; the fallback result carries an advisory error instead.
func (s *ExtractionService) ParseText(ctx context.Context, req *pantryv1.ParseTextRequest) (*pantryv1.ParseResponse, error) {
	userID := strings.TrimSpace(req.GetUserId())
	if userID == "" {
		s.logger.Error("parse text request missing user_id")
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	text := req.GetText()
	if strings.TrimSpace(text) == "" {
		return nil, status.Error(codes.InvalidArgument, "text is required")
	}
	if len(text) > maxInlineTextLen {
		return nil, status.Errorf(codes.InvalidArgument, "text exceeds %d bytes", maxInlineTextLen)
	}

	start := time.Now()
	res := s.extractor.ParseText(ctx, text)
	res.Items = normalize.Items(res.Items)
	s.recordEvent(ctx, userID, text, res, time.Since(start).Milliseconds())

	s.logger.Info("parse text completed",
		"user_id", userID,
		"items", len(res.Items),
		"confidence", res.OverallConfidence,
		"used_fallback", res.UsedFallback,
	)
	return utils.ToPBParseResponse(res), nil
}

// ParseImage extracts items from an uploaded photo inline. Unlike text there
// is no deterministic fallback, so provider failure surfaces in the response
// error field with an empty item list.
func (s *ExtractionService) ParseImage(ctx context.Context, req *pantryv1.ParseImageRequest) (*pantryv1.ParseResponse, error) {
	userID := strings.TrimSpace(req.GetUserId())
	if userID == "" {
		s.logger.Error("parse image request missing user_id")
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	if len(req.GetImage()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "image is required")
	}

	start := time.Now()
	res := s.extractor.ParseImage(ctx, req.GetImage(), req.GetContentType(), req.GetSourceHint())
	res.Items = normalize.Items(res.Items)
	s.recordEvent(ctx, userID, "", res, time.Since(start).Milliseconds())

	s.logger.Info("parse image completed",
		"user_id", userID,
		"items", len(res.Items),
		"confidence", res.OverallConfidence,
		"used_fallback", res.UsedFallback,
	)
	return utils.ToPBParseResponse(res), nil
}

func (s *ExtractionService) recordEvent(ctx context.Context, userID, input string, res extract.ExtractionResult, latencyMS int64) {
	if s.agg == nil {
		return
	}
	conf := res.OverallConfidence
	ev := metrics.Event{
		UserID:       userID,
		Input:        input,
		Agent:        parseAgent,
		Success:      res.Error == "",
		UsedFallback: res.UsedFallback,
		LatencyMS:    latencyMS,
		Confidence:   &conf,
		Error:        res.Error,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.agg.Record(ctx, ev); err != nil {
		s.logger.Warn("failed to record parse event", "user_id", userID, "error", err)
	}
}
