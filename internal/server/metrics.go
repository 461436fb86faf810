package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pantryv1 "github.com/pantryops/pantryd/gen/proto/pantry/v1"
	"github.com/pantryops/pantryd/internal/metrics"
	"github.com/pantryops/pantryd/internal/utils"
)

type MetricsService struct {
	pantryv1.UnimplementedMetricsServiceServer
	agg    *metrics.Aggregator
	logger *slog.Logger
}

func NewMetricsService(agg *metrics.Aggregator, logger *slog.Logger) *MetricsService {
	return &MetricsService{
		agg:    agg,
		logger: logger,
	}
}

// GetMetrics returns the snapshot under key, zero-valued if nothing has been
// recorded there yet.
func (s *MetricsService) GetMetrics(ctx context.Context, req *pantryv1.GetMetricsRequest) (*pantryv1.GetMetricsResponse, error) {
	key := strings.TrimSpace(req.GetKey())
	if key == "" {
		key = metrics.GlobalKey
	}
	if key != metrics.GlobalKey {
		if _, err := utils.ParseYMD(key); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "key must be %q or a date (2006-01-02)", metrics.GlobalKey)
		}
	}

	d, err := s.agg.Snapshot(ctx, key)
	if err != nil {
		s.logger.Error("failed to load metrics snapshot", "key", key, "error", err)
		return nil, status.Errorf(codes.Internal, "load metrics: %v", err)
	}
	return &pantryv1.GetMetricsResponse{Snapshot: utils.ToPBMetrics(key, d)}, nil
}
