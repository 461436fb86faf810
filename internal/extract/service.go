package extract

import (
	"context"
	"log/slog"
	"time"
)

// Review gate thresholds. The provider is instructed to band confidence
// (>=0.9 unambiguous, 0.7-0.89 minor assumptions, 0.5-0.69 ambiguous, <0.5
// unclear); these are re-checked locally so a misbehaving provider cannot
// skip review.
const (
	reviewOverallThreshold = 0.7
	reviewItemThreshold    = 0.6
)

// Service fronts the extraction provider with the deterministic fallback.
// Both Parse methods always return a usable result; provider failures are
// surfaced only as an advisory Error string plus forced review.
type Service struct {
	provider Provider
	fallback *FallbackParser
	timeout  time.Duration
	logger   *slog.Logger
}

func NewService(provider Provider, fallback *FallbackParser, timeout time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{provider: provider, fallback: fallback, timeout: timeout, logger: logger}
}

// ParseText extracts items from free-form text, failing over to the fallback
// parser on any provider error (timeouts included).
func (s *Service) ParseText(ctx context.Context, text string) ExtractionResult {
	start := time.Now()
	pctx, cancel := s.providerContext(ctx)
	defer cancel()

	res, err := s.provider.ExtractText(pctx, text)
	if err != nil {
		s.logger.Warn("extract.provider_failed",
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		res = s.fallback.Parse(text)
		res.Error = "extraction provider unavailable: " + err.Error()
		return gateReview(res)
	}
	res.OriginalText = text
	return gateReview(res)
}

// ParseImage extracts items from image bytes via the vision path. There is no
// deterministic fallback for pixels; on provider failure the result is empty,
// carries the error, and demands review.
func (s *Service) ParseImage(ctx context.Context, image []byte, imageType string, hint string) ExtractionResult {
	start := time.Now()
	pctx, cancel := s.providerContext(ctx)
	defer cancel()

	res, err := s.provider.ExtractImage(pctx, image, imageType, hint)
	if err != nil {
		s.logger.Warn("extract.vision_failed",
			"error", err,
			"image_bytes", len(image),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return ExtractionResult{
			Items:             nil,
			OverallConfidence: 0,
			NeedsReview:       true,
			UsedFallback:      true,
			Error:             "image extraction failed: " + err.Error(),
		}
	}
	return gateReview(res)
}

// providerContext gives the provider call its own timeout, independent of the
// caller's deadline. Expiry is indistinguishable from a provider error.
func (s *Service) providerContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// gateReview re-applies the review rules locally: low overall confidence, any
// ambiguous item, or a batch mixing acquisition and consumption actions.
func gateReview(res ExtractionResult) ExtractionResult {
	if res.OverallConfidence < reviewOverallThreshold {
		res.NeedsReview = true
	}
	var hasAdd, hasSubtract bool
	for _, it := range res.Items {
		if it.Confidence < reviewItemThreshold {
			res.NeedsReview = true
		}
		switch it.Action {
		case ActionAdd:
			hasAdd = true
		case ActionSubtract:
			hasSubtract = true
		}
	}
	if hasAdd && hasSubtract {
		res.NeedsReview = true
	}
	return res
}
