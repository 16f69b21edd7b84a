package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/figdoc"
)

// Ensure LoggingExtractionService implements figdoc.ExtractionService.
var _ figdoc.ExtractionService = (*LoggingExtractionService)(nil)

// LoggingExtractionService wraps an ExtractionService with logging.
type LoggingExtractionService struct {
	next   figdoc.ExtractionService
	logger *slog.Logger
}

// NewLoggingExtractionService creates a new LoggingExtractionService.
func NewLoggingExtractionService(next figdoc.ExtractionService, logger *slog.Logger) *LoggingExtractionService {
	return &LoggingExtractionService{next: next, logger: logger}
}

// Extract delegates to the wrapped service and logs the result counters.
func (s *LoggingExtractionService) Extract(ctx context.Context, req figdoc.ExtractRequest) (result *figdoc.ExtractionResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{"file", req.FileKey, "duration", time.Since(begin)}
		if result != nil {
			attrs = append(attrs,
				"pages", result.Stats.TotalPages,
				"frames", result.Stats.TotalFrames,
				"texts", result.Stats.TotalTextNodes,
			)
		}
		attrs = append(attrs, "err", err)
		s.logger.Info("extract", attrs...)
	}(time.Now())
	return s.next.Extract(ctx, req)
}

// ExtractMany delegates to the wrapped service and logs the batch.
func (s *LoggingExtractionService) ExtractMany(ctx context.Context, reqs []figdoc.ExtractRequest) (results []*figdoc.ExtractionResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("extract batch",
			"files", len(reqs),
			"results", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExtractMany(ctx, reqs)
}

// Inspect delegates to the wrapped service and logs the operation.
func (s *LoggingExtractionService) Inspect(ctx context.Context, fileKey string, ids []string, opts figdoc.FetchOptions) (resp *figdoc.NodesResponse, err error) {
	defer func(begin time.Time) {
		found := 0
		if resp != nil {
			for _, n := range resp.Nodes {
				if n != nil {
					found++
				}
			}
		}
		s.logger.Info("inspect",
			"file", fileKey,
			"ids", len(ids),
			"found", found,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Inspect(ctx, fileKey, ids, opts)
}
