// Package slog provides logging decorators for figdoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/figdoc"
)

// Ensure LoggingFileService implements figdoc.FileService.
var _ figdoc.FileService = (*LoggingFileService)(nil)

// LoggingFileService wraps a FileService with debug logging.
type LoggingFileService struct {
	next   figdoc.FileService
	logger *slog.Logger
}

// NewLoggingFileService creates a new LoggingFileService.
func NewLoggingFileService(next figdoc.FileService, logger *slog.Logger) *LoggingFileService {
	return &LoggingFileService{next: next, logger: logger}
}

// FetchFile delegates to the wrapped service and logs the operation.
func (s *LoggingFileService) FetchFile(ctx context.Context, fileKey string, opts figdoc.FetchOptions) (data []byte, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("fetch file",
			"file", fileKey,
			"depth", depthAttr(opts.Depth),
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchFile(ctx, fileKey, opts)
}

// FetchNodes delegates to the wrapped service and logs the operation.
func (s *LoggingFileService) FetchNodes(ctx context.Context, fileKey string, ids []string, opts figdoc.FetchOptions) (data []byte, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("fetch nodes",
			"file", fileKey,
			"ids", len(ids),
			"depth", depthAttr(opts.Depth),
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchNodes(ctx, fileKey, ids, opts)
}

func depthAttr(depth *int) any {
	if depth == nil {
		return "full"
	}
	return *depth
}
