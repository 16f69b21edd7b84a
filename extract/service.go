package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/figdoc"
	"github.com/fwojciec/figdoc/json"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds ExtractMany when Service.Concurrency is unset.
const DefaultConcurrency = 4

// bytesPerText approximates the in-memory overhead of one ExtractedText
// beyond its characters.
const bytesPerText = 200

var _ figdoc.ExtractionService = (*Service)(nil)

// Service implements figdoc.ExtractionService on top of a file source.
type Service struct {
	Files       figdoc.FileService
	Concurrency int

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Extract implements figdoc.ExtractionService.
func (s *Service) Extract(ctx context.Context, req figdoc.ExtractRequest) (*figdoc.ExtractionResult, error) {
	if err := figdoc.ValidateFileKey(req.FileKey); err != nil {
		return nil, err
	}

	start := s.now()

	data, err := s.Files.FetchFile(ctx, req.FileKey, req.Fetch)
	if err != nil {
		return nil, fmt.Errorf("fetch file %s: %w", req.FileKey, err)
	}

	file, err := json.DecodeFile(data)
	if err != nil {
		return nil, err
	}
	file.Key = req.FileKey

	texts, structure := Extract(file.Document, req.Filter)

	end := s.now()
	result := figdoc.NewExtractionResult(figdoc.FileMetadata{
		FileKey:      file.Key,
		FileName:     file.Name,
		Version:      file.Version,
		LastModified: file.LastModified,
		ExtractedAt:  end.UTC(),
		EditorType:   file.EditorType,
	}, structure, texts)
	result.Stats.ExtractionTimeMS = end.Sub(start).Milliseconds()
	result.Stats.MemorySizeMB = EstimateMemoryMB(texts)

	return result, nil
}

// ExtractMany implements figdoc.ExtractionService.
func (s *Service) ExtractMany(ctx context.Context, reqs []figdoc.ExtractRequest) ([]*figdoc.ExtractionResult, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*figdoc.ExtractionResult, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, req := range reqs {
		g.Go(func() error {
			r, err := s.Extract(gctx, req)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Inspect implements figdoc.ExtractionService.
func (s *Service) Inspect(ctx context.Context, fileKey string, ids []string, opts figdoc.FetchOptions) (*figdoc.NodesResponse, error) {
	if err := figdoc.ValidateFileKey(fileKey); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, figdoc.Errorf(figdoc.EINVALID, "no node ids specified")
	}

	data, err := s.Files.FetchNodes(ctx, fileKey, ids, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch nodes %s: %w", fileKey, err)
	}

	return json.DecodeNodes(data)
}

// EstimateMemoryMB approximates the memory held by texts, in mebibytes.
func EstimateMemoryMB(texts []figdoc.ExtractedText) float64 {
	total := len(texts) * bytesPerText
	for _, t := range texts {
		total += len(t.Text)
	}
	return float64(total) / (1024 * 1024)
}
