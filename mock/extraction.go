package mock

import (
	"context"
	"io"

	"github.com/fwojciec/figdoc"
)

var (
	_ figdoc.ExtractionService = (*ExtractionService)(nil)
	_ figdoc.Formatter         = (*Formatter)(nil)
	_ figdoc.Querier           = (*Querier)(nil)
)

// ExtractionService is a mock implementation of figdoc.ExtractionService.
type ExtractionService struct {
	ExtractFn     func(ctx context.Context, req figdoc.ExtractRequest) (*figdoc.ExtractionResult, error)
	ExtractManyFn func(ctx context.Context, reqs []figdoc.ExtractRequest) ([]*figdoc.ExtractionResult, error)
	InspectFn     func(ctx context.Context, fileKey string, ids []string, opts figdoc.FetchOptions) (*figdoc.NodesResponse, error)
}

func (s *ExtractionService) Extract(ctx context.Context, req figdoc.ExtractRequest) (*figdoc.ExtractionResult, error) {
	return s.ExtractFn(ctx, req)
}

func (s *ExtractionService) ExtractMany(ctx context.Context, reqs []figdoc.ExtractRequest) ([]*figdoc.ExtractionResult, error) {
	return s.ExtractManyFn(ctx, reqs)
}

func (s *ExtractionService) Inspect(ctx context.Context, fileKey string, ids []string, opts figdoc.FetchOptions) (*figdoc.NodesResponse, error) {
	return s.InspectFn(ctx, fileKey, ids, opts)
}

// Formatter is a mock implementation of figdoc.Formatter.
type Formatter struct {
	FormatFn func(w io.Writer, r *figdoc.ExtractionResult) error
}

func (f *Formatter) Format(w io.Writer, r *figdoc.ExtractionResult) error {
	return f.FormatFn(w, r)
}

// Querier is a mock implementation of figdoc.Querier.
type Querier struct {
	QueryFn func(expr string, data []byte) (any, error)
}

func (q *Querier) Query(expr string, data []byte) (any, error) {
	return q.QueryFn(expr, data)
}
