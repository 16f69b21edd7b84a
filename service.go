package figdoc

import "context"

// ExtractRequest describes one extraction.
type ExtractRequest struct {
	FileKey string
	Filter  *FilterCriteria
	Fetch   FetchOptions
}

// ExtractionService fetches files and extracts their text.
type ExtractionService interface {
	// Extract fetches, decodes and extracts a single file.
	Extract(ctx context.Context, req ExtractRequest) (*ExtractionResult, error)

	// ExtractMany extracts several files concurrently. Results are in the
	// same order as reqs. The first failure cancels the remaining work.
	ExtractMany(ctx context.Context, reqs []ExtractRequest) ([]*ExtractionResult, error)

	// Inspect fetches and decodes specific nodes of a file.
	// Returns EINVALID if ids is empty.
	Inspect(ctx context.Context, fileKey string, ids []string, opts FetchOptions) (*NodesResponse, error)
}
