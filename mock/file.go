package mock

import (
	"context"

	"github.com/fwojciec/figdoc"
)

var (
	_ figdoc.FileService = (*FileService)(nil)
	_ figdoc.UserService = (*UserService)(nil)
)

// FileService is a mock implementation of figdoc.FileService.
type FileService struct {
	FetchFileFn  func(ctx context.Context, fileKey string, opts figdoc.FetchOptions) ([]byte, error)
	FetchNodesFn func(ctx context.Context, fileKey string, ids []string, opts figdoc.FetchOptions) ([]byte, error)
}

func (s *FileService) FetchFile(ctx context.Context, fileKey string, opts figdoc.FetchOptions) ([]byte, error) {
	return s.FetchFileFn(ctx, fileKey, opts)
}

func (s *FileService) FetchNodes(ctx context.Context, fileKey string, ids []string, opts figdoc.FetchOptions) ([]byte, error) {
	return s.FetchNodesFn(ctx, fileKey, ids, opts)
}

// UserService is a mock implementation of figdoc.UserService.
type UserService struct {
	MeFn func(ctx context.Context) (*figdoc.User, error)
}

func (s *UserService) Me(ctx context.Context) (*figdoc.User, error) {
	return s.MeFn(ctx)
}
