package extract

import (
	"context"
	stdjson "encoding/json"
	"log/slog"

	"github.com/fwojciec/figdoc"
	"github.com/fwojciec/figdoc/json"
)

var _ figdoc.FileService = (*CachedFileService)(nil)

// CachedFileService serves file payloads from a cache, falling back to the
// wrapped service on a miss and storing what it fetched. Only payloads that
// decode are stored. Cache failures are logged and otherwise treated as
// misses.
type CachedFileService struct {
	Files  figdoc.FileService
	Cache  figdoc.Cache
	Logger *slog.Logger
}

// FetchFile implements figdoc.FileService.
func (s *CachedFileService) FetchFile(ctx context.Context, fileKey string, opts figdoc.FetchOptions) ([]byte, error) {
	key := figdoc.CacheKey{FileKey: fileKey, Depth: opts.Depth}
	return s.fetch(ctx, key, fileVersion, func() ([]byte, error) {
		return s.Files.FetchFile(ctx, fileKey, opts)
	})
}

// FetchNodes implements figdoc.FileService.
func (s *CachedFileService) FetchNodes(ctx context.Context, fileKey string, ids []string, opts figdoc.FetchOptions) ([]byte, error) {
	key := figdoc.CacheKey{FileKey: fileKey, Depth: opts.Depth, NodeIDs: ids}
	return s.fetch(ctx, key, nodesVersion, func() ([]byte, error) {
		return s.Files.FetchNodes(ctx, fileKey, ids, opts)
	})
}

func (s *CachedFileService) fetch(ctx context.Context, key figdoc.CacheKey, version func([]byte) (string, error), miss func() ([]byte, error)) ([]byte, error) {
	data, err := s.Cache.Get(ctx, key)
	if err == nil {
		s.logger().Debug("cache hit", "key", key.String())
		return data, nil
	}
	if figdoc.ErrorCode(err) != figdoc.ENOTFOUND {
		s.logger().Warn("cache read failed", "key", key.String(), "error", err)
	}

	data, err = miss()
	if err != nil {
		return nil, err
	}

	v, err := version(data)
	if err != nil {
		s.logger().Warn("payload not cached", "key", key.String(), "error", err)
		return data, nil
	}
	if err := s.Cache.Put(ctx, key, v, data); err != nil {
		s.logger().Warn("cache write failed", "key", key.String(), "error", err)
	}
	return data, nil
}

func (s *CachedFileService) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// fileVersion decodes a file payload and returns its version.
func fileVersion(data []byte) (string, error) {
	f, err := json.DecodeFile(data)
	if err != nil {
		return "", err
	}
	return f.Version, nil
}

// nodesVersion decodes a nodes payload and returns its top-level version,
// if any.
func nodesVersion(data []byte) (string, error) {
	if _, err := json.DecodeNodes(data); err != nil {
		return "", err
	}
	var v struct {
		Version string `json:"version"`
	}
	if err := stdjson.Unmarshal(data, &v); err != nil {
		return "", err
	}
	return v.Version, nil
}
