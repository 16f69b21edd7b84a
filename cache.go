package figdoc

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"time"
)

// DefaultCacheTTL is how long a cached payload stays fresh.
const DefaultCacheTTL = time.Hour

// CacheKey identifies a cached payload.
type CacheKey struct {
	FileKey string
	Depth   *int
	NodeIDs []string
}

// String returns the canonical form of the key. Node IDs are sorted so that
// the same request in a different order maps to the same entry.
func (k CacheKey) String() string {
	var b strings.Builder
	b.WriteString(k.FileKey)
	b.WriteString("|depth=")
	if k.Depth != nil {
		b.WriteString(strconv.Itoa(*k.Depth))
	} else {
		b.WriteString("full")
	}
	if len(k.NodeIDs) > 0 {
		ids := slices.Clone(k.NodeIDs)
		slices.Sort(ids)
		b.WriteString("|nodes=")
		b.WriteString(strings.Join(ids, ","))
	}
	return b.String()
}

// CacheEntry describes a stored payload.
type CacheEntry struct {
	ID        string
	Key       string
	FileKey   string
	Version   string
	Size      int
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the entry is stale at now.
func (e *CacheEntry) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// CacheStats summarises the cache contents.
type CacheStats struct {
	Entries      int
	TotalSize    int64
	ExpiredCount int
}

// Cache stores raw API payloads.
type Cache interface {
	// Get returns the payload stored under key.
	// Returns ENOTFOUND if there is none or it has expired.
	Get(ctx context.Context, key CacheKey) ([]byte, error)

	// Put stores data under key, replacing any existing entry.
	Put(ctx context.Context, key CacheKey, version string, data []byte) error

	// List returns all entries, newest first.
	List(ctx context.Context) ([]*CacheEntry, error)

	// Stats returns aggregate counters.
	Stats(ctx context.Context) (*CacheStats, error)

	// Clear removes every entry and returns how many were removed.
	Clear(ctx context.Context) (int, error)

	// Prune removes expired entries and returns how many were removed.
	Prune(ctx context.Context) (int, error)
}
