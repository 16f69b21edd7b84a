package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/figdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ figdoc.Cache = (*Cache)(nil)

// Cache implements figdoc.Cache using SQLite.
type Cache struct {
	db  *DB
	ttl time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewCache creates a new Cache whose entries stay fresh for ttl.
// A ttl of zero or less uses figdoc.DefaultCacheTTL.
func NewCache(db *DB, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = figdoc.DefaultCacheTTL
	}
	return &Cache{db: db, ttl: ttl, Now: time.Now}
}

func (c *Cache) now() time.Time {
	if c.Now != nil {
		return c.Now().UTC()
	}
	return time.Now().UTC()
}

// Get retrieves a payload. Expired entries are deleted and reported as
// missing.
func (c *Cache) Get(ctx context.Context, key figdoc.CacheKey) ([]byte, error) {
	hash := hashKey(key.String())

	var data []byte
	var expiresAt string
	err := c.db.QueryRowContext(ctx, `
		SELECT data, expires_at
		FROM cache_entries
		WHERE cache_key = ?
	`, hash).Scan(&data, &expiresAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, figdoc.Errorf(figdoc.ENOTFOUND, "cache entry not found")
	}
	if err != nil {
		return nil, err
	}

	expires, err := parseTime(expiresAt, "expires_at")
	if err != nil {
		return nil, err
	}
	if !c.now().Before(expires) {
		if _, err := c.db.ExecContext(ctx, `DELETE FROM cache_entries WHERE cache_key = ?`, hash); err != nil {
			return nil, err
		}
		return nil, figdoc.Errorf(figdoc.ENOTFOUND, "cache entry expired")
	}

	return data, nil
}

// Put stores a payload, replacing any entry under the same key.
func (c *Cache) Put(ctx context.Context, key figdoc.CacheKey, version string, data []byte) error {
	if key.FileKey == "" {
		return figdoc.Errorf(figdoc.EINVALID, "cache key requires a file key")
	}

	request := key.String()
	now := c.now()

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO cache_entries (id, cache_key, request, file_key, version, data, size, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(cache_key) DO UPDATE SET
			version = excluded.version,
			data = excluded.data,
			size = excluded.size,
			created_at = excluded.created_at,
			expires_at = excluded.expires_at
	`, uuid.New().String(), hashKey(request), request, key.FileKey, version, data, len(data),
		formatTime(now), formatTime(now.Add(c.ttl)))

	return err
}

// List returns every entry, newest first.
func (c *Cache) List(ctx context.Context) ([]*figdoc.CacheEntry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, request, file_key, version, size, created_at, expires_at
		FROM cache_entries
		ORDER BY created_at DESC, request
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*figdoc.CacheEntry, 0)
	for rows.Next() {
		var e figdoc.CacheEntry
		var createdAt, expiresAt string
		if err := rows.Scan(&e.ID, &e.Key, &e.FileKey, &e.Version, &e.Size, &createdAt, &expiresAt); err != nil {
			return nil, err
		}
		if e.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if e.ExpiresAt, err = parseTime(expiresAt, "expires_at"); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

// Stats summarises the cache.
func (c *Cache) Stats(ctx context.Context) (*figdoc.CacheStats, error) {
	var s figdoc.CacheStats
	err := c.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(size), 0),
			COALESCE(SUM(CASE WHEN expires_at <= ? THEN 1 ELSE 0 END), 0)
		FROM cache_entries
	`, formatTime(c.now())).Scan(&s.Entries, &s.TotalSize, &s.ExpiredCount)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Clear removes every entry.
func (c *Cache) Clear(ctx context.Context) (int, error) {
	return c.delete(ctx, `DELETE FROM cache_entries`)
}

// Prune removes expired entries.
func (c *Cache) Prune(ctx context.Context) (int, error) {
	return c.delete(ctx, `DELETE FROM cache_entries WHERE expires_at <= ?`, formatTime(c.now()))
}

func (c *Cache) delete(ctx context.Context, query string, args ...any) (int, error) {
	result, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
