package sqlite

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// timeFormat is fixed-width so stored timestamps compare correctly as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

// parseTime parses a timestamp written by formatTime.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseTime(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(timeFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// hashKey computes the xxHash of a canonical cache key as a hex string.
func hashKey(key string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(key))
	return hex.EncodeToString(b)
}
