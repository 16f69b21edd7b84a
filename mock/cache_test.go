package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/figdoc"
	"github.com/fwojciec/figdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ figdoc.Cache = &mock.Cache{}
}

func TestCache_Put(t *testing.T) {
	t.Parallel()

	t.Run("delegates to PutFn", func(t *testing.T) {
		t.Parallel()

		var gotKey figdoc.CacheKey
		var gotVersion string
		c := &mock.Cache{
			PutFn: func(_ context.Context, key figdoc.CacheKey, version string, _ []byte) error {
				gotKey = key
				gotVersion = version
				return nil
			},
		}

		err := c.Put(context.Background(), figdoc.CacheKey{FileKey: "abc"}, "7", []byte(`{}`))

		require.NoError(t, err)
		assert.Equal(t, "abc", gotKey.FileKey)
		assert.Equal(t, "7", gotVersion)
	})
}
