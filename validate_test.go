package figdoc_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/figdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validKey = "abcdefghij1234567890AB"

func TestParseFileKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "bare key", input: validKey, want: validKey},
		{name: "long key", input: strings.Repeat("X", 30), want: strings.Repeat("X", 30)},
		{name: "file url", input: "https://www.figma.com/file/" + validKey + "/Landing", want: validKey},
		{name: "design url", input: "https://figma.com/design/" + validKey + "/Landing?node-id=1-2", want: validKey},
		{name: "empty", input: "", wantErr: true},
		{name: "short key", input: "abc123", wantErr: true},
		{name: "key with symbols", input: "abcdefghij1234567890A-", wantErr: true},
		{name: "url without key", input: "https://www.figma.com/files/recent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := figdoc.ParseFileKey(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, figdoc.EINVALID, figdoc.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNodeID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"https://figma.com/design/" + validKey + "/x?node-id=12-34", "12:34", true},
		{"1-2", "1:2", true},
		{"1:2", "1:2", true},
		{"12", "", false},
		{"abc-def", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, ok := figdoc.ParseNodeID(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNodeIDs(t *testing.T) {
	t.Parallel()

	t.Run("normalises every id", func(t *testing.T) {
		t.Parallel()

		ids, err := figdoc.ParseNodeIDs([]string{"1-2", " 3:4 "})

		require.NoError(t, err)
		assert.Equal(t, []string{"1:2", "3:4"}, ids)
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		t.Parallel()

		_, err := figdoc.ParseNodeIDs([]string{"1-2", "nope"})

		assert.Equal(t, figdoc.EINVALID, figdoc.ErrorCode(err))
	})
}

func TestParseFileAndNodes(t *testing.T) {
	t.Parallel()

	t.Run("extracts key and node id from url", func(t *testing.T) {
		t.Parallel()

		key, ids, err := figdoc.ParseFileAndNodes("https://www.figma.com/design/" + validKey + "/Landing?node-id=5-6&t=abc")

		require.NoError(t, err)
		assert.Equal(t, validKey, key)
		assert.Equal(t, []string{"5:6"}, ids)
	})

	t.Run("bare key has no nodes", func(t *testing.T) {
		t.Parallel()

		key, ids, err := figdoc.ParseFileAndNodes(validKey)

		require.NoError(t, err)
		assert.Equal(t, validKey, key)
		assert.Empty(t, ids)
	})
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	assert.NoError(t, figdoc.ValidateToken("figd_abcdefghijk"))
	assert.Equal(t, figdoc.EINVALID, figdoc.ErrorCode(figdoc.ValidateToken("")))
	assert.Equal(t, figdoc.EINVALID, figdoc.ErrorCode(figdoc.ValidateToken("abcdefghijklmn")))
	assert.Equal(t, figdoc.EINVALID, figdoc.ErrorCode(figdoc.ValidateToken("figd_x")))
}
