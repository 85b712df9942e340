//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"bookslot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursorRoundTrip(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2030, 6, 15, 10, 30, 0, 123456000, time.UTC)

	encoded := queries.EncodeAfterCursor(createdAt, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, createdAt.UnixMicro(), gotTime.UnixMicro())
}

func TestDecodeAfterCursorRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name   string
		cursor string
	}{
		{name: "empty", cursor: ""},
		{name: "not base64", cursor: "%%%%"},
		{name: "missing version prefix", cursor: base64.URLEncoding.EncodeToString([]byte("1234-" + uuid.NewString()))},
		{name: "unknown version", cursor: base64.URLEncoding.EncodeToString([]byte("v2:1234-" + uuid.NewString()))},
		{name: "missing separator", cursor: base64.URLEncoding.EncodeToString([]byte("v1:1234"))},
		{name: "non numeric timestamp", cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{name: "invalid uuid", cursor: base64.URLEncoding.EncodeToString([]byte("v1:1234-not-a-uuid"))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			require.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 1, queries.ValidateLimit(1))
	assert.Equal(t, 200, queries.ValidateLimit(200))
	assert.Equal(t, 200, queries.ValidateLimit(201))
	assert.Equal(t, 200, queries.ValidateLimit(100000))
}
