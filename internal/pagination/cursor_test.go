package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"gochat/internal/common"
)

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2025, 6, 1, 10, 30, 0, 123456789, time.UTC)
	id := "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	cursor := EncodeCursor(ts, id)

	gotTS, gotID, err := DecodeCursor(cursor)
	require.NoError(t, err)
	assert.True(t, ts.Equal(gotTS))
	assert.Equal(t, id, gotID)
}

func TestCursorEncodeNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	ts := time.Date(2025, 6, 1, 15, 0, 0, 0, loc)

	gotTS, id, err := DecodeCursor(EncodeCursor(ts, "some-id"))
	require.NoError(t, err)
	assert.Equal(t, "some-id", id)
	assert.True(t, ts.Equal(gotTS))
	assert.Equal(t, time.UTC, gotTS.Location())
}

func TestDecodeCursorErrors(t *testing.T) {
	tests := []struct {
		name    string
		cursor  string
		message string
	}{
		{"no separator", "2025-06-01T10:30:00Z", "invalid cursor format"},
		{"empty id part", "2025-06-01T10:30:00Z_", "invalid cursor format"},
		{"empty string", "", "invalid cursor format"},
		{"bad timestamp", "not-a-time_some-id", "invalid cursor timestamp"},
		{"truncated timestamp", "2025-06-01_some-id", "invalid cursor timestamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeCursor(tt.cursor)
			require.Error(t, err)
			assert.True(t, common.IsCode(err, codes.InvalidArgument))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

// a stale-but-well-formed cursor must decode fine; existence is not checked
func TestDecodeCursorDoesNotCheckExistence(t *testing.T) {
	_, id, err := DecodeCursor("2020-01-01T00:00:00Z_never-existed")
	require.NoError(t, err)
	assert.Equal(t, "never-existed", id)
}

func TestParamsNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        Params
		wantLimit int
		wantSort  string
	}{
		{"defaults", Params{}, 20, SortDesc},
		{"zero limit", Params{Limit: 0, Sort: SortAsc}, 20, SortAsc},
		{"negative limit", Params{Limit: -5}, 20, SortDesc},
		{"clamped to max", Params{Limit: 500}, 100, SortDesc},
		{"limit one", Params{Limit: 1}, 1, SortDesc},
		{"unknown sort falls back to desc", Params{Sort: "sideways"}, 20, SortDesc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantSort, got.Sort)
		})
	}
}
