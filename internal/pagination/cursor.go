package pagination

import (
	"fmt"
	"strings"
	"time"

	"gochat/internal/common"
)

// A cursor is "<RFC3339Nano timestamp>_<message id>". Ids are UUIDs and can
// never contain the separator, so decoding splits on the first occurrence.
const cursorSeparator = "_"

// EncodeCursor serializes a (createdAt, id) position into an opaque token.
func EncodeCursor(ts time.Time, id string) string {
	return fmt.Sprintf("%s%s%s", ts.UTC().Format(time.RFC3339Nano), cursorSeparator, id)
}

// DecodeCursor parses a cursor back into its position. It validates shape
// only; whether the position exists is deliberately not checked, a stale
// cursor just yields an empty or shifted page.
func DecodeCursor(cursor string) (time.Time, string, error) {
	sep := strings.Index(cursor, cursorSeparator)
	if sep < 0 || sep == len(cursor)-1 {
		return time.Time{}, "", common.InvalidArgument("invalid cursor format")
	}

	tsPart, idPart := cursor[:sep], cursor[sep+1:]
	ts, err := time.Parse(time.RFC3339Nano, tsPart)
	if err != nil {
		return time.Time{}, "", common.InvalidArgument("invalid cursor timestamp")
	}

	return ts, idPart, nil
}
