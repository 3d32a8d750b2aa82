package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"parkshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errs.NewKind("invalid cursor", errs.ErrValidation)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
	cursorVersion    = "v1"
)

type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeAfterCursor keeps microseconds only, matching timestamptz precision.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	raw := cursorVersion + ":" + strconv.FormatInt(t.UnixMicro(), 10) + ":" + id.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor is not base64url")
	}

	parts := strings.SplitN(string(decoded), ":", 3)
	if len(parts) != 3 || parts[0] != cursorVersion {
		return time.Time{}, uuid.Nil, errs.New("unsupported cursor format")
	}

	micros, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid cursor timestamp")
	}
	id, err := uuid.Parse(parts[2])
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid cursor id")
	}
	return time.UnixMicro(micros).UTC(), id, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

func decodeCursor(cursor *Cursor) (time.Time, uuid.UUID, bool, error) {
	if cursor == nil || cursor.After == "" {
		return time.Time{}, uuid.Nil, false, nil
	}
	lastCreatedAt, lastID, err := DecodeAfterCursor(cursor.After)
	if err != nil {
		return time.Time{}, uuid.Nil, false, ErrInvalidCursor
	}
	return lastCreatedAt, lastID, true, nil
}

// paginate trims a limit+1 result set and returns the cursor for the next page.
func paginate[T any](rows []T, limit int, key func(T) (time.Time, uuid.UUID)) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	createdAt, id := key(rows[limit-1])
	return rows[:limit], &Cursor{After: EncodeAfterCursor(createdAt, id)}
}
