//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"parkshare/internal/pkg/errs"
	"parkshare/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullableRoundTrips(t *testing.T) {
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))
	id := uuid.New()
	got := pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id))
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	assert.Nil(t, pgconv.Float64PtrFromPgtype(pgtype.Float8{}))
	lat := 35.68
	assert.Equal(t, &lat, pgconv.Float64PtrFromPgtype(pgconv.Float64PtrToPgtype(&lat)))

	assert.Nil(t, pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(nil)))
	jst := time.FixedZone("JST", 9*60*60)
	at := time.Date(2030, 6, 1, 19, 0, 0, 0, jst)
	utc := pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&at))
	require.NotNil(t, utc)
	assert.Equal(t, time.UTC, utc.Location())
	assert.True(t, utc.Equal(at))

	assert.Zero(t, pgconv.Int64FromPgtype(pgtype.Int8{}))
	assert.Equal(t, int64(7), pgconv.Int64FromPgtype(pgtype.Int8{Int64: 7, Valid: true}))
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(errs.Wrap(pgx.ErrNoRows, "lookup")))
	assert.False(t, pgconv.IsNoRows(errs.New("other")))

	exclusion := &pgconn.PgError{Code: pgconv.CodeExclusionViolation}
	assert.Equal(t, pgconv.CodeExclusionViolation, pgconv.PgErrorCode(errs.Wrap(exclusion, "insert booking")))
	assert.Empty(t, pgconv.PgErrorCode(errs.New("plain")))
}
