package repository

import (
	"context"
	"errors"
	"testing"

	"jobmatch/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDB captures the last statement and answers with canned results.
type recordingDB struct {
	query string
	args  []any

	rowErr error
}

func (d *recordingDB) Ping(context.Context) error { return nil }
func (d *recordingDB) Close() error               { return nil }

func (d *recordingDB) Exec(_ context.Context, q string, args ...any) (int64, error) {
	d.query, d.args = q, args
	return 0, nil
}

func (d *recordingDB) Query(_ context.Context, q string, args ...any) (database.Rows, error) {
	d.query, d.args = q, args
	return &emptyRows{}, nil
}

func (d *recordingDB) QueryRow(_ context.Context, q string, args ...any) database.Row {
	d.query, d.args = q, args
	return errRow{err: d.rowErr}
}

func (d *recordingDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("not supported")
}

type emptyRows struct{ closed bool }

func (r *emptyRows) Close()            { r.closed = true }
func (r *emptyRows) Next() bool        { return false }
func (r *emptyRows) Scan(...any) error { return nil }
func (r *emptyRows) Err() error        { return nil }

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }

func TestUUIDStrings_NeverNil(t *testing.T) {
	out := uuidStrings(nil)
	require.NotNil(t, out)
	assert.Empty(t, out)

	id := uuid.New()
	assert.Equal(t, []string{id.String()}, uuidStrings([]uuid.UUID{id}))
}

func TestListActiveExcluding_PassesEmptyArray(t *testing.T) {
	db := &recordingDB{}
	jobs, err := NewPostgresJobRepository(db).ListActiveExcluding(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)

	require.Len(t, db.args, 1)
	assert.Equal(t, []string{}, db.args[0])
	assert.Contains(t, db.query, "is_active = true")
}

func TestListSeekersExcluding_FiltersSeekers(t *testing.T) {
	db := &recordingDB{}
	excluded := []uuid.UUID{uuid.New(), uuid.New()}

	_, err := NewPostgresProfileRepository(db).ListSeekersExcluding(context.Background(), excluded)
	require.NoError(t, err)

	require.Len(t, db.args, 2)
	assert.Equal(t, "seeker", db.args[0])
	assert.Equal(t, uuidStrings(excluded), db.args[1])
}

func TestGetByID_NotFound(t *testing.T) {
	db := &recordingDB{rowErr: pgx.ErrNoRows}

	_, err := NewPostgresJobRepository(db).GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = NewPostgresJobRepository(db).LatestActiveByEmployer(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = NewPostgresProfileRepository(db).GetByUserID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetByID_WrapsStoreErrors(t *testing.T) {
	cause := errors.New("conn reset")
	db := &recordingDB{rowErr: cause}

	_, err := NewPostgresJobRepository(db).GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrJobNotFound)
}
