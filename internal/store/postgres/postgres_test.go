package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/klimatr26/booking-hub/internal/store"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"
)

type widget struct {
	ID    string `json:"id"`
	Color string `json:"color"`
}

func (w widget) Key() string { return w.ID }

func (w widget) WithKey(id string) widget {
	w.ID = id
	return w
}

// sqlDB adapts a plain *sql.DB to the retrying interface; retries are not exercised here.
type sqlDB struct{ *sql.DB }

func (d sqlDB) ExecWithRetry(ctx context.Context, _ retry.Strategy, query string, args ...interface{}) (sql.Result, error) {
	return d.ExecContext(ctx, query, args...)
}

func (d sqlDB) QueryWithRetry(ctx context.Context, _ retry.Strategy, query string, args ...interface{}) (*sql.Rows, error) {
	return d.QueryContext(ctx, query, args...)
}

func (d sqlDB) QueryRowWithRetry(ctx context.Context, _ retry.Strategy, query string, args ...interface{}) (*sql.Row, error) {
	return d.QueryRowContext(ctx, query, args...), nil
}

func newMockStore(t *testing.T) (*Store[widget], sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		db.Close()
	})
	return New[widget](sqlDB{db}, "widgets"), mock
}

func TestStore_FindByID(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT body FROM documents")).
		WithArgs("widgets", "w1").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow([]byte(`{"id":"w1","color":"red"}`)))

	w, err := s.FindByID(context.Background(), "w1")

	require.NoError(t, err)
	assert.Equal(t, widget{ID: "w1", Color: "red"}, w)
}

func TestStore_FindByID_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT body FROM documents")).
		WithArgs("widgets", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"body"}))

	_, err := s.FindByID(context.Background(), "missing")

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_Create_AssignsID(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO documents")).
		WithArgs("widgets", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w, err := s.Create(context.Background(), widget{Color: "red"})

	require.NoError(t, err)
	assert.NotEmpty(t, w.ID)
}

func TestStore_Create_Duplicate(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO documents")).
		WithArgs("widgets", "w1", `{"id":"w1","color":"red"}`).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := s.Create(context.Background(), widget{ID: "w1", Color: "red"})

	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestStore_Update(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs("widgets", "w1").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow([]byte(`{"id":"w1","color":"red"}`)))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE documents")).
		WithArgs("widgets", "w1", `{"id":"w1","color":"blue"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w, err := s.Update(context.Background(), "w1", func(w *widget) error {
		w.ID = "other"
		w.Color = "blue"
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, widget{ID: "w1", Color: "blue"}, w)
}

func TestStore_Update_MutateErrorRollsBack(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs("widgets", "w1").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow([]byte(`{"id":"w1","color":"red"}`)))
	mock.ExpectRollback()

	boom := errors.New("boom")
	_, err := s.Update(context.Background(), "w1", func(*widget) error { return boom })

	assert.ErrorIs(t, err, boom)
}

func TestStore_Update_NotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs("widgets", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"body"}))
	mock.ExpectRollback()

	_, err := s.Update(context.Background(), "missing", func(*widget) error { return nil })

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_Delete(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM documents")).
		WithArgs("widgets", "w1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM documents")).
		WithArgs("widgets", "w1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := s.Delete(context.Background(), "w1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Delete(context.Background(), "w1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_FindByField(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("body -> $2 = $3::jsonb")).
		WithArgs("widgets", "color", `"red"`).
		WillReturnRows(sqlmock.NewRows([]string{"body"}).
			AddRow([]byte(`{"id":"w1","color":"red"}`)).
			AddRow([]byte(`{"id":"w3","color":"red"}`)))

	res, err := s.FindByField(context.Background(), "color", "red")

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "w1", res[0].ID)
	assert.Equal(t, "w3", res[1].ID)
}

func TestStore_FindAll(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at, id")).
		WithArgs("widgets").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow([]byte(`{"id":"w1","color":"red"}`)))

	res, err := s.FindAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, res, 1)
}
