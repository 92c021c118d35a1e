// Package postgres stores entities as JSONB documents in a single table.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/klimatr26/booking-hub/internal/store"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

// DB is the subset of *dbpg.DB the store needs.
type DB interface {
	ExecWithRetry(ctx context.Context, strategy retry.Strategy, query string, args ...interface{}) (sql.Result, error)
	QueryWithRetry(ctx context.Context, strategy retry.Strategy, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowWithRetry(ctx context.Context, strategy retry.Strategy, query string, args ...interface{}) (*sql.Row, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

const uniqueViolation = "23505"

type Store[T store.Keyed[T]] struct {
	db         DB
	collection string
	strategy   retry.Strategy
}

func New[T store.Keyed[T]](db DB, collection string) *Store[T] {
	return &Store[T]{
		db:         db,
		collection: collection,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (s *Store[T]) FindAll(ctx context.Context) ([]T, error) {
	query := `SELECT body FROM documents
			  WHERE collection = $1
			  ORDER BY created_at, id`

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query, s.collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.collection, err)
	}
	defer rows.Close()

	return s.scanAll(rows)
}

func (s *Store[T]) FindByID(ctx context.Context, id string) (T, error) {
	var zero T
	query := `SELECT body FROM documents
			  WHERE collection = $1 AND id = $2`

	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query, s.collection, id)
	if err != nil {
		return zero, fmt.Errorf("get %s: %w", s.collection, err)
	}

	var body []byte
	if err = row.Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, store.ErrNotFound
		}
		return zero, fmt.Errorf("scan %s: %w", s.collection, err)
	}
	return decode[T](body)
}

func (s *Store[T]) Create(ctx context.Context, entity T) (T, error) {
	var zero T
	if entity.Key() == "" {
		entity = entity.WithKey(uuid.New().String())
	}

	body, err := json.Marshal(entity)
	if err != nil {
		return zero, fmt.Errorf("encode %s: %w", s.collection, err)
	}

	query := `INSERT INTO documents (collection, id, body, created_at, updated_at)
			  VALUES ($1, $2, $3::jsonb, now(), now())`
	if _, err = s.db.ExecWithRetry(ctx, s.strategy, query, s.collection, entity.Key(), string(body)); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return zero, fmt.Errorf("%w: %s", store.ErrAlreadyExists, entity.Key())
		}
		return zero, fmt.Errorf("insert %s: %w", s.collection, err)
	}
	return entity, nil
}

func (s *Store[T]) Update(ctx context.Context, id string, mutate func(*T) error) (T, error) {
	var zero T
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Row lock keeps concurrent mutations of the same key serialized.
	lockQuery := `SELECT body FROM documents
				  WHERE collection = $1 AND id = $2
				  FOR UPDATE`
	var body []byte
	if err = tx.QueryRowContext(ctx, lockQuery, s.collection, id).Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, store.ErrNotFound
		}
		return zero, fmt.Errorf("lock %s: %w", s.collection, err)
	}

	current, err := decode[T](body)
	if err != nil {
		return zero, err
	}
	if err = mutate(&current); err != nil {
		return zero, err
	}
	current = current.WithKey(id)

	updated, err := json.Marshal(current)
	if err != nil {
		return zero, fmt.Errorf("encode %s: %w", s.collection, err)
	}

	updateQuery := `UPDATE documents
					SET body = $3::jsonb, updated_at = now()
					WHERE collection = $1 AND id = $2`
	if _, err = tx.ExecContext(ctx, updateQuery, s.collection, id, string(updated)); err != nil {
		return zero, fmt.Errorf("update %s: %w", s.collection, err)
	}

	if err = tx.Commit(); err != nil {
		return zero, fmt.Errorf("commit: %w", err)
	}
	return current, nil
}

func (s *Store[T]) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`

	res, err := s.db.ExecWithRetry(ctx, s.strategy, query, s.collection, id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", s.collection, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s rows affected: %w", s.collection, err)
	}
	return n > 0, nil
}

func (s *Store[T]) FindByField(ctx context.Context, field string, value any) ([]T, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if value == nil {
		query := `SELECT body FROM documents
				  WHERE collection = $1 AND (body -> $2 IS NULL OR body -> $2 = 'null'::jsonb)
				  ORDER BY created_at, id`
		rows, err = s.db.QueryWithRetry(ctx, s.strategy, query, s.collection, field)
	} else {
		want, encErr := json.Marshal(value)
		if encErr != nil {
			return nil, fmt.Errorf("encode %s value: %w", field, encErr)
		}
		query := `SELECT body FROM documents
				  WHERE collection = $1 AND body -> $2 = $3::jsonb
				  ORDER BY created_at, id`
		rows, err = s.db.QueryWithRetry(ctx, s.strategy, query, s.collection, field, string(want))
	}
	if err != nil {
		return nil, fmt.Errorf("find %s by %s: %w", s.collection, field, err)
	}
	defer rows.Close()

	return s.scanAll(rows)
}

func (s *Store[T]) scanAll(rows *sql.Rows) ([]T, error) {
	var res []T
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.collection, err)
		}
		item, err := decode[T](body)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, rows.Err()
}

func decode[T any](body []byte) (T, error) {
	var item T
	if err := json.Unmarshal(body, &item); err != nil {
		return item, fmt.Errorf("decode document: %w", err)
	}
	return item, nil
}
