// Package totals implements the book_totals repository using PostgreSQL.
//
// book_totals is a derived cache over book_vocab. It is recomputed from the
// index inside the same transaction that modified it and is never mutated
// independently.
package totals

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lexread/lexread-backend/internal/adapter/postgres"
	"github.com/lexread/lexread-backend/internal/domain"
)

const (
	aggregateSQL = `
SELECT COALESCE(SUM(token_count), 0), COUNT(*)
FROM book_vocab
WHERE book_id = $1`

	selectSQL = `
SELECT book_id, total_tokens, total_types
FROM book_totals
WHERE book_id = $1`

	insertSQL = `
INSERT INTO book_totals (book_id, total_tokens, total_types)
VALUES ($1, $2, $3)
ON CONFLICT (book_id) DO NOTHING`

	updateSQL = `
UPDATE book_totals
SET total_tokens = $2, total_types = $3
WHERE book_id = $1`

	deleteSQL = `
DELETE FROM book_totals
WHERE book_id = $1`
)

// Repo provides book_totals persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new totals repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the cached totals of a book.
func (r *Repo) Get(ctx context.Context, bookID int64) (domain.BookTotals, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.BookTotals
	err := q.QueryRow(ctx, selectSQL, bookID).Scan(&t.BookID, &t.TotalTokens, &t.TotalTypes)
	if err != nil {
		return domain.BookTotals{}, postgres.MapError(err, "book_totals", bookID)
	}
	return t, nil
}

// Recompute aggregates the book's current index rows and merges the result
// into book_totals: read the current row, then insert or overwrite. The
// first insert uses DO NOTHING so a lost race leaves the transaction usable;
// the loser then overwrites, which is idempotent since both computed the
// totals from the same index rows.
func (r *Repo) Recompute(ctx context.Context, bookID int64) (domain.BookTotals, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t := domain.BookTotals{BookID: bookID}
	if err := q.QueryRow(ctx, aggregateSQL, bookID).Scan(&t.TotalTokens, &t.TotalTypes); err != nil {
		return domain.BookTotals{}, postgres.MapError(err, "book_totals", bookID)
	}

	var existing int64
	err := q.QueryRow(ctx, selectSQL, bookID).Scan(&existing, new(int64), new(int64))
	switch {
	case err == nil:
		if _, err := q.Exec(ctx, updateSQL, bookID, t.TotalTokens, t.TotalTypes); err != nil {
			return domain.BookTotals{}, postgres.MapError(err, "book_totals", bookID)
		}
	case errors.Is(err, pgx.ErrNoRows):
		tag, execErr := q.Exec(ctx, insertSQL, bookID, t.TotalTokens, t.TotalTypes)
		if execErr != nil {
			return domain.BookTotals{}, postgres.MapError(execErr, "book_totals", bookID)
		}
		if tag.RowsAffected() == 0 {
			// Lost the insert race; the winner's row is committed, overwrite it.
			if _, err := q.Exec(ctx, updateSQL, bookID, t.TotalTokens, t.TotalTypes); err != nil {
				return domain.BookTotals{}, postgres.MapError(err, "book_totals", bookID)
			}
		}
	default:
		return domain.BookTotals{}, postgres.MapError(err, "book_totals", bookID)
	}

	return t, nil
}

// Delete removes a book's totals row (book deletion cascade).
func (r *Repo) Delete(ctx context.Context, bookID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, deleteSQL, bookID); err != nil {
		return postgres.MapError(err, "book_totals", bookID)
	}
	return nil
}
