// Package vocab implements the inverted-index (book_vocab) repository using
// PostgreSQL. Rows are written only by the index reconciliation for a book;
// reads serve the vocabulary surface and reverse lookups.
package vocab

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lexread/lexread-backend/internal/adapter/postgres"
	"github.com/lexread/lexread-backend/internal/domain"
)

const (
	selectByBookSQL = `
SELECT book_id, token_id, token_count
FROM book_vocab
WHERE book_id = $1`

	insertSQL = `
INSERT INTO book_vocab (book_id, token_id, token_count)
VALUES ($1, $2, $3)`

	updateCountSQL = `
UPDATE book_vocab
SET token_count = $3
WHERE book_id = $1 AND token_id = $2`

	deleteTokensSQL = `
DELETE FROM book_vocab
WHERE book_id = $1 AND token_id = ANY($2::bigint[])`

	deleteByBookSQL = `
DELETE FROM book_vocab
WHERE book_id = $1`
)

// Repo provides book_vocab persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// New creates a new vocab repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetByBook returns every index row of a book, keyed by token id.
func (r *Repo) GetByBook(ctx context.Context, bookID int64) (map[int64]domain.VocabEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, selectByBookSQL, bookID)
	if err != nil {
		return nil, postgres.MapError(err, "book_vocab", bookID)
	}
	defer rows.Close()

	out := make(map[int64]domain.VocabEntry)
	for rows.Next() {
		var e domain.VocabEntry
		if err := rows.Scan(&e.BookID, &e.TokenID, &e.Count); err != nil {
			return nil, postgres.MapError(err, "book_vocab", bookID)
		}
		out[e.TokenID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "book_vocab", bookID)
	}
	return out, nil
}

// InsertEntries adds new index rows using pgx.Batch. The caller guarantees
// the rows are absent; a duplicate surfaces as ErrAlreadyExists.
func (r *Repo) InsertEntries(ctx context.Context, entries []domain.VocabEntry) error {
	if len(entries) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(insertSQL, e.BookID, e.TokenID, e.Count)
	}
	return r.sendBatchExec(ctx, batch)
}

// UpdateCounts rewrites the counts of existing index rows using pgx.Batch.
func (r *Repo) UpdateCounts(ctx context.Context, entries []domain.VocabEntry) error {
	if len(entries) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(updateCountSQL, e.BookID, e.TokenID, e.Count)
	}
	return r.sendBatchExec(ctx, batch)
}

// DeleteTokens removes the given tokens from a book's index.
func (r *Repo) DeleteTokens(ctx context.Context, bookID int64, tokenIDs []int64) error {
	if len(tokenIDs) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, deleteTokensSQL, bookID, tokenIDs); err != nil {
		return postgres.MapError(err, "book_vocab", bookID)
	}
	return nil
}

// DeleteByBook removes a book's entire index (book deletion cascade).
func (r *Repo) DeleteByBook(ctx context.Context, bookID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, deleteByBookSQL, bookID); err != nil {
		return postgres.MapError(err, "book_vocab", bookID)
	}
	return nil
}

// BooksContaining returns the books a token occurs in, most occurrences
// first. Served entirely from the (token_id, book_id, token_count) index.
func (r *Repo) BooksContaining(ctx context.Context, tokenID int64) ([]domain.TokenBookCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := r.sb.
		Select("book_id", "token_count").
		From("book_vocab").
		Where(sq.Eq{"token_id": tokenID}).
		OrderBy("token_count DESC", "book_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build reverse lookup query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "token", tokenID)
	}
	defer rows.Close()

	var out []domain.TokenBookCount
	for rows.Next() {
		var bc domain.TokenBookCount
		if err := rows.Scan(&bc.BookID, &bc.Count); err != nil {
			return nil, postgres.MapError(err, "token", tokenID)
		}
		out = append(out, bc)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "token", tokenID)
	}
	return out, nil
}

// ListByBook returns a book's vocabulary, highest counts first, filtered
// per f. Kind filtering joins against the token registry.
func (r *Repo) ListByBook(ctx context.Context, bookID int64, f domain.VocabFilter) ([]domain.VocabEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := r.sb.
		Select("bv.book_id", "bv.token_id", "bv.token_count").
		From("book_vocab bv").
		Where(sq.Eq{"bv.book_id": bookID}).
		OrderBy("bv.token_count DESC", "bv.token_id ASC")

	if f.Kind != nil {
		builder = builder.
			Join("tokens t ON t.id = bv.token_id").
			Where(sq.Eq{"t.kind": int16(*f.Kind)})
	}
	if f.MinCount > 0 {
		builder = builder.Where(sq.GtOrEq{"bv.token_count": f.MinCount})
	}
	if f.Limit > 0 {
		builder = builder.Limit(f.Limit)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vocab listing query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "book_vocab", bookID)
	}
	defer rows.Close()

	var out []domain.VocabEntry
	for rows.Next() {
		var e domain.VocabEntry
		if err := rows.Scan(&e.BookID, &e.TokenID, &e.Count); err != nil {
			return nil, postgres.MapError(err, "book_vocab", bookID)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "book_vocab", bookID)
	}
	return out, nil
}

func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range batch.Len() {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "book_vocab", 0)
		}
	}
	return nil
}
