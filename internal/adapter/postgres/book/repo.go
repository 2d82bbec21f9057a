// Package book implements the Book/Chapter repository using PostgreSQL.
//
// Chapters are supplied to the indexer as already-persisted text; this repo
// is the read side plus the explicit deletion cascade for a book.
package book

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lexread/lexread-backend/internal/adapter/postgres"
	"github.com/lexread/lexread-backend/internal/domain"
)

const (
	selectBookSQL = `
SELECT b.id, b.language_id, l.code, b.title, b.source, b.is_archived,
       b.last_visited_chapter, b.last_visited_word_index, b.created_at, b.updated_at
FROM books b
JOIN languages l ON l.id = b.language_id
WHERE b.id = $1`

	listBookIDsSQL = `
SELECT id FROM books ORDER BY id`

	insertBookSQL = `
INSERT INTO books (language_id, title, source)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at`

	listChaptersSQL = `
SELECT id, book_id, chapter_number, content, word_count, created_at, updated_at
FROM chapters
WHERE book_id = $1
ORDER BY chapter_number`

	insertChapterSQL = `
INSERT INTO chapters (book_id, chapter_number, content)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at`

	updateChapterContentSQL = `
UPDATE chapters
SET content = $3, updated_at = now()
WHERE book_id = $1 AND chapter_number = $2`

	setChapterWordCountSQL = `
UPDATE chapters
SET word_count = $2, updated_at = now()
WHERE id = $1`

	deleteChaptersSQL = `
DELETE FROM chapters WHERE book_id = $1`

	deleteBookSQL = `
DELETE FROM books WHERE id = $1`

	advisoryLockSQL = `
SELECT pg_advisory_xact_lock($1)`
)

// Repo provides book and chapter persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new book repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a book with its language code resolved.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Book, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var b domain.Book
	err := q.QueryRow(ctx, selectBookSQL, id).Scan(
		&b.ID, &b.LanguageID, &b.LanguageCode, &b.Title, &b.Source, &b.IsArchived,
		&b.LastVisitedChapter, &b.LastVisitedWordIndex, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return domain.Book{}, postgres.MapError(err, "book", id)
	}
	return b, nil
}

// ListIDs returns every book id, ascending.
func (r *Repo) ListIDs(ctx context.Context) ([]int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listBookIDsSQL)
	if err != nil {
		return nil, postgres.MapError(err, "book", 0)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, postgres.MapError(err, "book", 0)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "book", 0)
	}
	return ids, nil
}

// Create inserts a book.
func (r *Repo) Create(ctx context.Context, b domain.Book) (domain.Book, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx, insertBookSQL, b.LanguageID, b.Title, b.Source).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return domain.Book{}, postgres.MapError(err, "book", 0)
	}
	return b, nil
}

// ListChapters returns a book's chapters in reading order.
func (r *Repo) ListChapters(ctx context.Context, bookID int64) ([]domain.Chapter, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listChaptersSQL, bookID)
	if err != nil {
		return nil, postgres.MapError(err, "chapter", bookID)
	}
	defer rows.Close()

	var chapters []domain.Chapter
	for rows.Next() {
		var c domain.Chapter
		if err := rows.Scan(&c.ID, &c.BookID, &c.Number, &c.Content, &c.WordCount, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, postgres.MapError(err, "chapter", bookID)
		}
		chapters = append(chapters, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "chapter", bookID)
	}
	return chapters, nil
}

// AddChapter inserts a chapter.
func (r *Repo) AddChapter(ctx context.Context, c domain.Chapter) (domain.Chapter, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := q.QueryRow(ctx, insertChapterSQL, c.BookID, c.Number, c.Content).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Chapter{}, postgres.MapError(err, "chapter", c.BookID)
	}
	return c, nil
}

// UpdateChapterContent replaces the text of one chapter.
func (r *Repo) UpdateChapterContent(ctx context.Context, bookID int64, number int, content string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateChapterContentSQL, bookID, number, content)
	if err != nil {
		return postgres.MapError(err, "chapter", bookID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("chapter %d of book %d: %w", number, bookID, domain.ErrNotFound)
	}
	return nil
}

// SetChapterWordCount stores the normalizer-derived word count of a chapter.
func (r *Repo) SetChapterWordCount(ctx context.Context, chapterID int64, wordCount int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, setChapterWordCountSQL, chapterID, wordCount); err != nil {
		return postgres.MapError(err, "chapter", chapterID)
	}
	return nil
}

// DeleteChapters removes all chapters of a book (book deletion cascade).
func (r *Repo) DeleteChapters(ctx context.Context, bookID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, deleteChaptersSQL, bookID); err != nil {
		return postgres.MapError(err, "chapter", bookID)
	}
	return nil
}

// Delete removes the book row itself. Dependent rows (chapters, book_vocab,
// book_totals) must already be gone; the FK violation otherwise maps to an
// error rather than silently cascading.
func (r *Repo) Delete(ctx context.Context, bookID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteBookSQL, bookID)
	if err != nil {
		return postgres.MapError(err, "book", bookID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("book %d: %w", bookID, domain.ErrNotFound)
	}
	return nil
}

// LockForReindex takes the per-book advisory lock for the duration of the
// current transaction, serializing concurrent reindex attempts on one book
// across processes. Must be called inside a transaction.
func (r *Repo) LockForReindex(ctx context.Context, bookID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, advisoryLockSQL, bookID); err != nil {
		return postgres.MapError(err, "book", bookID)
	}
	return nil
}
