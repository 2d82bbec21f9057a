package testhelper

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lexread/lexread-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	var b [4]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// LanguageID returns the id of a seeded language by code.
func LanguageID(t *testing.T, pool *pgxpool.Pool, code string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(),
		`SELECT id FROM languages WHERE code = $1`, code).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: LanguageID(%s): %v", code, err)
	}
	return id
}

// SeedBook creates a book in the given language with the chapters' contents
// supplied in reading order. Returns the filled domain.Book.
func SeedBook(t *testing.T, pool *pgxpool.Pool, langCode string, chapters ...string) domain.Book {
	t.Helper()
	ctx := context.Background()

	langID := LanguageID(t, pool, langCode)

	book := domain.Book{
		LanguageID:   langID,
		LanguageCode: langCode,
		Title:        "Test Book " + UniqueSuffix(),
	}
	err := pool.QueryRow(ctx,
		`INSERT INTO books (language_id, title) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		book.LanguageID, book.Title,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedBook insert book: %v", err)
	}

	for i, content := range chapters {
		_, err := pool.Exec(ctx,
			`INSERT INTO chapters (book_id, chapter_number, content) VALUES ($1, $2, $3)`,
			book.ID, i+1, content,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedBook insert chapter %d: %v", i+1, err)
		}
	}

	return book
}

// SeedToken creates a token with a unique norm in the given language.
func SeedToken(t *testing.T, pool *pgxpool.Pool, langCode string, kind domain.TokenKind) domain.Token {
	t.Helper()

	token := domain.Token{
		LanguageID: LanguageID(t, pool, langCode),
		Norm:       "tok-" + UniqueSuffix(),
		Kind:       kind,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO tokens (language_id, norm, kind) VALUES ($1, $2, $3) RETURNING id`,
		token.LanguageID, token.Norm, int16(token.Kind),
	).Scan(&token.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedToken: %v", err)
	}
	return token
}

// SeedVocabEntry creates one inverted-index row.
func SeedVocabEntry(t *testing.T, pool *pgxpool.Pool, bookID, tokenID int64, count int) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO book_vocab (book_id, token_id, token_count) VALUES ($1, $2, $3)`,
		bookID, tokenID, count,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVocabEntry: %v", err)
	}
}
