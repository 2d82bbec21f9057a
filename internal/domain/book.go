package domain

import "time"

// Language is a supported reading language.
type Language struct {
	ID   int64
	Code string
	Name string
}

// Book holds the metadata of one book in the library.
type Book struct {
	ID                   int64
	LanguageID           int64
	LanguageCode         string
	Title                string
	Source               *string
	IsArchived           bool
	LastVisitedChapter   *int
	LastVisitedWordIndex *int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Chapter is one chapter of a book, stored as raw text.
// WordCount is the number of WORD-kind tokens the normalizer produced for
// Content; phrases are counted separately and never as their component words.
type Chapter struct {
	ID        int64
	BookID    int64
	Number    int
	Content   string
	WordCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VocabEntry is one row of the inverted index: a token occurring in a book
// with its occurrence count. Count is always >= 1.
type VocabEntry struct {
	BookID  int64
	TokenID int64
	Count   int
}

// VocabFilter narrows and orders a book's vocabulary listing.
type VocabFilter struct {
	// Kind keeps only tokens of the given kind.
	Kind *TokenKind
	// MinCount keeps only entries occurring at least MinCount times.
	MinCount int
	// Limit caps the result set; 0 means no cap.
	Limit uint64
}

// TokenBookCount is one reverse-lookup row: a book containing a token,
// with the token's occurrence count in that book.
type TokenBookCount struct {
	BookID int64
	Count  int
}

// BookTotals is the derived per-book aggregate cache. It is always kept
// consistent with the book's current VocabEntry set and never mutated
// independently of a reindex.
type BookTotals struct {
	BookID      int64
	TotalTokens int64
	TotalTypes  int64
}
