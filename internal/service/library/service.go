// Package library implements the read surface over the index (vocabulary
// listings, totals, reverse lookups) and book removal.
package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lexread/lexread-backend/internal/domain"
	"github.com/lexread/lexread-backend/pkg/metrics"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type bookRepo interface {
	GetByID(ctx context.Context, id int64) (domain.Book, error)
	DeleteChapters(ctx context.Context, bookID int64) error
	Delete(ctx context.Context, bookID int64) error
}

type tokenRepo interface {
	GetByID(ctx context.Context, id int64) (domain.Token, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Token, error)
}

type vocabRepo interface {
	ListByBook(ctx context.Context, bookID int64, f domain.VocabFilter) ([]domain.VocabEntry, error)
	BooksContaining(ctx context.Context, tokenID int64) ([]domain.TokenBookCount, error)
	DeleteByBook(ctx context.Context, bookID int64) error
}

type totalsRepo interface {
	Get(ctx context.Context, bookID int64) (domain.BookTotals, error)
	Delete(ctx context.Context, bookID int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// VocabWord is one row of a book's vocabulary listing: the registry token
// together with its occurrence count in the book.
type VocabWord struct {
	Token domain.Token
	Count int
}

// Service implements library reads and book removal.
type Service struct {
	books  bookRepo
	tokens tokenRepo
	vocab  vocabRepo
	totals totalsRepo
	tx     txManager
	log    *slog.Logger
	m      *metrics.Metrics
}

// NewService creates a new Library service. m may be nil when metrics are
// not collected.
func NewService(
	log *slog.Logger,
	books bookRepo,
	tokens tokenRepo,
	vocab vocabRepo,
	totals totalsRepo,
	tx txManager,
	m *metrics.Metrics,
) *Service {
	return &Service{
		books:  books,
		tokens: tokens,
		vocab:  vocab,
		totals: totals,
		tx:     tx,
		log:    log,
		m:      m,
	}
}

// GetBookVocab returns a book's vocabulary, highest occurrence counts first,
// narrowed per the filter.
func (s *Service) GetBookVocab(ctx context.Context, bookID int64, f domain.VocabFilter) ([]VocabWord, error) {
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		return nil, fmt.Errorf("get vocab for book %d: %w", bookID, err)
	}

	entries, err := s.vocab.ListByBook(ctx, bookID, f)
	if err != nil {
		return nil, fmt.Errorf("get vocab for book %d: %w", bookID, err)
	}
	if len(entries) == 0 {
		return []VocabWord{}, nil
	}

	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.TokenID
	}
	tokens, err := s.tokens.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get vocab for book %d: %w", bookID, err)
	}

	words := make([]VocabWord, 0, len(entries))
	for _, e := range entries {
		token, ok := tokens[e.TokenID]
		if !ok {
			// Index rows reference registry rows by FK; a miss here means the
			// two reads raced a reindex and the listing is already stale.
			return nil, fmt.Errorf("get vocab for book %d: token %d: %w", bookID, e.TokenID, domain.ErrConflict)
		}
		words = append(words, VocabWord{Token: token, Count: e.Count})
	}
	return words, nil
}

// GetTotals returns a book's aggregate counts. A book that was never
// indexed has no totals row and reports zeros.
func (s *Service) GetTotals(ctx context.Context, bookID int64) (domain.BookTotals, error) {
	if _, err := s.books.GetByID(ctx, bookID); err != nil {
		return domain.BookTotals{}, fmt.Errorf("get totals for book %d: %w", bookID, err)
	}

	t, err := s.totals.Get(ctx, bookID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.BookTotals{BookID: bookID}, nil
	}
	if err != nil {
		return domain.BookTotals{}, fmt.Errorf("get totals for book %d: %w", bookID, err)
	}
	return t, nil
}

// BooksContaining returns the books a token occurs in, most occurrences
// first.
func (s *Service) BooksContaining(ctx context.Context, tokenID int64) ([]domain.TokenBookCount, error) {
	if _, err := s.tokens.GetByID(ctx, tokenID); err != nil {
		return nil, fmt.Errorf("reverse lookup for token %d: %w", tokenID, err)
	}

	out, err := s.vocab.BooksContaining(ctx, tokenID)
	if err != nil {
		return nil, fmt.Errorf("reverse lookup for token %d: %w", tokenID, err)
	}
	return out, nil
}

// DeleteBook removes a book together with its chapters, index rows and
// totals in one transaction. Tokens stay in the registry — they are shared
// across books — and learning progress survives the book it was first
// encountered in.
func (s *Service) DeleteBook(ctx context.Context, bookID int64) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Dependent rows go first; the book row carries the FK targets.
		if err := s.vocab.DeleteByBook(ctx, bookID); err != nil {
			return err
		}
		if err := s.totals.Delete(ctx, bookID); err != nil {
			return err
		}
		if err := s.books.DeleteChapters(ctx, bookID); err != nil {
			return err
		}
		return s.books.Delete(ctx, bookID)
	})
	if err != nil {
		return fmt.Errorf("delete book %d: %w", bookID, err)
	}

	if s.m != nil {
		s.m.BooksDeletedTotal.Inc()
	}
	s.log.Info("book deleted", slog.Int64("book_id", bookID))
	return nil
}
