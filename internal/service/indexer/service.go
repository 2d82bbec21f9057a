// Package indexer implements index reconciliation: turning a book's current
// chapter text into its inverted-index rows and derived totals.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lexread/lexread-backend/internal/domain"
	"github.com/lexread/lexread-backend/internal/normalizer"
	"github.com/lexread/lexread-backend/pkg/metrics"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type bookRepo interface {
	GetByID(ctx context.Context, id int64) (domain.Book, error)
	ListChapters(ctx context.Context, bookID int64) ([]domain.Chapter, error)
	SetChapterWordCount(ctx context.Context, chapterID int64, wordCount int) error
	LockForReindex(ctx context.Context, bookID int64) error
}

type tokenRepo interface {
	Resolve(ctx context.Context, languageID int64, norm string, kind domain.TokenKind) (domain.Token, error)
}

type vocabRepo interface {
	GetByBook(ctx context.Context, bookID int64) (map[int64]domain.VocabEntry, error)
	InsertEntries(ctx context.Context, entries []domain.VocabEntry) error
	UpdateCounts(ctx context.Context, entries []domain.VocabEntry) error
	DeleteTokens(ctx context.Context, bookID int64, tokenIDs []int64) error
}

type totalsRepo interface {
	Recompute(ctx context.Context, bookID int64) (domain.BookTotals, error)
}

type chapterNormalizer interface {
	Normalize(langCode, text string) ([]normalizer.Token, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service reconciles a book's inverted index with its chapter text.
type Service struct {
	books  bookRepo
	tokens tokenRepo
	vocab  vocabRepo
	totals totalsRepo
	norm   chapterNormalizer
	tx     txManager
	log    *slog.Logger
	m      *metrics.Metrics

	// conflictRetries bounds re-runs of a reconciliation transaction that
	// lost a serialization or deadlock conflict.
	conflictRetries int

	locks *keyedMutex
}

// NewService creates a new Indexer service. m may be nil when metrics are
// not collected (tests, one-shot commands).
func NewService(
	log *slog.Logger,
	books bookRepo,
	tokens tokenRepo,
	vocab vocabRepo,
	totals totalsRepo,
	norm chapterNormalizer,
	tx txManager,
	m *metrics.Metrics,
	conflictRetries int,
) *Service {
	if conflictRetries < 1 {
		conflictRetries = 1
	}
	return &Service{
		books:           books,
		tokens:          tokens,
		vocab:           vocab,
		totals:          totals,
		norm:            norm,
		tx:              tx,
		log:             log,
		m:               m,
		conflictRetries: conflictRetries,
		locks:           newKeyedMutex(),
	}
}

// Reindex rebuilds the inverted index of one book from its current chapters
// and returns the recomputed totals.
//
// The whole reconciliation runs in a single transaction under the per-book
// advisory lock, so readers never observe a half-updated index and two
// writers never interleave on one book. Re-running on unchanged text writes
// the same final state (the operation is idempotent).
func (s *Service) Reindex(ctx context.Context, bookID int64) (domain.BookTotals, error) {
	// In-process serialization first: concurrent calls for the same book
	// queue here instead of piling up on the database lock.
	unlock := s.locks.lock(bookID)
	defer unlock()

	start := time.Now()

	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		s.observe("error", start)
		return domain.BookTotals{}, fmt.Errorf("reindex book %d: %w", bookID, err)
	}

	var totals domain.BookTotals
	for attempt := 1; ; attempt++ {
		err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
			var txErr error
			totals, txErr = s.reconcile(ctx, book)
			return txErr
		})
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrConflict) && attempt < s.conflictRetries {
			s.log.Warn("reindex transaction lost a conflict, retrying",
				slog.Int64("book_id", bookID),
				slog.Int("attempt", attempt),
			)
			if s.m != nil {
				s.m.ReindexTotal.WithLabelValues("conflict").Inc()
			}
			continue
		}
		s.observe("error", start)
		return domain.BookTotals{}, fmt.Errorf("reindex book %d: %w", bookID, err)
	}

	s.observe("success", start)
	s.log.Info("book reindexed",
		slog.Int64("book_id", bookID),
		slog.Int64("total_tokens", totals.TotalTokens),
		slog.Int64("total_types", totals.TotalTypes),
		slog.Duration("took", time.Since(start)),
	)
	return totals, nil
}

// reconcile runs inside the reindex transaction.
func (s *Service) reconcile(ctx context.Context, book domain.Book) (domain.BookTotals, error) {
	if err := s.books.LockForReindex(ctx, book.ID); err != nil {
		return domain.BookTotals{}, err
	}

	// Chapters are read inside the transaction so the index reflects exactly
	// the text visible at commit time.
	chapters, err := s.books.ListChapters(ctx, book.ID)
	if err != nil {
		return domain.BookTotals{}, err
	}

	// Normalize every chapter before touching any row: a single malformed
	// chapter aborts the whole run and leaves the previous index intact.
	counts, chapterWords, err := s.tally(book.LanguageCode, chapters)
	if err != nil {
		return domain.BookTotals{}, err
	}

	wanted, err := s.resolveTokens(ctx, book.LanguageID, counts)
	if err != nil {
		return domain.BookTotals{}, err
	}

	current, err := s.vocab.GetByBook(ctx, book.ID)
	if err != nil {
		return domain.BookTotals{}, err
	}

	inserts, updates, stale := diffIndex(book.ID, wanted, current)

	if err := s.vocab.InsertEntries(ctx, inserts); err != nil {
		return domain.BookTotals{}, err
	}
	if err := s.vocab.UpdateCounts(ctx, updates); err != nil {
		return domain.BookTotals{}, err
	}
	if err := s.vocab.DeleteTokens(ctx, book.ID, stale); err != nil {
		return domain.BookTotals{}, err
	}
	if s.m != nil {
		s.m.IndexRowsWritten.WithLabelValues("insert").Add(float64(len(inserts)))
		s.m.IndexRowsWritten.WithLabelValues("update").Add(float64(len(updates)))
		s.m.IndexRowsWritten.WithLabelValues("delete").Add(float64(len(stale)))
	}

	for i, c := range chapters {
		if c.WordCount == chapterWords[i] {
			continue
		}
		if err := s.books.SetChapterWordCount(ctx, c.ID, chapterWords[i]); err != nil {
			return domain.BookTotals{}, err
		}
	}

	// Totals derive from the rows just written, in the same transaction.
	return s.totals.Recompute(ctx, book.ID)
}

// tally normalizes every chapter and accumulates occurrence counts across
// the whole book. The second result holds each chapter's word count, aligned
// with the chapters slice.
func (s *Service) tally(langCode string, chapters []domain.Chapter) (map[tokenKey]int, []int, error) {
	counts := make(map[tokenKey]int)
	chapterWords := make([]int, len(chapters))

	for i, c := range chapters {
		tokens, err := s.norm.Normalize(langCode, c.Content)
		if err != nil {
			return nil, nil, fmt.Errorf("chapter %d: %w", c.Number, err)
		}
		for _, t := range tokens {
			counts[tokenKey{norm: t.Surface, kind: t.Kind}]++
		}
		chapterWords[i] = normalizer.WordCount(tokens)
	}

	return counts, chapterWords, nil
}

// resolveTokens maps every distinct norm to its registry id, creating absent
// tokens. Resolution runs in sorted norm order so concurrent reindexes of
// different books acquire token rows in a consistent order.
func (s *Service) resolveTokens(ctx context.Context, languageID int64, counts map[tokenKey]int) (map[int64]int, error) {
	out := make(map[int64]int, len(counts))
	for _, key := range sortedKeys(counts) {
		token, err := s.tokens.Resolve(ctx, languageID, key.norm, key.kind)
		if err != nil {
			return nil, fmt.Errorf("resolve token %q: %w", key.norm, err)
		}
		out[token.ID] = counts[key]
	}
	return out, nil
}

func (s *Service) observe(result string, start time.Time) {
	if s.m == nil {
		return
	}
	s.m.ReindexTotal.WithLabelValues(result).Inc()
	if result == "success" {
		s.m.ReindexDuration.Observe(time.Since(start).Seconds())
	}
}
