// Package progress implements the learning-progress business logic: the
// per-token acquisition state machine driven by learner actions.
package progress

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

type progressRepo interface {
	Get(ctx context.Context, tokenID int64) (domain.TokenProgress, error)
	GetForUpdate(ctx context.Context, tokenID int64) (domain.TokenProgress, error)
	Insert(ctx context.Context, p domain.TokenProgress) (domain.TokenProgress, error)
	Update(ctx context.Context, p domain.TokenProgress) (domain.TokenProgress, error)
	CountByStatus(ctx context.Context) (map[domain.LearningStatus]int, error)
}

type tokenRepo interface {
	GetByID(ctx context.Context, id int64) (domain.Token, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements learning-progress transitions.
type Service struct {
	progress progressRepo
	tokens   tokenRepo
	tx       txManager
	log      *slog.Logger
	m        *metrics.Metrics
}

// NewService creates a new Progress service. m may be nil when metrics are
// not collected.
func NewService(log *slog.Logger, progress progressRepo, tokens tokenRepo, tx txManager, m *metrics.Metrics) *Service {
	return &Service{
		progress: progress,
		tokens:   tokens,
		tx:       tx,
		log:      log,
		m:        m,
	}
}

// Get returns the progress row of a token. A token never acted upon has no
// row; that surfaces as ErrNotFound and means "unseen".
func (s *Service) Get(ctx context.Context, tokenID int64) (domain.TokenProgress, error) {
	p, err := s.progress.Get(ctx, tokenID)
	if err != nil {
		return domain.TokenProgress{}, fmt.Errorf("get progress for token %d: %w", tokenID, err)
	}
	return p, nil
}

// Apply runs one learner action against a token's progress and returns the
// resulting state.
//
// The first action on a token creates its row. The row starts at the
// first-exposure state (LEARNING, stage 1); ADVANCE as the first action
// yields exactly that state rather than stage 2 — the first sighting is the
// first exposure, not a review. Other actions transition from the
// first-exposure state as usual.
//
// The read-modify-write runs under a row lock in one transaction, so
// concurrent actions on the same token serialize and each transition starts
// from the latest committed state.
func (s *Service) Apply(ctx context.Context, tokenID int64, action domain.ProgressAction) (domain.TokenProgress, error) {
	if !action.IsValid() {
		s.count(action, "rejected")
		return domain.TokenProgress{}, domain.NewValidationError("action", "unknown progress action")
	}

	var result domain.TokenProgress
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// The registry row must exist; progress on unregistered ids would
		// never be reachable from any book.
		if _, err := s.tokens.GetByID(ctx, tokenID); err != nil {
			return err
		}

		current, err := s.progress.GetForUpdate(ctx, tokenID)
		switch {
		case err == nil:
			next, applyErr := current.Apply(action)
			if applyErr != nil {
				return applyErr
			}
			result, err = s.progress.Update(ctx, next)
			return err

		case errors.Is(err, domain.ErrNotFound):
			first := domain.NewTokenProgress(tokenID)
			if action != domain.ProgressActionAdvance {
				if first, err = first.Apply(action); err != nil {
					return err
				}
			}
			result, err = s.progress.Insert(ctx, first)
			if !errors.Is(err, domain.ErrAlreadyExists) {
				return err
			}
			// A concurrent first action created the row between our missed
			// lock and the insert. Lock the winner's row and transition from
			// its state; this is no longer the token's first exposure.
			if current, err = s.progress.GetForUpdate(ctx, tokenID); err != nil {
				return err
			}
			next, applyErr := current.Apply(action)
			if applyErr != nil {
				return applyErr
			}
			result, err = s.progress.Update(ctx, next)
			return err

		default:
			return err
		}
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrConstraint) {
			s.count(action, "rejected")
		} else {
			s.count(action, "error")
		}
		return domain.TokenProgress{}, fmt.Errorf("apply %s to token %d: %w", action, tokenID, err)
	}

	s.count(action, "ok")
	s.log.Info("progress transition applied",
		slog.Int64("token_id", tokenID),
		slog.String("action", action.String()),
		slog.String("status", result.Status.String()),
	)
	return result, nil
}

// SetTranslation stores the learner's translation note for a token, creating
// the progress row at the first-exposure state when absent. Passing nil
// clears the note.
func (s *Service) SetTranslation(ctx context.Context, tokenID int64, translation *string) (domain.TokenProgress, error) {
	var result domain.TokenProgress
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.tokens.GetByID(ctx, tokenID); err != nil {
			return err
		}

		current, err := s.progress.GetForUpdate(ctx, tokenID)
		switch {
		case err == nil:
			current.Translation = translation
			result, err = s.progress.Update(ctx, current)
			return err

		case errors.Is(err, domain.ErrNotFound):
			first := domain.NewTokenProgress(tokenID)
			first.Translation = translation
			result, err = s.progress.Insert(ctx, first)
			if !errors.Is(err, domain.ErrAlreadyExists) {
				return err
			}
			// Lost the creation race; set the note on the winner's row.
			if current, err = s.progress.GetForUpdate(ctx, tokenID); err != nil {
				return err
			}
			current.Translation = translation
			result, err = s.progress.Update(ctx, current)
			return err

		default:
			return err
		}
	})
	if err != nil {
		return domain.TokenProgress{}, fmt.Errorf("set translation for token %d: %w", tokenID, err)
	}
	return result, nil
}

// Stats returns how many tokens sit in each learning status. Unseen tokens
// have no row and are not counted.
func (s *Service) Stats(ctx context.Context) (map[domain.LearningStatus]int, error) {
	counts, err := s.progress.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count progress by status: %w", err)
	}
	return counts, nil
}

func (s *Service) count(action domain.ProgressAction, result string) {
	if s.m == nil {
		return
	}
	s.m.ProgressTransitionsTotal.WithLabelValues(action.String(), result).Inc()
}
