// Package progress implements the token_progress repository using PostgreSQL.
package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/lexread/lexread-backend/internal/adapter/postgres"
	"github.com/lexread/lexread-backend/internal/domain"
)

const (
	selectSQL = `
SELECT token_id, status, learning_stage, translation, created_at, updated_at
FROM token_progress
WHERE token_id = $1`

	selectForUpdateSQL = selectSQL + `
FOR UPDATE`

	insertSQL = `
INSERT INTO token_progress (token_id, status, learning_stage, translation)
VALUES ($1, $2, $3, $4)
ON CONFLICT (token_id) DO NOTHING
RETURNING created_at, updated_at`

	updateSQL = `
UPDATE token_progress
SET status = $2, learning_stage = $3, translation = $4, updated_at = now()
WHERE token_id = $1
RETURNING created_at, updated_at`

	countByStatusSQL = `
SELECT status, COUNT(*)
FROM token_progress
GROUP BY status`
)

// Repo provides token_progress persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the progress row for a token.
func (r *Repo) Get(ctx context.Context, tokenID int64) (domain.TokenProgress, error) {
	return r.get(ctx, tokenID, selectSQL)
}

// GetForUpdate returns the progress row for a token with a row lock.
// Must be called inside a transaction; concurrent transitions on the same
// token serialize on this lock.
func (r *Repo) GetForUpdate(ctx context.Context, tokenID int64) (domain.TokenProgress, error) {
	return r.get(ctx, tokenID, selectForUpdateSQL)
}

// Insert creates a token's progress row. The status/stage invariant is
// re-checked at commit time; a violating row is rejected, not persisted.
//
// An existing row surfaces as ErrAlreadyExists through DO NOTHING, which
// keeps an open transaction usable so the caller can re-read and retry.
func (r *Repo) Insert(ctx context.Context, p domain.TokenProgress) (domain.TokenProgress, error) {
	if err := p.Validate(); err != nil {
		return domain.TokenProgress{}, err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	err := q.QueryRow(ctx, insertSQL, p.TokenID, int16(p.Status), p.Stage, p.Translation).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TokenProgress{}, fmt.Errorf("token_progress %d: %w", p.TokenID, domain.ErrAlreadyExists)
		}
		return domain.TokenProgress{}, postgres.MapError(err, "token_progress", p.TokenID)
	}
	return p, nil
}

// Update overwrites a token's progress row. The status/stage invariant is
// re-checked at commit time; a violating row is rejected, not persisted.
func (r *Repo) Update(ctx context.Context, p domain.TokenProgress) (domain.TokenProgress, error) {
	if err := p.Validate(); err != nil {
		return domain.TokenProgress{}, err
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	err := q.QueryRow(ctx, updateSQL, p.TokenID, int16(p.Status), p.Stage, p.Translation).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.TokenProgress{}, postgres.MapError(err, "token_progress", p.TokenID)
	}
	return p, nil
}

// CountByStatus returns how many tokens sit in each learning status.
func (r *Repo) CountByStatus(ctx context.Context) (map[domain.LearningStatus]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, countByStatusSQL)
	if err != nil {
		return nil, postgres.MapError(err, "token_progress", 0)
	}
	defer rows.Close()

	out := make(map[domain.LearningStatus]int)
	for rows.Next() {
		var raw int16
		var count int
		if err := rows.Scan(&raw, &count); err != nil {
			return nil, postgres.MapError(err, "token_progress", 0)
		}
		status, err := domain.ParseLearningStatus(raw)
		if err != nil {
			return nil, err
		}
		out[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "token_progress", 0)
	}
	return out, nil
}

func (r *Repo) get(ctx context.Context, tokenID int64, sql string) (domain.TokenProgress, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var p domain.TokenProgress
	var status int16
	err := q.QueryRow(ctx, sql, tokenID).
		Scan(&p.TokenID, &status, &p.Stage, &p.Translation, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.TokenProgress{}, postgres.MapError(err, "token_progress", tokenID)
	}
	p.Status = domain.LearningStatus(status)
	return p, nil
}
