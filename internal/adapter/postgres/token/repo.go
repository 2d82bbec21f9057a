// Package token implements the token registry using PostgreSQL.
//
// Tokens are shared by every book in a language, are created on first sight
// and are never deleted.
package token

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
	selectByNormSQL = `
SELECT id, language_id, norm, kind
FROM tokens
WHERE language_id = $1 AND norm = $2`

	insertSQL = `
INSERT INTO tokens (language_id, norm, kind)
VALUES ($1, $2, $3)
ON CONFLICT (language_id, norm) DO NOTHING
RETURNING id`

	selectByIDSQL = `
SELECT id, language_id, norm, kind
FROM tokens
WHERE id = $1`

	selectByIDsSQL = `
SELECT id, language_id, norm, kind
FROM tokens
WHERE id = ANY($1::bigint[])`
)

// Repo provides token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Resolve returns the token identified by (languageID, norm), creating it
// when absent. Creation is INSERT ON CONFLICT DO NOTHING followed by a
// re-read: when two callers race to create the same norm, the loser resolves
// to the winner's row instead of surfacing an error, including when both run
// inside open transactions.
//
// A kind mismatch against an existing row is a validation error — a norm
// cannot be both WORD and PHRASE within one language.
func (r *Repo) Resolve(ctx context.Context, languageID int64, norm string, kind domain.TokenKind) (domain.Token, error) {
	if norm == "" {
		return domain.Token{}, domain.NewValidationError("norm", "must not be empty")
	}
	if !kind.IsValid() {
		return domain.Token{}, domain.NewValidationError("kind", "must be 1 (WORD) or 2 (PHRASE)")
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	existing, err := r.selectByNorm(ctx, languageID, norm)
	if err == nil {
		return checkKind(existing, kind)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Token{}, err
	}

	// DO NOTHING keeps a lost creation race from failing the statement, so
	// callers running inside a transaction can still re-read the winner.
	var id int64
	err = q.QueryRow(ctx, insertSQL, languageID, norm, int16(kind)).Scan(&id)
	if err == nil {
		return domain.Token{ID: id, LanguageID: languageID, Norm: norm, Kind: kind}, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Token{}, postgres.MapError(err, "token", 0)
	}

	// Lost the race. The winner has committed by the time DO NOTHING
	// resolves, so one re-read always finds it (tokens are never deleted).
	existing, err = r.selectByNorm(ctx, languageID, norm)
	if err != nil {
		return domain.Token{}, err
	}
	return checkKind(existing, kind)
}

func checkKind(t domain.Token, kind domain.TokenKind) (domain.Token, error) {
	if t.Kind != kind {
		return domain.Token{}, domain.NewValidationError("kind",
			fmt.Sprintf("norm %q already registered as %s", t.Norm, t.Kind))
	}
	return t, nil
}

// GetByID returns a token by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Token, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.Token
	var kind int16
	err := q.QueryRow(ctx, selectByIDSQL, id).Scan(&t.ID, &t.LanguageID, &t.Norm, &kind)
	if err != nil {
		return domain.Token{}, postgres.MapError(err, "token", id)
	}
	t.Kind = domain.TokenKind(kind)
	return t, nil
}

// GetByIDs returns the tokens for the given ids, keyed by id.
// Missing ids are simply absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) (map[int64]domain.Token, error) {
	if len(ids) == 0 {
		return map[int64]domain.Token{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, selectByIDsSQL, ids)
	if err != nil {
		return nil, postgres.MapError(err, "token", 0)
	}
	defer rows.Close()

	out := make(map[int64]domain.Token, len(ids))
	for rows.Next() {
		var t domain.Token
		var kind int16
		if err := rows.Scan(&t.ID, &t.LanguageID, &t.Norm, &kind); err != nil {
			return nil, postgres.MapError(err, "token", 0)
		}
		t.Kind = domain.TokenKind(kind)
		out[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "token", 0)
	}
	return out, nil
}

func (r *Repo) selectByNorm(ctx context.Context, languageID int64, norm string) (domain.Token, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.Token
	var kind int16
	err := q.QueryRow(ctx, selectByNormSQL, languageID, norm).Scan(&t.ID, &t.LanguageID, &t.Norm, &kind)
	if err != nil {
		return domain.Token{}, postgres.MapError(err, "token", 0)
	}
	t.Kind = domain.TokenKind(kind)
	return t, nil
}
