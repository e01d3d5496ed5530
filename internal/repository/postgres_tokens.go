package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/siphore/huddle-api/internal/domain"
)

// PostgresTokenRepo implements TokenRepository over a pgx pool.
type PostgresTokenRepo struct {
	db *pgxpool.Pool
}

func NewPostgresTokenRepo(db *pgxpool.Pool) *PostgresTokenRepo {
	return &PostgresTokenRepo{db: db}
}

func (r *PostgresTokenRepo) Insert(ctx context.Context, token domain.SessionToken) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO session_tokens (token, user_id, expires_at) VALUES ($1, $2, $3)",
		token.Token, token.UserID, token.ExpiresAt,
	)
	if err != nil {
		return translate("insert token", err)
	}
	return nil
}

func (r *PostgresTokenRepo) Get(ctx context.Context, raw string) (domain.SessionToken, error) {
	var t domain.SessionToken
	err := r.db.QueryRow(ctx,
		"SELECT token, user_id, expires_at FROM session_tokens WHERE token = $1", raw,
	).Scan(&t.Token, &t.UserID, &t.ExpiresAt)
	if err != nil {
		return domain.SessionToken{}, translate("get token", err)
	}
	return t, nil
}

func (r *PostgresTokenRepo) Delete(ctx context.Context, raw string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM session_tokens WHERE token = $1", raw)
	if err != nil {
		return translate("delete token", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
