package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/siphore/huddle-api/internal/domain"
)

// Compile-time interface assertions.
var (
	_ UserRepository        = (*PostgresUserRepo)(nil)
	_ TokenRepository       = (*PostgresTokenRepo)(nil)
	_ EventRepository       = (*PostgresEventRepo)(nil)
	_ ArticleRepository     = (*PostgresArticleRepo)(nil)
	_ PodcastRepository     = (*PostgresPodcastRepo)(nil)
	_ OpportunityRepository = (*PostgresOpportunityRepo)(nil)
	_ OrganizerRepository   = (*PostgresOrganizerRepo)(nil)
)

const uniqueViolation = "23505"

// translate maps driver errors to domain sentinels so services never see pgx.
func translate(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}
