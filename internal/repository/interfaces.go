package repository

import (
	"context"

	"github.com/siphore/huddle-api/internal/domain"
)

// UserRepository exposes persistence for platform users.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Update(ctx context.Context, user domain.User) (domain.User, error)
	Delete(ctx context.Context, id int64) (domain.User, error)
}

// TokenRepository handles session token persistence. A token authenticates
// only while its row exists here; Delete is revocation.
type TokenRepository interface {
	Insert(ctx context.Context, token domain.SessionToken) error
	Get(ctx context.Context, raw string) (domain.SessionToken, error)
	Delete(ctx context.Context, raw string) error
}

// EventRepository exposes persistence for events, listed by date ascending.
type EventRepository interface {
	List(ctx context.Context) ([]domain.Event, error)
	ListByTheme(ctx context.Context, theme domain.Theme) ([]domain.Event, error)
	GetByID(ctx context.Context, id int64) (domain.Event, error)
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	Delete(ctx context.Context, id int64) (domain.Event, error)
}

// ArticleRepository exposes persistence for articles, listed by date descending.
type ArticleRepository interface {
	List(ctx context.Context) ([]domain.Article, error)
	ListByType(ctx context.Context, articleType domain.ArticleType) ([]domain.Article, error)
	GetByID(ctx context.Context, id int64) (domain.Article, error)
	Create(ctx context.Context, article domain.Article) (domain.Article, error)
	Delete(ctx context.Context, id int64) (domain.Article, error)
}

// PodcastRepository exposes persistence for podcasts, listed by episode number.
type PodcastRepository interface {
	List(ctx context.Context) ([]domain.Podcast, error)
	GetByID(ctx context.Context, id int64) (domain.Podcast, error)
	Create(ctx context.Context, podcast domain.Podcast) (domain.Podcast, error)
	Delete(ctx context.Context, id int64) (domain.Podcast, error)
}

// OpportunityRepository exposes persistence for coaching opportunities.
type OpportunityRepository interface {
	List(ctx context.Context) ([]domain.Opportunity, error)
	GetByID(ctx context.Context, id int64) (domain.Opportunity, error)
	Create(ctx context.Context, opportunity domain.Opportunity) (domain.Opportunity, error)
	Delete(ctx context.Context, id int64) (domain.Opportunity, error)
}

// OrganizerRepository exposes persistence for event organizers.
type OrganizerRepository interface {
	List(ctx context.Context) ([]domain.Organizer, error)
	GetByID(ctx context.Context, id int64) (domain.Organizer, error)
	Create(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error)
	Delete(ctx context.Context, id int64) (domain.Organizer, error)
}
