package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/siphore/huddle-api/internal/domain"
)

const podcastColumns = "id, number, theme, title, guest, author, description, audio, image"

// PostgresPodcastRepo implements PodcastRepository over a pgx pool.
type PostgresPodcastRepo struct {
	db *pgxpool.Pool
}

func NewPostgresPodcastRepo(db *pgxpool.Pool) *PostgresPodcastRepo {
	return &PostgresPodcastRepo{db: db}
}

func scanPodcast(row pgx.Row) (domain.Podcast, error) {
	var p domain.Podcast
	err := row.Scan(&p.ID, &p.Number, &p.Theme, &p.Title, &p.Guest, &p.Author, &p.Description, &p.Audio, &p.Image)
	return p, err
}

func (r *PostgresPodcastRepo) List(ctx context.Context) ([]domain.Podcast, error) {
	rows, err := r.db.Query(ctx, "SELECT "+podcastColumns+" FROM podcasts ORDER BY number ASC")
	if err != nil {
		return nil, translate("list podcasts", err)
	}
	defer rows.Close()

	podcasts := []domain.Podcast{}
	for rows.Next() {
		p, err := scanPodcast(rows)
		if err != nil {
			return nil, translate("scan podcast", err)
		}
		podcasts = append(podcasts, p)
	}
	return podcasts, rows.Err()
}

func (r *PostgresPodcastRepo) GetByID(ctx context.Context, id int64) (domain.Podcast, error) {
	p, err := scanPodcast(r.db.QueryRow(ctx, "SELECT "+podcastColumns+" FROM podcasts WHERE id = $1", id))
	if err != nil {
		return domain.Podcast{}, translate("get podcast", err)
	}
	return p, nil
}

func (r *PostgresPodcastRepo) Create(ctx context.Context, podcast domain.Podcast) (domain.Podcast, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO podcasts (id, number, theme, title, guest, author, description, audio, image)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+podcastColumns,
		podcast.ID, podcast.Number, podcast.Theme, podcast.Title, podcast.Guest,
		podcast.Author, podcast.Description, podcast.Audio, podcast.Image,
	)
	created, err := scanPodcast(row)
	if err != nil {
		return domain.Podcast{}, translate("create podcast", err)
	}
	return created, nil
}

func (r *PostgresPodcastRepo) Delete(ctx context.Context, id int64) (domain.Podcast, error) {
	row := r.db.QueryRow(ctx, "DELETE FROM podcasts WHERE id = $1 RETURNING "+podcastColumns, id)
	deleted, err := scanPodcast(row)
	if err != nil {
		return domain.Podcast{}, translate("delete podcast", err)
	}
	return deleted, nil
}
