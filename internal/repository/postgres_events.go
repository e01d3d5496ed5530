package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/siphore/huddle-api/internal/domain"
)

const eventColumns = "id, theme, title, subtitle, description, organizer, date, requirements, building, address, npa_city, website, image, icon"

// PostgresEventRepo implements EventRepository over a pgx pool.
type PostgresEventRepo struct {
	db *pgxpool.Pool
}

func NewPostgresEventRepo(db *pgxpool.Pool) *PostgresEventRepo {
	return &PostgresEventRepo{db: db}
}

func scanEvent(row pgx.Row) (domain.Event, error) {
	var e domain.Event
	err := row.Scan(&e.ID, &e.Theme, &e.Title, &e.Subtitle, &e.Description, &e.Organizer,
		&e.Date, &e.Requirements, &e.Building, &e.Address, &e.NpaCity, &e.Website, &e.Image, &e.Icon)
	return e, err
}

func (r *PostgresEventRepo) collect(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translate("list events", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, translate("scan event", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *PostgresEventRepo) List(ctx context.Context) ([]domain.Event, error) {
	return r.collect(ctx, "SELECT "+eventColumns+" FROM events ORDER BY date ASC")
}

func (r *PostgresEventRepo) ListByTheme(ctx context.Context, theme domain.Theme) ([]domain.Event, error) {
	return r.collect(ctx, "SELECT "+eventColumns+" FROM events WHERE theme = $1 ORDER BY date ASC", theme)
}

func (r *PostgresEventRepo) GetByID(ctx context.Context, id int64) (domain.Event, error) {
	e, err := scanEvent(r.db.QueryRow(ctx, "SELECT "+eventColumns+" FROM events WHERE id = $1", id))
	if err != nil {
		return domain.Event{}, translate("get event", err)
	}
	return e, nil
}

func (r *PostgresEventRepo) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO events (id, theme, title, subtitle, description, organizer, date, requirements, building, address, npa_city, website, image, icon)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING `+eventColumns,
		event.ID, event.Theme, event.Title, event.Subtitle, event.Description, event.Organizer,
		event.Date, event.Requirements, event.Building, event.Address, event.NpaCity, event.Website,
		event.Image, event.Icon,
	)
	created, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, translate("create event", err)
	}
	return created, nil
}

func (r *PostgresEventRepo) Delete(ctx context.Context, id int64) (domain.Event, error) {
	row := r.db.QueryRow(ctx, "DELETE FROM events WHERE id = $1 RETURNING "+eventColumns, id)
	deleted, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, translate("delete event", err)
	}
	return deleted, nil
}
