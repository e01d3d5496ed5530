package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/siphore/huddle-api/internal/domain"
)

const organizerColumns = "id, name, address, phone, email, link"

// PostgresOrganizerRepo implements OrganizerRepository over a pgx pool.
type PostgresOrganizerRepo struct {
	db *pgxpool.Pool
}

func NewPostgresOrganizerRepo(db *pgxpool.Pool) *PostgresOrganizerRepo {
	return &PostgresOrganizerRepo{db: db}
}

func scanOrganizer(row pgx.Row) (domain.Organizer, error) {
	var o domain.Organizer
	err := row.Scan(&o.ID, &o.Name, &o.Address, &o.Phone, &o.Email, &o.Link)
	return o, err
}

func (r *PostgresOrganizerRepo) List(ctx context.Context) ([]domain.Organizer, error) {
	rows, err := r.db.Query(ctx, "SELECT "+organizerColumns+" FROM organizers ORDER BY name ASC")
	if err != nil {
		return nil, translate("list organizers", err)
	}
	defer rows.Close()

	organizers := []domain.Organizer{}
	for rows.Next() {
		o, err := scanOrganizer(rows)
		if err != nil {
			return nil, translate("scan organizer", err)
		}
		organizers = append(organizers, o)
	}
	return organizers, rows.Err()
}

func (r *PostgresOrganizerRepo) GetByID(ctx context.Context, id int64) (domain.Organizer, error) {
	o, err := scanOrganizer(r.db.QueryRow(ctx, "SELECT "+organizerColumns+" FROM organizers WHERE id = $1", id))
	if err != nil {
		return domain.Organizer{}, translate("get organizer", err)
	}
	return o, nil
}

func (r *PostgresOrganizerRepo) Create(ctx context.Context, organizer domain.Organizer) (domain.Organizer, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO organizers (id, name, address, phone, email, link)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+organizerColumns,
		organizer.ID, organizer.Name, organizer.Address, organizer.Phone, organizer.Email, organizer.Link,
	)
	created, err := scanOrganizer(row)
	if err != nil {
		return domain.Organizer{}, translate("create organizer", err)
	}
	return created, nil
}

func (r *PostgresOrganizerRepo) Delete(ctx context.Context, id int64) (domain.Organizer, error) {
	row := r.db.QueryRow(ctx, "DELETE FROM organizers WHERE id = $1 RETURNING "+organizerColumns, id)
	deleted, err := scanOrganizer(row)
	if err != nil {
		return domain.Organizer{}, translate("delete organizer", err)
	}
	return deleted, nil
}
