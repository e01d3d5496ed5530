package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/siphore/huddle-api/internal/domain"
)

const opportunityColumns = "id, title, description, club, license, npa, location, contract, created_by"

// PostgresOpportunityRepo implements OpportunityRepository over a pgx pool.
type PostgresOpportunityRepo struct {
	db *pgxpool.Pool
}

func NewPostgresOpportunityRepo(db *pgxpool.Pool) *PostgresOpportunityRepo {
	return &PostgresOpportunityRepo{db: db}
}

func scanOpportunity(row pgx.Row) (domain.Opportunity, error) {
	var o domain.Opportunity
	var contract sql.NullString
	var createdBy sql.NullInt64
	err := row.Scan(&o.ID, &o.Title, &o.Description, &o.Club, &o.License, &o.NPA, &o.Location, &contract, &createdBy)
	if contract.Valid {
		o.Contract = domain.Contract(contract.String)
	}
	if createdBy.Valid {
		o.CreatedBy = createdBy.Int64
	}
	return o, err
}

func (r *PostgresOpportunityRepo) List(ctx context.Context) ([]domain.Opportunity, error) {
	rows, err := r.db.Query(ctx, "SELECT "+opportunityColumns+" FROM opportunities ORDER BY id ASC")
	if err != nil {
		return nil, translate("list opportunities", err)
	}
	defer rows.Close()

	opportunities := []domain.Opportunity{}
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, translate("scan opportunity", err)
		}
		opportunities = append(opportunities, o)
	}
	return opportunities, rows.Err()
}

func (r *PostgresOpportunityRepo) GetByID(ctx context.Context, id int64) (domain.Opportunity, error) {
	o, err := scanOpportunity(r.db.QueryRow(ctx, "SELECT "+opportunityColumns+" FROM opportunities WHERE id = $1", id))
	if err != nil {
		return domain.Opportunity{}, translate("get opportunity", err)
	}
	return o, nil
}

func (r *PostgresOpportunityRepo) Create(ctx context.Context, opportunity domain.Opportunity) (domain.Opportunity, error) {
	var contract *string
	if opportunity.Contract != "" {
		value := string(opportunity.Contract)
		contract = &value
	}
	var createdBy *int64
	if opportunity.CreatedBy != 0 {
		createdBy = &opportunity.CreatedBy
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO opportunities (id, title, description, club, license, npa, location, contract, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+opportunityColumns,
		opportunity.ID, opportunity.Title, opportunity.Description, opportunity.Club,
		opportunity.License, opportunity.NPA, opportunity.Location, contract, createdBy,
	)
	created, err := scanOpportunity(row)
	if err != nil {
		return domain.Opportunity{}, translate("create opportunity", err)
	}
	return created, nil
}

func (r *PostgresOpportunityRepo) Delete(ctx context.Context, id int64) (domain.Opportunity, error) {
	row := r.db.QueryRow(ctx, "DELETE FROM opportunities WHERE id = $1 RETURNING "+opportunityColumns, id)
	deleted, err := scanOpportunity(row)
	if err != nil {
		return domain.Opportunity{}, translate("delete opportunity", err)
	}
	return deleted, nil
}
