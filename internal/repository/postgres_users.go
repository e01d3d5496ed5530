package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/siphore/huddle-api/internal/domain"
)

const userColumns = "id, pseudo, email, password_hash, role, created_at"

// PostgresUserRepo implements UserRepository over a pgx pool.
type PostgresUserRepo struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepo(db *pgxpool.Pool) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Pseudo, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}

func (r *PostgresUserRepo) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, "SELECT "+userColumns+" FROM users ORDER BY pseudo ASC")
	if err != nil {
		return nil, translate("list users", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, translate("scan user", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *PostgresUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		return domain.User{}, translate("get user", err)
	}
	return u, nil
}

func (r *PostgresUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email))
	if err != nil {
		return domain.User{}, translate("get user by email", err)
	}
	return u, nil
}

func (r *PostgresUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (id, pseudo, email, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+userColumns,
		user.ID, user.Pseudo, user.Email, user.PasswordHash, user.Role,
	)
	created, err := scanUser(row)
	if err != nil {
		return domain.User{}, translate("create user", err)
	}
	return created, nil
}

func (r *PostgresUserRepo) Update(ctx context.Context, user domain.User) (domain.User, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE users SET pseudo = $2, email = $3, password_hash = $4, role = $5
		 WHERE id = $1
		 RETURNING `+userColumns,
		user.ID, user.Pseudo, user.Email, user.PasswordHash, user.Role,
	)
	updated, err := scanUser(row)
	if err != nil {
		return domain.User{}, translate("update user", err)
	}
	return updated, nil
}

func (r *PostgresUserRepo) Delete(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRow(ctx, "DELETE FROM users WHERE id = $1 RETURNING "+userColumns, id)
	deleted, err := scanUser(row)
	if err != nil {
		return domain.User{}, translate("delete user", err)
	}
	return deleted, nil
}
