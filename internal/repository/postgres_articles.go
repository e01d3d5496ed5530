package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/siphore/huddle-api/internal/domain"
)

const articleColumns = "id, title, content, author, date, image, tags, type"

// PostgresArticleRepo implements ArticleRepository over a pgx pool.
type PostgresArticleRepo struct {
	db *pgxpool.Pool
}

func NewPostgresArticleRepo(db *pgxpool.Pool) *PostgresArticleRepo {
	return &PostgresArticleRepo{db: db}
}

func scanArticle(row pgx.Row) (domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Author, &a.Date, &a.Image, &a.Tags, &a.Type)
	return a, err
}

func (r *PostgresArticleRepo) collect(ctx context.Context, query string, args ...any) ([]domain.Article, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translate("list articles", err)
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, translate("scan article", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (r *PostgresArticleRepo) List(ctx context.Context) ([]domain.Article, error) {
	return r.collect(ctx, "SELECT "+articleColumns+" FROM articles ORDER BY date DESC")
}

func (r *PostgresArticleRepo) ListByType(ctx context.Context, articleType domain.ArticleType) ([]domain.Article, error) {
	return r.collect(ctx, "SELECT "+articleColumns+" FROM articles WHERE type = $1 ORDER BY date DESC", articleType)
}

func (r *PostgresArticleRepo) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	a, err := scanArticle(r.db.QueryRow(ctx, "SELECT "+articleColumns+" FROM articles WHERE id = $1", id))
	if err != nil {
		return domain.Article{}, translate("get article", err)
	}
	return a, nil
}

func (r *PostgresArticleRepo) Create(ctx context.Context, article domain.Article) (domain.Article, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO articles (id, title, content, author, date, image, tags, type)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+articleColumns,
		article.ID, article.Title, article.Content, article.Author, article.Date,
		article.Image, article.Tags, article.Type,
	)
	created, err := scanArticle(row)
	if err != nil {
		return domain.Article{}, translate("create article", err)
	}
	return created, nil
}

func (r *PostgresArticleRepo) Delete(ctx context.Context, id int64) (domain.Article, error) {
	row := r.db.QueryRow(ctx, "DELETE FROM articles WHERE id = $1 RETURNING "+articleColumns, id)
	deleted, err := scanArticle(row)
	if err != nil {
		return domain.Article{}, translate("delete article", err)
	}
	return deleted, nil
}
