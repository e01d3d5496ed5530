package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/siphore/huddle-api/internal/domain"
	"github.com/siphore/huddle-api/internal/media"
	"github.com/siphore/huddle-api/internal/repository"
)

// ArticleInput carries the scalar fields of an article create request.
type ArticleInput struct {
	Title   string
	Content string
	Author  string
	Tags    []string
	Type    string
}

// ArticleService owns the articles collection and its hosted media.
type ArticleService struct {
	articles repository.ArticleRepository
	media    media.Host
	node     *snowflake.Node
	logger   *zap.Logger
	tracer   trace.Tracer
}

// NewArticleService wires dependencies.
func NewArticleService(articles repository.ArticleRepository, host media.Host, node *snowflake.Node, logger *zap.Logger) *ArticleService {
	return &ArticleService{
		articles: articles,
		media:    host,
		node:     node,
		logger:   logger,
		tracer:   otel.Tracer("github.com/siphore/huddle-api/internal/service"),
	}
}

// List returns all articles, newest first.
func (s *ArticleService) List(ctx context.Context) ([]domain.Article, error) {
	return s.articles.List(ctx)
}

// ListByType filters articles on news or article.
func (s *ArticleService) ListByType(ctx context.Context, articleType string) ([]domain.Article, error) {
	return s.articles.ListByType(ctx, domain.ArticleType(articleType))
}

// Get returns one article by id.
func (s *ArticleService) Get(ctx context.Context, id int64) (domain.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Article{}, newNotFoundError("Article not found")
		}
		return domain.Article{}, err
	}
	return article, nil
}

// Create validates the input, uploads the cover image, and persists the
// article stamped with the current date.
func (s *ArticleService) Create(ctx context.Context, input ArticleInput, image media.File) (domain.Article, error) {
	ctx, span := s.tracer.Start(ctx, "ArticleService.Create")
	defer span.End()

	var fields []string
	if strings.TrimSpace(input.Title) == "" {
		fields = append(fields, "Title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		fields = append(fields, "Content is required")
	}
	if strings.TrimSpace(input.Author) == "" {
		fields = append(fields, "Author is required")
	}
	if !domain.ArticleType(input.Type).Valid() {
		fields = append(fields, "Type must be news or article")
	}
	if image.Reader == nil {
		fields = append(fields, "Image file is required")
	}
	if len(fields) > 0 {
		return domain.Article{}, newValidationError(fields)
	}

	imageURL, err := s.media.Upload(ctx, image)
	if err != nil {
		return domain.Article{}, newUpstreamError("Error uploading article")
	}

	created, err := s.articles.Create(ctx, domain.Article{
		ID:      s.node.Generate().Int64(),
		Title:   strings.TrimSpace(input.Title),
		Content: strings.TrimSpace(input.Content),
		Author:  strings.TrimSpace(input.Author),
		Date:    time.Now(),
		Image:   imageURL,
		Tags:    input.Tags,
		Type:    domain.ArticleType(input.Type),
	})
	if err != nil {
		s.logger.Error("article insert failed after upload", zap.Error(err), zap.String("image", imageURL))
		return domain.Article{}, err
	}

	return created, nil
}

// Delete removes the article and best-effort deletes its cover image.
func (s *ArticleService) Delete(ctx context.Context, id int64) (domain.Article, error) {
	ctx, span := s.tracer.Start(ctx, "ArticleService.Delete")
	defer span.End()

	deleted, err := s.articles.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Article{}, newNotFoundError("Article not found")
		}
		return domain.Article{}, err
	}

	if publicID := media.ExtractPublicID(deleted.Image); publicID != "" {
		if err := s.media.Delete(ctx, publicID, media.KindImage); err != nil {
			s.logger.Warn("media delete failed", zap.String("public_id", publicID), zap.Error(err))
		}
	}
	return deleted, nil
}
