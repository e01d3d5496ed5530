package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/siphore/huddle-api/internal/domain"
	"github.com/siphore/huddle-api/internal/media"
	"github.com/siphore/huddle-api/internal/repository"
)

// PodcastInput carries the scalar fields of a podcast create request.
type PodcastInput struct {
	Number      int
	Theme       string
	Title       string
	Guest       string
	Author      string
	Description string
}

// PodcastService owns the podcasts collection and its hosted media.
type PodcastService struct {
	podcasts repository.PodcastRepository
	media    media.Host
	node     *snowflake.Node
	logger   *zap.Logger
	tracer   trace.Tracer
}

// NewPodcastService wires dependencies.
func NewPodcastService(podcasts repository.PodcastRepository, host media.Host, node *snowflake.Node, logger *zap.Logger) *PodcastService {
	return &PodcastService{
		podcasts: podcasts,
		media:    host,
		node:     node,
		logger:   logger,
		tracer:   otel.Tracer("github.com/siphore/huddle-api/internal/service"),
	}
}

// List returns all podcasts by episode number.
func (s *PodcastService) List(ctx context.Context) ([]domain.Podcast, error) {
	return s.podcasts.List(ctx)
}

// Get returns one podcast by id.
func (s *PodcastService) Get(ctx context.Context, id int64) (domain.Podcast, error) {
	podcast, err := s.podcasts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Podcast{}, newNotFoundError("Podcast not found")
		}
		return domain.Podcast{}, err
	}
	return podcast, nil
}

// Create validates the input, uploads audio and cover image, and persists
// the episode.
func (s *PodcastService) Create(ctx context.Context, input PodcastInput, audio, image media.File) (domain.Podcast, error) {
	ctx, span := s.tracer.Start(ctx, "PodcastService.Create")
	defer span.End()

	var fields []string
	if input.Number <= 0 {
		fields = append(fields, "Number must be a positive integer")
	}
	required := []struct {
		value, message string
	}{
		{input.Theme, "Theme is required"},
		{input.Title, "Title is required"},
		{input.Guest, "Guest is required"},
		{input.Author, "Author is required"},
		{input.Description, "Description is required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			fields = append(fields, r.message)
		}
	}
	if audio.Reader == nil || image.Reader == nil {
		fields = append(fields, "Both audio and image files are required")
	}
	if len(fields) > 0 {
		return domain.Podcast{}, newValidationError(fields)
	}

	audioURL, err := s.media.Upload(ctx, audio)
	if err != nil {
		return domain.Podcast{}, newUpstreamError("Error uploading podcast")
	}
	imageURL, err := s.media.Upload(ctx, image)
	if err != nil {
		return domain.Podcast{}, newUpstreamError("Error uploading podcast")
	}

	created, err := s.podcasts.Create(ctx, domain.Podcast{
		ID:          s.node.Generate().Int64(),
		Number:      input.Number,
		Theme:       strings.TrimSpace(input.Theme),
		Title:       strings.TrimSpace(input.Title),
		Guest:       strings.TrimSpace(input.Guest),
		Author:      strings.TrimSpace(input.Author),
		Description: strings.TrimSpace(input.Description),
		Audio:       audioURL,
		Image:       imageURL,
	})
	if err != nil {
		s.logger.Error("podcast insert failed after upload", zap.Error(err),
			zap.String("audio", audioURL), zap.String("image", imageURL))
		return domain.Podcast{}, err
	}

	return created, nil
}

// Delete removes the episode and issues one best-effort media delete for
// the audio asset and one for the cover image.
func (s *PodcastService) Delete(ctx context.Context, id int64) (domain.Podcast, error) {
	ctx, span := s.tracer.Start(ctx, "PodcastService.Delete")
	defer span.End()

	deleted, err := s.podcasts.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Podcast{}, newNotFoundError("Podcast not found")
		}
		return domain.Podcast{}, err
	}

	if publicID := media.ExtractPublicID(deleted.Audio); publicID != "" {
		if err := s.media.Delete(ctx, publicID, media.KindAudio); err != nil {
			s.logger.Warn("media delete failed", zap.String("public_id", publicID), zap.Error(err))
		}
	}
	if publicID := media.ExtractPublicID(deleted.Image); publicID != "" {
		if err := s.media.Delete(ctx, publicID, media.KindImage); err != nil {
			s.logger.Warn("media delete failed", zap.String("public_id", publicID), zap.Error(err))
		}
	}
	return deleted, nil
}
