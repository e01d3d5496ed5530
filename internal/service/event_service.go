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

// EventInput carries the scalar fields of an event create request.
type EventInput struct {
	Theme        string
	Title        string
	Subtitle     string
	Description  string
	Organizer    string
	Requirements string
	Building     string
	Address      string
	NpaCity      string
	Website      string
}

// EventService owns the events collection and its hosted media.
type EventService struct {
	events repository.EventRepository
	media  media.Host
	node   *snowflake.Node
	logger *zap.Logger
	tracer trace.Tracer
}

// NewEventService wires dependencies.
func NewEventService(events repository.EventRepository, host media.Host, node *snowflake.Node, logger *zap.Logger) *EventService {
	return &EventService{
		events: events,
		media:  host,
		node:   node,
		logger: logger,
		tracer: otel.Tracer("github.com/siphore/huddle-api/internal/service"),
	}
}

// List returns all events by date ascending.
func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.events.List(ctx)
}

// ListByTheme filters events on one theme. Unknown themes yield an empty
// list rather than an error.
func (s *EventService) ListByTheme(ctx context.Context, theme string) ([]domain.Event, error) {
	return s.events.ListByTheme(ctx, domain.Theme(theme))
}

// Get returns one event by id.
func (s *EventService) Get(ctx context.Context, id int64) (domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Event{}, newNotFoundError("Event not found")
		}
		return domain.Event{}, err
	}
	return event, nil
}

// Create validates the input, uploads both assets, and persists the event.
// The upload and the insert are independent steps: an insert failure after
// a successful upload leaves an orphaned remote asset, logged only.
func (s *EventService) Create(ctx context.Context, input EventInput, image, icon media.File) (domain.Event, error) {
	ctx, span := s.tracer.Start(ctx, "EventService.Create")
	defer span.End()

	fields := requireEventFields(input)
	if image.Reader == nil || icon.Reader == nil {
		fields = append(fields, "Both image and icon files are required")
	}
	if len(fields) > 0 {
		return domain.Event{}, newValidationError(fields)
	}

	imageURL, err := s.media.Upload(ctx, image)
	if err != nil {
		return domain.Event{}, newUpstreamError("Error uploading event")
	}
	iconURL, err := s.media.Upload(ctx, icon)
	if err != nil {
		return domain.Event{}, newUpstreamError("Error uploading event")
	}

	created, err := s.events.Create(ctx, domain.Event{
		ID:           s.node.Generate().Int64(),
		Theme:        domain.Theme(input.Theme),
		Title:        strings.TrimSpace(input.Title),
		Subtitle:     strings.TrimSpace(input.Subtitle),
		Description:  strings.TrimSpace(input.Description),
		Organizer:    strings.TrimSpace(input.Organizer),
		Date:         time.Now(),
		Requirements: strings.TrimSpace(input.Requirements),
		Building:     input.Building,
		Address:      input.Address,
		NpaCity:      input.NpaCity,
		Website:      input.Website,
		Image:        imageURL,
		Icon:         iconURL,
	})
	if err != nil {
		s.logger.Error("event insert failed after upload", zap.Error(err),
			zap.String("image", imageURL), zap.String("icon", iconURL))
		return domain.Event{}, err
	}

	return created, nil
}

// Delete removes the event and issues one best-effort media delete per
// referenced asset. Media failures never undo the committed deletion.
func (s *EventService) Delete(ctx context.Context, id int64) (domain.Event, error) {
	ctx, span := s.tracer.Start(ctx, "EventService.Delete")
	defer span.End()

	deleted, err := s.events.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Event{}, newNotFoundError("Event not found")
		}
		return domain.Event{}, err
	}

	s.removeAsset(ctx, deleted.Image, media.KindImage)
	s.removeAsset(ctx, deleted.Icon, media.KindImage)
	return deleted, nil
}

func (s *EventService) removeAsset(ctx context.Context, fileURL string, kind media.Kind) {
	publicID := media.ExtractPublicID(fileURL)
	if publicID == "" {
		return
	}
	if err := s.media.Delete(ctx, publicID, kind); err != nil {
		s.logger.Warn("media delete failed", zap.String("public_id", publicID), zap.Error(err))
	}
}

func requireEventFields(input EventInput) []string {
	var fields []string
	if !domain.Theme(input.Theme).Valid() {
		fields = append(fields, "Theme must be one of events, certifications, workshops, competitions, camps")
	}
	required := []struct {
		value, message string
	}{
		{input.Title, "Title is required"},
		{input.Subtitle, "Subtitle is required"},
		{input.Description, "Description is required"},
		{input.Organizer, "Organizer is required"},
		{input.Requirements, "Requirements are required"},
		{input.Building, "Building is required"},
		{input.Address, "Address is required"},
		{input.NpaCity, "NpaCity is required"},
		{input.Website, "Website is required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			fields = append(fields, r.message)
		}
	}
	return fields
}
