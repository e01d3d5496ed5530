package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/siphore/huddle-api/internal/domain"
	"github.com/siphore/huddle-api/internal/repository"
)

// OrganizerInput carries the fields of an organizer create request.
type OrganizerInput struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Link    string
}

// OrganizerService owns the organizers collection.
type OrganizerService struct {
	organizers repository.OrganizerRepository
	node       *snowflake.Node
	logger     *zap.Logger
}

// NewOrganizerService wires dependencies.
func NewOrganizerService(organizers repository.OrganizerRepository, node *snowflake.Node, logger *zap.Logger) *OrganizerService {
	return &OrganizerService{organizers: organizers, node: node, logger: logger}
}

// List returns every organizer sorted by name.
func (s *OrganizerService) List(ctx context.Context) ([]domain.Organizer, error) {
	return s.organizers.List(ctx)
}

// Get returns one organizer by id.
func (s *OrganizerService) Get(ctx context.Context, id int64) (domain.Organizer, error) {
	organizer, err := s.organizers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Organizer{}, newNotFoundError("Organizer not found")
		}
		return domain.Organizer{}, err
	}
	return organizer, nil
}

// Create validates and persists an organizer. Email is unique across the
// collection.
func (s *OrganizerService) Create(ctx context.Context, input OrganizerInput) (domain.Organizer, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var fields []string
	if name == "" {
		fields = append(fields, "Name is required")
	} else if len(name) > 16 {
		fields = append(fields, "Name must not exceed 16 characters")
	}
	if strings.TrimSpace(input.Address) == "" {
		fields = append(fields, "Address is required")
	}
	if strings.TrimSpace(input.Phone) == "" {
		fields = append(fields, "Phone number is required")
	}
	if email == "" {
		fields = append(fields, "Email is required")
	} else if !domain.ValidEmail(email) {
		fields = append(fields, "Please provide a valid email")
	}
	if strings.TrimSpace(input.Link) == "" {
		fields = append(fields, "Link is required")
	}
	if len(fields) > 0 {
		return domain.Organizer{}, newValidationError(fields)
	}

	created, err := s.organizers.Create(ctx, domain.Organizer{
		ID:      s.node.Generate().Int64(),
		Name:    name,
		Address: input.Address,
		Phone:   input.Phone,
		Email:   email,
		Link:    strings.TrimSpace(input.Link),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.Organizer{}, newConflictError("Email already registered")
		}
		return domain.Organizer{}, err
	}
	return created, nil
}

// Delete removes an organizer and returns the deleted record.
func (s *OrganizerService) Delete(ctx context.Context, id int64) (domain.Organizer, error) {
	deleted, err := s.organizers.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Organizer{}, newNotFoundError("Organizer not found")
		}
		return domain.Organizer{}, err
	}
	return deleted, nil
}
