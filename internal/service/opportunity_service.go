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

// OpportunityInput carries the fields of an opportunity create request.
type OpportunityInput struct {
	Title       string
	Description string
	Club        string
	License     string
	NPA         int
	Location    string
	Contract    string
	CreatedBy   int64
}

// OpportunityService owns the opportunities collection. Opportunities
// carry no hosted media.
type OpportunityService struct {
	opportunities repository.OpportunityRepository
	node          *snowflake.Node
	logger        *zap.Logger
}

// NewOpportunityService wires dependencies.
func NewOpportunityService(opportunities repository.OpportunityRepository, node *snowflake.Node, logger *zap.Logger) *OpportunityService {
	return &OpportunityService{opportunities: opportunities, node: node, logger: logger}
}

// List returns every opportunity.
func (s *OpportunityService) List(ctx context.Context) ([]domain.Opportunity, error) {
	return s.opportunities.List(ctx)
}

// Get returns one opportunity by id.
func (s *OpportunityService) Get(ctx context.Context, id int64) (domain.Opportunity, error) {
	opportunity, err := s.opportunities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Opportunity{}, newNotFoundError("Opportunity not found")
		}
		return domain.Opportunity{}, err
	}
	return opportunity, nil
}

// Create validates and persists an opportunity.
func (s *OpportunityService) Create(ctx context.Context, input OpportunityInput) (domain.Opportunity, error) {
	var fields []string
	if strings.TrimSpace(input.Title) == "" {
		fields = append(fields, "Title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		fields = append(fields, "Description is required")
	}
	if strings.TrimSpace(input.Club) == "" {
		fields = append(fields, "Club is required")
	}
	if !domain.ValidLicense(input.License) {
		fields = append(fields, "License must be a recognized coaching license")
	}
	if input.NPA <= 0 {
		fields = append(fields, "NPA must be a positive integer")
	}
	if strings.TrimSpace(input.Location) == "" {
		fields = append(fields, "Location is required")
	}
	if input.Contract != "" && !domain.Contract(input.Contract).Valid() {
		fields = append(fields, "Contract must be part-time, volunteer or full-time")
	}
	if len(fields) > 0 {
		return domain.Opportunity{}, newValidationError(fields)
	}

	created, err := s.opportunities.Create(ctx, domain.Opportunity{
		ID:          s.node.Generate().Int64(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Club:        strings.TrimSpace(input.Club),
		License:     input.License,
		NPA:         input.NPA,
		Location:    strings.TrimSpace(input.Location),
		Contract:    domain.Contract(input.Contract),
		CreatedBy:   input.CreatedBy,
	})
	if err != nil {
		return domain.Opportunity{}, err
	}
	return created, nil
}

// Delete removes an opportunity and returns the deleted record.
func (s *OpportunityService) Delete(ctx context.Context, id int64) (domain.Opportunity, error) {
	deleted, err := s.opportunities.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Opportunity{}, newNotFoundError("Opportunity not found")
		}
		return domain.Opportunity{}, err
	}
	return deleted, nil
}
