package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siphore/huddle-api/internal/service"
)

// OpportunityHandler exposes the coaching opportunities collection.
type OpportunityHandler struct {
	Opportunities *service.OpportunityService
	Environment   string
}

// NewOpportunityHandler wires dependencies.
func NewOpportunityHandler(opportunities *service.OpportunityService, environment string) *OpportunityHandler {
	return &OpportunityHandler{Opportunities: opportunities, Environment: environment}
}

type opportunityRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Club        string `json:"club" form:"club"`
	License     string `json:"license" form:"license"`
	NPA         int    `json:"NPA" form:"NPA"`
	Location    string `json:"location" form:"location"`
	Contract    string `json:"contract" form:"contract"`
}

// List returns all opportunities.
func (h *OpportunityHandler) List(c *gin.Context) {
	opportunities, err := h.Opportunities.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, opportunities)
}

// Get returns one opportunity by id.
func (h *OpportunityHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	opportunity, err := h.Opportunities.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, opportunity)
}

// Create registers a new opportunity.
func (h *OpportunityHandler) Create(c *gin.Context) {
	var req opportunityRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Malformed request body"})
		return
	}

	input := service.OpportunityInput{
		Title:       req.Title,
		Description: req.Description,
		Club:        req.Club,
		License:     req.License,
		NPA:         req.NPA,
		Location:    req.Location,
		Contract:    req.Contract,
	}

	opportunity, err := h.Opportunities.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Opportunity created", "opportunity": opportunity})
}

// Delete removes an opportunity.
func (h *OpportunityHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	opportunity, err := h.Opportunities.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Opportunity deleted successfully", "deletedOpportunity": opportunity})
}
