package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siphore/huddle-api/internal/service"
)

// OrganizerHandler exposes the organizers directory.
type OrganizerHandler struct {
	Organizers  *service.OrganizerService
	Environment string
}

// NewOrganizerHandler wires dependencies.
func NewOrganizerHandler(organizers *service.OrganizerService, environment string) *OrganizerHandler {
	return &OrganizerHandler{Organizers: organizers, Environment: environment}
}

type organizerRequest struct {
	Name    string `json:"name" form:"name"`
	Address string `json:"address" form:"address"`
	Phone   string `json:"phone" form:"phone"`
	Email   string `json:"email" form:"email"`
	Link    string `json:"link" form:"link"`
}

// List returns all organizers ordered by name.
func (h *OrganizerHandler) List(c *gin.Context) {
	organizers, err := h.Organizers.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, organizers)
}

// Get returns one organizer by id.
func (h *OrganizerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	organizer, err := h.Organizers.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, organizer)
}

// Create registers a new organizer.
func (h *OrganizerHandler) Create(c *gin.Context) {
	var req organizerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Malformed request body"})
		return
	}

	input := service.OrganizerInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
		Link:    req.Link,
	}

	organizer, err := h.Organizers.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Organizer created", "organizer": organizer})
}

// Delete removes an organizer.
func (h *OrganizerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	organizer, err := h.Organizers.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Organizer deleted successfully", "deletedOrganizer": organizer})
}
