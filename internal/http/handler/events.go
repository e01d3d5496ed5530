package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siphore/huddle-api/internal/service"
)

// EventHandler exposes the events collection.
type EventHandler struct {
	Events      *service.EventService
	Environment string
}

// NewEventHandler wires dependencies.
func NewEventHandler(events *service.EventService, environment string) *EventHandler {
	return &EventHandler{Events: events, Environment: environment}
}

// List returns all events ordered by date.
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.Events.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// ListByTheme returns the events of one theme.
func (h *EventHandler) ListByTheme(c *gin.Context) {
	events, err := h.Events.ListByTheme(c.Request.Context(), c.Param("theme"))
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// Get returns one event by id.
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	event, err := h.Events.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// Create accepts a multipart form with an image and an icon upload.
func (h *EventHandler) Create(c *gin.Context) {
	input := service.EventInput{
		Theme:        c.PostForm("theme"),
		Title:        c.PostForm("title"),
		Subtitle:     c.PostForm("subtitle"),
		Description:  c.PostForm("description"),
		Organizer:    c.PostForm("organizer"),
		Requirements: c.PostForm("requirements"),
		Building:     c.PostForm("building"),
		Address:      c.PostForm("address"),
		NpaCity:      c.PostForm("npaCity"),
		Website:      c.PostForm("website"),
	}

	image, closeImage, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Unreadable image upload"})
		return
	}
	defer closeImage()

	icon, closeIcon, err := formFile(c, "icon")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Unreadable icon upload"})
		return
	}
	defer closeIcon()

	event, err := h.Events.Create(c.Request.Context(), input, image, icon)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Event created", "event": event})
}

// Delete removes an event and its hosted assets.
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	event, err := h.Events.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully", "deletedEvent": event})
}
