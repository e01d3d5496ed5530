package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/siphore/huddle-api/internal/service"
)

// PodcastHandler exposes the podcasts collection.
type PodcastHandler struct {
	Podcasts    *service.PodcastService
	Environment string
}

// NewPodcastHandler wires dependencies.
func NewPodcastHandler(podcasts *service.PodcastService, environment string) *PodcastHandler {
	return &PodcastHandler{Podcasts: podcasts, Environment: environment}
}

// List returns all podcasts ordered by episode number.
func (h *PodcastHandler) List(c *gin.Context) {
	podcasts, err := h.Podcasts.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, podcasts)
}

// Get returns one podcast by id.
func (h *PodcastHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	podcast, err := h.Podcasts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, podcast)
}

// Create accepts a multipart form with audio and cover image uploads.
func (h *PodcastHandler) Create(c *gin.Context) {
	// A non-numeric number stays zero and fails service validation.
	number, _ := strconv.Atoi(c.PostForm("number"))
	input := service.PodcastInput{
		Number:      number,
		Theme:       c.PostForm("theme"),
		Title:       c.PostForm("title"),
		Guest:       c.PostForm("guest"),
		Author:      c.PostForm("author"),
		Description: c.PostForm("description"),
	}

	audio, closeAudio, err := formFile(c, "audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Unreadable audio upload"})
		return
	}
	defer closeAudio()

	image, closeImage, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Unreadable image upload"})
		return
	}
	defer closeImage()

	podcast, err := h.Podcasts.Create(c.Request.Context(), input, audio, image)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Podcast created", "podcast": podcast})
}

// Delete removes a podcast and its hosted assets.
func (h *PodcastHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	podcast, err := h.Podcasts.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Podcast deleted successfully", "deletedPodcast": podcast})
}
