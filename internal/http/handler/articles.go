package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siphore/huddle-api/internal/service"
)

// ArticleHandler exposes the articles collection.
type ArticleHandler struct {
	Articles    *service.ArticleService
	Environment string
}

// NewArticleHandler wires dependencies.
func NewArticleHandler(articles *service.ArticleService, environment string) *ArticleHandler {
	return &ArticleHandler{Articles: articles, Environment: environment}
}

// List returns all articles, newest first.
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.Articles.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// ListByType returns the articles of one type.
func (h *ArticleHandler) ListByType(c *gin.Context) {
	articles, err := h.Articles.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// Get returns one article by id.
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := h.Articles.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// Create accepts a multipart form with a cover image upload.
func (h *ArticleHandler) Create(c *gin.Context) {
	input := service.ArticleInput{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
		Author:  c.PostForm("author"),
		Tags:    c.PostFormArray("tags"),
		Type:    c.PostForm("type"),
	}

	image, closeImage, err := formFile(c, "image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Unreadable image upload"})
		return
	}
	defer closeImage()

	article, err := h.Articles.Create(c.Request.Context(), input, image)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Article created", "article": article})
}

// Delete removes an article and its cover image.
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := h.Articles.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully", "deletedArticle": article})
}
