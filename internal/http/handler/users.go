package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siphore/huddle-api/internal/http/middleware"
	"github.com/siphore/huddle-api/internal/service"
)

// UserHandler exposes account management and the session lifecycle.
type UserHandler struct {
	Auth        *service.AuthService
	Environment string
}

// NewUserHandler wires dependencies.
func NewUserHandler(auth *service.AuthService, environment string) *UserHandler {
	return &UserHandler{Auth: auth, Environment: environment}
}

type registerRequest struct {
	Pseudo   string `json:"pseudo" form:"pseudo"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Register creates an account.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Malformed request body"})
		return
	}

	user, err := h.Auth.Register(c.Request.Context(), req.Pseudo, req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created", "user": user})
}

// Login exchanges credentials for a bearer token.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Malformed request body"})
		return
	}

	session, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome %s!", req.Email),
		"token":   session,
	})
}

// Logout revokes the presented token.
func (h *UserHandler) Logout(c *gin.Context) {
	raw, _ := middleware.BearerToken(c)
	if err := h.Auth.Logout(c.Request.Context(), raw); err != nil {
		respondError(c, h.Environment, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// List returns every account.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Auth.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get returns one account by id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.Auth.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update applies a partial account update.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var update service.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "message": "Malformed request body"})
		return
	}

	user, err := h.Auth.Update(c.Request.Context(), id, update)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated", "user": user})
}

// Delete removes an account and its sessions.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.Auth.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Environment, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully", "deletedUser": user})
}
