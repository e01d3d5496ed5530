package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/siphore/huddle-api/internal/domain"
	"github.com/siphore/huddle-api/internal/service"
)

const (
	currentUserKey   = "currentUser"
	currentUserIDKey = "currentUserID"

	invalidTokenMessage = "Your token is invalid or has expired"
)

// Authenticator resolves a bearer token into the user it belongs to.
type Authenticator interface {
	Authenticate(ctx context.Context, raw string) (domain.User, error)
}

// Auth validates the Authorization header and attaches the caller to the request.
type Auth struct {
	Service Authenticator
}

// RequireAuth ensures the request carries a valid, unrevoked bearer token.
func (m *Auth) RequireAuth(c *gin.Context) {
	raw, ok := BearerToken(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":   "unauthorized",
			"message": invalidTokenMessage,
		})
		return
	}

	user, err := m.Service.Authenticate(c.Request.Context(), raw)
	if err != nil {
		var svcErr *service.Error
		if errors.As(err, &svcErr) {
			c.AbortWithStatusJSON(svcErr.Status, gin.H{
				"error":   svcErr.Code,
				"message": svcErr.Message,
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":   "unauthorized",
			"message": invalidTokenMessage,
		})
		return
	}

	c.Set(currentUserKey, user)
	c.Set(currentUserIDKey, user.ID)
	c.Next()
}

// BearerToken extracts the raw token from the Authorization header.
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

// CurrentUser exposes the authenticated user to handlers.
func CurrentUser(c *gin.Context) (domain.User, bool) {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok
}

// CurrentUserID returns the authenticated user's identifier.
func CurrentUserID(c *gin.Context) (int64, bool) {
	value, ok := c.Get(currentUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}
