package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/siphore/huddle-api/internal/domain"
	"github.com/siphore/huddle-api/internal/http/middleware"
	"github.com/siphore/huddle-api/internal/service"
)

type stubAuthenticator struct {
	user domain.User
	err  error
}

func (s *stubAuthenticator) Authenticate(ctx context.Context, raw string) (domain.User, error) {
	if s.err != nil {
		return domain.User{}, s.err
	}
	return s.user, nil
}

func newTestRouter(auth *middleware.Auth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", auth.RequireAuth, func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"pseudo": user.Pseudo})
	})
	return r
}

func TestRequireAuthMissingHeader(t *testing.T) {
	auth := &middleware.Auth{Service: &stubAuthenticator{}}
	r := newTestRouter(auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Your token is invalid or has expired")
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	auth := &middleware.Auth{Service: &stubAuthenticator{}}
	r := newTestRouter(auth)

	for _, header := range []string{"Basic abc", "Bearer", "Bearer "} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestRequireAuthPropagatesServiceStatus(t *testing.T) {
	auth := &middleware.Auth{Service: &stubAuthenticator{
		err: &service.Error{Status: http.StatusNotFound, Code: "not_found", Message: "User not found"},
	}}
	r := newTestRouter(auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "User not found")
}

func TestRequireAuthAttachesUser(t *testing.T) {
	auth := &middleware.Auth{Service: &stubAuthenticator{
		user: domain.User{ID: 7, Pseudo: "coach", Role: domain.RoleAdmin},
	}}
	r := newTestRouter(auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "coach")
}
