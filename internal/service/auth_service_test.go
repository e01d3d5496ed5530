package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/siphore/huddle-api/internal/domain"
	"github.com/siphore/huddle-api/internal/service"
	"github.com/siphore/huddle-api/internal/token"
)

func newAuthService(t *testing.T) (*service.AuthService, *memUserRepo, *memTokenRepo) {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	users := newMemUserRepo()
	tokens := newMemTokenRepo()
	signer := token.NewSigner("test-secret", 24*time.Hour)
	return service.NewAuthService(users, tokens, signer, node, zap.NewNop()), users, tokens
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, users, _ := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "coach", "coach@example.com", "s3cret", "")
	require.NoError(t, err)
	require.Equal(t, domain.RoleRegular, user.Role)

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, stored.PasswordHash)
	require.NotEqual(t, "s3cret", stored.PasswordHash)
}

func TestRegisterAggregatesFieldErrors(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, err := svc.Register(context.Background(), "", "not-an-email", "", "villain")

	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
	require.Contains(t, svcErr.Fields, "Pseudo is required")
	require.Contains(t, svcErr.Fields, "Please provide a valid email")
	require.Contains(t, svcErr.Fields, "Password is required")
	require.Contains(t, svcErr.Fields, "Role must be admin, regular or institution")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "coach", "coach@example.com", "s3cret", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "other", "coach@example.com", "s3cret", "")
	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 409, svcErr.Status)
	require.Equal(t, "Email already registered", svcErr.Message)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "coach", "coach@example.com", "s3cret", "")
	require.NoError(t, err)

	_, unknownErr := svc.Login(ctx, "nobody@example.com", "s3cret")
	_, wrongErr := svc.Login(ctx, "coach@example.com", "wrong")

	var unknown, wrong *service.Error
	require.ErrorAs(t, unknownErr, &unknown)
	require.ErrorAs(t, wrongErr, &wrong)
	require.Equal(t, 401, unknown.Status)
	require.Equal(t, unknown.Status, wrong.Status)
	require.Equal(t, unknown.Message, wrong.Message)
}

func TestLoginThenAuthenticate(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "coach", "coach@example.com", "s3cret", "admin")
	require.NoError(t, err)

	session, err := svc.Login(ctx, "coach@example.com", "s3cret")
	require.NoError(t, err)
	require.Equal(t, registered.ID, session.UserID)
	require.True(t, session.ExpiresAt.After(time.Now()))

	user, err := svc.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.Equal(t, domain.RoleAdmin, user.Role)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "coach", "coach@example.com", "s3cret", "")
	require.NoError(t, err)
	session, err := svc.Login(ctx, "coach@example.com", "s3cret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session.Token))

	_, err = svc.Authenticate(ctx, session.Token)
	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 401, svcErr.Status)
}

func TestLogoutWithoutToken(t *testing.T) {
	svc, _, _ := newAuthService(t)

	err := svc.Logout(context.Background(), "")
	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
	require.Equal(t, "Token was not provided", svcErr.Message)
}

func TestLogoutUnknownToken(t *testing.T) {
	svc, _, _ := newAuthService(t)

	err := svc.Logout(context.Background(), "never-issued")
	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 404, svcErr.Status)
	require.Equal(t, "Token not found", svcErr.Message)
}

func TestAuthenticateRejectsExpiredStoreRecord(t *testing.T) {
	svc, _, tokens := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "coach", "coach@example.com", "s3cret", "")
	require.NoError(t, err)
	session, err := svc.Login(ctx, "coach@example.com", "s3cret")
	require.NoError(t, err)

	// Signature stays valid but the store record has lapsed.
	require.NoError(t, tokens.Insert(ctx, domain.SessionToken{
		Token:     session.Token,
		UserID:    session.UserID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err = svc.Authenticate(ctx, session.Token)
	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 401, svcErr.Status)
}

func TestAuthenticateGarbageToken(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, err := svc.Authenticate(context.Background(), "not-a-jwt")
	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 401, svcErr.Status)
	require.Equal(t, "Your token is invalid or has expired", svcErr.Message)
}

func TestUpdateAppliesPartialChanges(t *testing.T) {
	svc, users, _ := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "coach", "coach@example.com", "s3cret", "")
	require.NoError(t, err)

	pseudo := "headcoach"
	updated, err := svc.Update(ctx, user.ID, service.UserUpdate{Pseudo: &pseudo})
	require.NoError(t, err)
	require.Equal(t, "headcoach", updated.Pseudo)
	require.Equal(t, user.Email, updated.Email)

	newPassword := "n3wpass"
	_, err = svc.Update(ctx, user.ID, service.UserUpdate{Password: &newPassword})
	require.NoError(t, err)

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotEqual(t, user.PasswordHash, stored.PasswordHash)

	_, err = svc.Login(ctx, "coach@example.com", "n3wpass")
	require.NoError(t, err)
}

func TestUpdateRejectsEmptyFields(t *testing.T) {
	svc, _, _ := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "coach", "coach@example.com", "s3cret", "")
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(ctx, user.ID, service.UserUpdate{Pseudo: &empty, Email: &empty})
	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
	require.Contains(t, svcErr.Fields, "Pseudo is required")
	require.Contains(t, svcErr.Fields, "Email is required")
}

func TestDeleteUnknownUser(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, err := svc.Delete(context.Background(), 404)
	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 404, svcErr.Status)
}
