package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/siphore/huddle-api/internal/domain"
	"github.com/siphore/huddle-api/internal/password"
	"github.com/siphore/huddle-api/internal/repository"
	"github.com/siphore/huddle-api/internal/token"
)

// invalidCredentials is returned for both unknown email and wrong password
// so a caller cannot tell which of the two failed.
const invalidCredentials = "Invalid email or password"

// invalidToken is the single message for every verification failure:
// missing header, malformed header, bad signature, expired, or revoked.
const invalidToken = "Your token is invalid or has expired"

// Session is what a successful login hands back to the client.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	UserID    int64     `json:"userId,string"`
}

// UserUpdate is a partial update: nil fields are untouched, present but
// empty strings are rejected.
type UserUpdate struct {
	Pseudo   *string `json:"pseudo"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// AuthService owns user accounts and the session token lifecycle.
type AuthService struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
	signer *token.Signer
	node   *snowflake.Node
	logger *zap.Logger
	tracer trace.Tracer
}

// NewAuthService wires dependencies.
func NewAuthService(users repository.UserRepository, tokens repository.TokenRepository, signer *token.Signer, node *snowflake.Node, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		signer: signer,
		node:   node,
		logger: logger,
		tracer: otel.Tracer("github.com/siphore/huddle-api/internal/service"),
	}
}

// Register creates a user account with a hashed password.
func (s *AuthService) Register(ctx context.Context, pseudo, email, plaintext, role string) (domain.User, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Register")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))
	pseudo = strings.TrimSpace(pseudo)

	var fields []string
	if pseudo == "" {
		fields = append(fields, "Pseudo is required")
	} else if len(pseudo) > 16 {
		fields = append(fields, "Pseudo must not exceed 16 characters")
	}
	if email == "" {
		fields = append(fields, "Email is required")
	} else if !domain.ValidEmail(email) {
		fields = append(fields, "Please provide a valid email")
	}
	if plaintext == "" {
		fields = append(fields, "Password is required")
	}
	userRole := domain.RoleRegular
	if role != "" {
		userRole = domain.Role(role)
		if !userRole.Valid() {
			fields = append(fields, "Role must be admin, regular or institution")
		}
	}
	if len(fields) > 0 {
		return domain.User{}, newValidationError(fields)
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return domain.User{}, err
	}

	created, err := s.users.Create(ctx, domain.User{
		ID:           s.node.Generate().Int64(),
		Pseudo:       pseudo,
		Email:        email,
		PasswordHash: hash,
		Role:         userRole,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.User{}, newConflictError("Email already registered")
		}
		return domain.User{}, err
	}

	s.logger.Info("user registered", zap.Int64("user_id", created.ID))
	return created, nil
}

// Login verifies credentials, mints a signed token, and persists the
// matching store record that makes later revocation possible.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (Session, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return Session{}, newUnauthorizedError(invalidCredentials)
	}

	valid, err := password.Verify(plaintext, user.PasswordHash)
	if err != nil || !valid {
		return Session{}, newUnauthorizedError(invalidCredentials)
	}

	now := time.Now()
	signed, expiresAt, err := s.signer.Sign(user.ID, now)
	if err != nil {
		return Session{}, err
	}

	if err := s.tokens.Insert(ctx, domain.SessionToken{
		Token:     signed,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}); err != nil {
		return Session{}, err
	}

	s.logger.Info("login", zap.Int64("user_id", user.ID))
	return Session{Token: signed, ExpiresAt: expiresAt, UserID: user.ID}, nil
}

// Logout revokes the presented token. Revocation is unauthenticated: the
// contract relies on tokens being unguessable.
func (s *AuthService) Logout(ctx context.Context, raw string) error {
	ctx, span := s.tracer.Start(ctx, "AuthService.Logout")
	defer span.End()

	if raw == "" {
		return newBadRequestError("Token was not provided")
	}
	if err := s.tokens.Delete(ctx, raw); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return newNotFoundError("Token not found")
		}
		return err
	}
	return nil
}

// Authenticate resolves a bearer token to its user. A signature-valid
// token is rejected unless an unexpired record still exists in the store.
func (s *AuthService) Authenticate(ctx context.Context, raw string) (domain.User, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Authenticate")
	defer span.End()

	now := time.Now()
	userID, err := s.signer.Verify(raw, now)
	if err != nil {
		return domain.User{}, newUnauthorizedError(invalidToken)
	}

	stored, err := s.tokens.Get(ctx, raw)
	if err != nil || stored.Expired(now) {
		return domain.User{}, newUnauthorizedError(invalidToken)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, newNotFoundError("User not found")
		}
		return domain.User{}, err
	}

	return user, nil
}

// List returns every user sorted by pseudo. Password hashes never leave
// the domain layer serialized.
func (s *AuthService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Get returns one user by id.
func (s *AuthService) Get(ctx context.Context, id int64) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, newNotFoundError("User not found")
		}
		return domain.User{}, err
	}
	return user, nil
}

// Update applies a partial update field by field. Submitting an empty
// string for any field is a validation error, mirroring required-field
// rules on create.
func (s *AuthService) Update(ctx context.Context, id int64, update UserUpdate) (domain.User, error) {
	ctx, span := s.tracer.Start(ctx, "AuthService.Update")
	defer span.End()

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, newNotFoundError("User not found")
		}
		return domain.User{}, err
	}

	var fields []string
	if update.Pseudo != nil {
		pseudo := strings.TrimSpace(*update.Pseudo)
		switch {
		case pseudo == "":
			fields = append(fields, "Pseudo is required")
		case len(pseudo) > 16:
			fields = append(fields, "Pseudo must not exceed 16 characters")
		default:
			user.Pseudo = pseudo
		}
	}
	if update.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*update.Email))
		switch {
		case email == "":
			fields = append(fields, "Email is required")
		case !domain.ValidEmail(email):
			fields = append(fields, "Please provide a valid email")
		default:
			user.Email = email
		}
	}
	if update.Password != nil {
		if strings.TrimSpace(*update.Password) == "" {
			fields = append(fields, "Password is required")
		} else {
			hash, err := password.Hash(*update.Password)
			if err != nil {
				return domain.User{}, err
			}
			user.PasswordHash = hash
		}
	}
	if update.Role != nil {
		role := domain.Role(*update.Role)
		if !role.Valid() {
			fields = append(fields, "Role must be admin, regular or institution")
		} else {
			user.Role = role
		}
	}
	if len(fields) > 0 {
		return domain.User{}, newValidationError(fields)
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.User{}, newConflictError("Email already registered")
		}
		return domain.User{}, err
	}
	return updated, nil
}

// Delete removes a user account and returns the deleted record.
func (s *AuthService) Delete(ctx context.Context, id int64) (domain.User, error) {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, newNotFoundError("User not found")
		}
		return domain.User{}, err
	}
	s.logger.Info("user deleted", zap.Int64("user_id", id))
	return deleted, nil
}
