// Package token signs and verifies the bearer credentials issued at login.
//
// A signed token is necessary but not sufficient: callers must still check
// the session-token store, which is what makes revocation possible.
package token

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"time"

	gojose "github.com/go-jose/go-jose/v4"
	gojwt "github.com/go-jose/go-jose/v4/jwt"
)

// Signer mints and validates HS256 session tokens.
type Signer struct {
	key []byte
	ttl time.Duration
}

// NewSigner constructs a signer from the configured secret and token lifetime.
// The secret is hashed into a fixed 32-byte HMAC key, so operators may supply
// secrets of any length.
func NewSigner(secret string, ttl time.Duration) *Signer {
	key := sha256.Sum256([]byte(secret))
	return &Signer{key: key[:], ttl: ttl}
}

// Sign produces a signed token carrying the user id and an absolute expiry.
func (s *Signer) Sign(userID int64, now time.Time) (string, time.Time, error) {
	signer, err := gojose.NewSigner(
		gojose.SigningKey{Algorithm: gojose.HS256, Key: s.key},
		(&gojose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("new signer: %w", err)
	}

	now = now.UTC()
	expiresAt := now.Add(s.ttl)
	claims := gojwt.Claims{
		Subject:  strconv.FormatInt(userID, 10),
		IssuedAt: gojwt.NewNumericDate(now),
		Expiry:   gojwt.NewNumericDate(expiresAt),
	}

	signed, err := gojwt.Signed(signer).Claims(claims).Serialize()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("serialize token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify checks signature and expiry and returns the embedded user id.
// Malformed, forged, and expired tokens all fail the same way.
func (s *Signer) Verify(raw string, now time.Time) (int64, error) {
	parsed, err := gojwt.ParseSigned(raw, []gojose.SignatureAlgorithm{gojose.HS256})
	if err != nil {
		return 0, fmt.Errorf("parse token: %w", err)
	}

	var claims gojwt.Claims
	if err := parsed.Claims(s.key, &claims); err != nil {
		return 0, fmt.Errorf("verify token: %w", err)
	}

	if err := claims.Validate(gojwt.Expected{Time: now}); err != nil {
		return 0, fmt.Errorf("validate claims: %w", err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subject claim: %w", err)
	}

	return userID, nil
}
