package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/siphore/huddle-api/internal/token"
)

func TestSignerRoundTrip(t *testing.T) {
	signer := token.NewSigner("secret", 24*time.Hour)
	now := time.Now()

	raw, expiresAt, err := signer.Sign(42, now)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	require.WithinDuration(t, now.Add(24*time.Hour), expiresAt, time.Second)

	userID, err := signer.Verify(raw, now)
	require.NoError(t, err)
	require.Equal(t, int64(42), userID)
}

func TestSignerAcceptsAnySecretLength(t *testing.T) {
	now := time.Now()
	for _, secret := range []string{"x", "short", "a-secret-comfortably-longer-than-thirty-two-bytes"} {
		signer := token.NewSigner(secret, time.Hour)

		raw, _, err := signer.Sign(7, now)
		require.NoError(t, err, "secret %q", secret)

		userID, err := signer.Verify(raw, now)
		require.NoError(t, err, "secret %q", secret)
		require.Equal(t, int64(7), userID)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	signer := token.NewSigner("secret", time.Minute)
	now := time.Now()

	raw, _, err := signer.Sign(42, now)
	require.NoError(t, err)

	_, err = signer.Verify(raw, now.Add(2*time.Minute))
	require.Error(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	signer := token.NewSigner("secret", time.Minute)
	raw, _, err := signer.Sign(42, time.Now())
	require.NoError(t, err)

	other := token.NewSigner("different", time.Minute)
	_, err = other.Verify(raw, time.Now())
	require.Error(t, err)
}

func TestVerifyMalformedToken(t *testing.T) {
	signer := token.NewSigner("secret", time.Minute)
	_, err := signer.Verify("not.a.token", time.Now())
	require.Error(t, err)
}
