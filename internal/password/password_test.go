package password_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/siphore/huddle-api/internal/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)
	require.Contains(t, hash, "$argon2id$")

	ok, err := password.Verify("s3cret", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = password.Verify("wrong", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("s3cret")
	require.NoError(t, err)
	second, err := password.Hash("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	_, err := password.Verify("s3cret", "not-a-hash")
	require.Error(t, err)

	_, err = password.Verify("s3cret", "$bcrypt$v=19$m=1,t=1,p=1$abc$def")
	require.Error(t, err)
}
