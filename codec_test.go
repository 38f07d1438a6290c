package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-session-auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimsCodecRoundTrip(t *testing.T) {
	codec := auth.NewClaimsCodec([]byte("test-signing-key"))

	now := time.Now()
	claims := auth.NewClaims("alice", "server-core", now, 10*time.Minute)

	token, err := codec.Sign(claims)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(token, auth.SchemeBearer))

	parsed, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", parsed.Subject())
	assert.Equal(t, "server-core", parsed.Issuer())
	assert.WithinDuration(t, now, parsed.IssuedAt(), time.Second)
	assert.WithinDuration(t, now.Add(10*time.Minute), parsed.Expires(), time.Second)
}

func TestClaimsCodecSchemeHandling(t *testing.T) {
	codec := auth.NewClaimsCodec([]byte("test-signing-key"))

	token, err := codec.Sign(auth.NewClaims("alice", "server-core", time.Now(), time.Minute))
	require.NoError(t, err)

	t.Run("accepts bare token without scheme label", func(t *testing.T) {
		bare := strings.TrimPrefix(token, auth.SchemeBearer)

		parsed, err := codec.Verify(bare)
		require.NoError(t, err)
		assert.Equal(t, "alice", parsed.Subject())
	})

	t.Run("scheme label match is case insensitive", func(t *testing.T) {
		lower := "bearer " + strings.TrimPrefix(token, auth.SchemeBearer)

		parsed, err := codec.Verify(lower)
		require.NoError(t, err)
		assert.Equal(t, "alice", parsed.Subject())
	})
}

func TestClaimsCodecWrongKey(t *testing.T) {
	issuer := auth.NewClaimsCodec([]byte("key-one"))
	verifier := auth.NewClaimsCodec([]byte("key-two"))

	token, err := issuer.Sign(auth.NewClaims("alice", "server-core", time.Now(), time.Minute))
	require.NoError(t, err)

	parsed, err := verifier.Verify(token)
	assert.Nil(t, parsed)
	assert.ErrorIs(t, err, auth.ErrBadSignature)
}

func TestClaimsCodecExpired(t *testing.T) {
	codec := auth.NewClaimsCodec([]byte("test-signing-key"))

	// anchored 20 minutes ago with a 10 minute lifetime
	stale := auth.NewClaims("alice", "server-core", time.Now().Add(-20*time.Minute), 10*time.Minute)

	token, err := codec.Sign(stale)
	require.NoError(t, err)

	parsed, err := codec.Verify(token)
	assert.Nil(t, parsed)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestClaimsCodecMalformed(t *testing.T) {
	codec := auth.NewClaimsCodec([]byte("test-signing-key"))

	for _, raw := range []string{
		"",
		"x",
		"Bearer ",
		"Bearer not-a-token",
		"Bearer malformed.token.structure",
	} {
		parsed, err := codec.Verify(raw)
		assert.Nil(t, parsed)
		assert.ErrorIs(t, err, auth.ErrTokenMalformed, "input %q", raw)
	}
}

func TestClaimsCodecSignNilClaims(t *testing.T) {
	codec := auth.NewClaimsCodec([]byte("test-signing-key"))

	token, err := codec.Sign(nil)
	assert.Empty(t, token)
	assert.Error(t, err)
}
