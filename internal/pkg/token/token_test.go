package token

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	codec := New("test-secret-123", 15*time.Minute)

	raw, err := codec.CreateAccessToken("jonas", 42, []string{"beekeeper"})
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := codec.ParseAccessToken(raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jonas", claims.Username)
	assert.Equal(t, []string{"beekeeper"}, claims.Roles)
	assert.Equal(t, "42", claims.Subject)
}

func TestAccessToken_WrongKey(t *testing.T) {
	codec := New("right-secret", 15*time.Minute)
	other := New("wrong-secret", 15*time.Minute)

	raw, err := codec.CreateAccessToken("jonas", 42, []string{"beekeeper"})
	require.NoError(t, err)

	_, err = other.ParseAccessToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessToken_Expired(t *testing.T) {
	codec := New("test-secret-123", -1*time.Minute)

	raw, err := codec.CreateAccessToken("jonas", 42, []string{"beekeeper"})
	require.NoError(t, err)

	_, err = codec.ParseAccessToken(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	codec := New("test-secret-123", 15*time.Minute)

	expiresAt := time.Now().Add(72 * time.Hour)
	raw, err := codec.CreateRefreshToken("sess-id-1", 42, expiresAt)
	require.NoError(t, err)

	claims, ok := codec.TryParseRefreshToken(raw)
	require.True(t, ok)
	assert.Equal(t, "sess-id-1", claims.SessionID)
	assert.Equal(t, int64(42), claims.UserID)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
}

func TestRefreshToken_UniquePerMint(t *testing.T) {
	codec := New("test-secret-123", 15*time.Minute)

	// Identical arguments within the same second must still yield distinct
	// tokens, otherwise rotation cannot distinguish new from old.
	expiresAt := time.Now().Truncate(time.Second).Add(72 * time.Hour)
	first, err := codec.CreateRefreshToken("sess-id-1", 42, expiresAt)
	require.NoError(t, err)
	second, err := codec.CreateRefreshToken("sess-id-1", 42, expiresAt)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	firstClaims, ok := codec.TryParseRefreshToken(first)
	require.True(t, ok)
	secondClaims, ok := codec.TryParseRefreshToken(second)
	require.True(t, ok)
	assert.Equal(t, firstClaims.SessionID, secondClaims.SessionID)
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestRefreshToken_Garbage(t *testing.T) {
	codec := New("test-secret-123", 15*time.Minute)

	_, ok := codec.TryParseRefreshToken("not-a-jwt-at-all")
	assert.False(t, ok)

	_, ok = codec.TryParseRefreshToken("")
	assert.False(t, ok)
}

func TestRefreshToken_Expired(t *testing.T) {
	codec := New("test-secret-123", 15*time.Minute)

	raw, err := codec.CreateRefreshToken("sess-id-1", 42, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, ok := codec.TryParseRefreshToken(raw)
	assert.False(t, ok)
}

func TestRefreshToken_WrongKey(t *testing.T) {
	codec := New("right-secret", 15*time.Minute)
	other := New("wrong-secret", 15*time.Minute)

	raw, err := codec.CreateRefreshToken("sess-id-1", 42, time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, ok := other.TryParseRefreshToken(raw)
	assert.False(t, ok)
}

func TestRefreshToken_MissingSessionID(t *testing.T) {
	codec := New("test-secret-123", 15*time.Minute)

	// A refresh-shaped token without a session id must not parse,
	// even with a valid signature.
	claims := RefreshClaims{
		UserID: 42,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret-123"))
	require.NoError(t, err)

	_, ok := codec.TryParseRefreshToken(raw)
	assert.False(t, ok)
}

func TestRefreshToken_AlgNoneRejected(t *testing.T) {
	codec := New("test-secret-123", 15*time.Minute)

	claims := RefreshClaims{
		UserID:    42,
		SessionID: "sess-id-1",
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, ok := codec.TryParseRefreshToken(raw)
	assert.False(t, ok)
}
