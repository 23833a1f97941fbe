package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService(testSecret, time.Hour)
	id := uuid.New()

	tok, err := svc.GenerateAccessToken(id, "seeker@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "seeker@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService(testSecret, time.Minute)
	issued := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issued }

	tok, err := svc.GenerateAccessToken(uuid.New(), "")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_WrongSecret(t *testing.T) {
	tok, err := NewHMACService(testSecret, time.Hour).GenerateAccessToken(uuid.New(), "")
	require.NoError(t, err)

	_, err = NewHMACService("another-secret-of-sufficient-len", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_RejectsRefreshTokens(t *testing.T) {
	c := Claims{
		UserID:    uuid.New(),
		TokenType: TokenTypeRefresh,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewHMACService(testSecret, time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_Garbage(t *testing.T) {
	_, err := NewHMACService(testSecret, time.Hour).ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_GenerateRequiresConfig(t *testing.T) {
	_, err := NewHMACService("", time.Hour).GenerateAccessToken(uuid.New(), "")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = NewHMACService(testSecret, 0).GenerateAccessToken(uuid.New(), "")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
