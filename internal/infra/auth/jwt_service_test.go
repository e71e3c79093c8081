package auth

import (
	"testing"
	"time"

	"organizer/config"
	"organizer/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string, accessTTL, emailTTL time.Duration) service.TokenService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{
			Secret:         secret,
			AccessTokenTTL: accessTTL,
			EmailTokenTTL:  emailTTL,
		},
	})
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", 30*time.Minute, time.Hour)

	token, err := svc.GenerateAccessToken(42)
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt, 5*time.Second)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt, 5*time.Second)
}

func TestJWTService_EmailTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", 30*time.Minute, 7*24*time.Hour)

	token, err := svc.GenerateEmailToken("walter@example.com")
	require.NoError(t, err)

	email, err := svc.ParseEmailToken(token)
	require.NoError(t, err)
	assert.Equal(t, "walter@example.com", email)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, "secret-one", time.Minute, time.Minute)
	verifier := newTestTokenService(t, "secret-two", time.Minute, time.Minute)

	token, err := issuer.GenerateAccessToken(42)
	require.NoError(t, err)

	_, err = verifier.ParseAccessToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", -time.Minute, -time.Minute)

	token, err := svc.GenerateAccessToken(42)
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Minute, time.Minute)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.ParseAccessToken(tokenString)
		assert.ErrorIs(t, err, service.ErrInvalidToken, "token %q", tokenString)
	}
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", time.Minute, time.Minute)

	token, err := svc.GenerateAccessToken(42)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.ParseAccessToken(tampered)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestTokenClaims_RemainingTTL(t *testing.T) {
	now := time.Now()
	claims := &service.TokenClaims{ExpiresAt: now.Add(10 * time.Minute)}

	assert.Equal(t, 10*time.Minute, claims.RemainingTTL(now))
	assert.Negative(t, claims.RemainingTTL(now.Add(11*time.Minute)))
}
