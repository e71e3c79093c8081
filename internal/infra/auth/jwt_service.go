// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"organizer/config"
	"organizer/internal/domain/service"
)

// jwtService implements the TokenService interface with HMAC-SHA256 signed
// JWTs. Access tokens and email-confirmation tokens share the secret and
// algorithm and differ only in subject and lifetime.
type jwtService struct {
	secret    []byte
	accessTTL time.Duration
	emailTTL  time.Duration
}

// NewJWTService is the constructor for jwtService. The signing secret is an
// explicit configuration value, never a process-wide global, so tests and
// environments can rotate it freely.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:    []byte(cfg.Auth.Secret),
		accessTTL: cfg.Auth.AccessTokenTTL,
		emailTTL:  cfg.Auth.EmailTokenTTL,
	}, nil
}

// GenerateAccessToken creates a signed access token for a user id.
func (s *jwtService) GenerateAccessToken(userID int64) (string, error) {
	return s.generateToken(strconv.FormatInt(userID, 10), s.accessTTL)
}

// ParseAccessToken verifies and decodes an access token.
func (s *jwtService) ParseAccessToken(tokenString string) (*service.TokenClaims, error) {
	return s.parseToken(tokenString)
}

// GenerateEmailToken creates a signed email-confirmation token.
func (s *jwtService) GenerateEmailToken(email string) (string, error) {
	return s.generateToken(email, s.emailTTL)
}

// ParseEmailToken verifies an email-confirmation token and returns the
// subject address.
func (s *jwtService) ParseEmailToken(tokenString string) (string, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return "", err
	}

	return claims.Subject, nil
}

// generateToken creates a JWT with the standard sub/iat/exp claim set.
func (s *jwtService) generateToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// parseToken verifies signature, structure and expiry. jwt/v5 enforces the
// exp claim with zero leeway, so an expired token fails here and never
// reaches the caller as valid claims.
func (s *jwtService) parseToken(tokenString string) (*service.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrapf(service.ErrInvalidToken, "parse token: %v", err)
	}

	registered, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return nil, errors.Wrap(service.ErrInvalidToken, "unexpected claims type")
	}
	if registered.ExpiresAt == nil {
		return nil, errors.Wrap(service.ErrInvalidToken, "missing expiry claim")
	}

	claims := &service.TokenClaims{
		Subject:   registered.Subject,
		ExpiresAt: registered.ExpiresAt.Time,
	}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}

	return claims, nil
}
