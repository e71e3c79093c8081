// Package middleware contains HTTP middleware for the echo delivery.
package middleware

import (
	"strings"

	"organizer/internal/delivery/http/response"
	"organizer/internal/domain/entity"
	domainerrors "organizer/internal/domain/errors"
	"organizer/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// ContextKeyUser is where Authenticate stores the resolved *entity.User.
	ContextKeyUser = "user"

	// ContextKeyToken is where Authenticate stores the raw bearer token, so
	// logout can revoke exactly the token that was presented.
	ContextKeyToken = "token"
)

// AuthMiddleware guards routes behind bearer-token authentication.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the bearer token and loads the current user into
// the request context. The revocation check, signature check and user
// lookup all happen inside the use case, in that order.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return err
		}

		user, err := m.authUC.ResolveToken(c.Request().Context(), tokenString)
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyToken, tokenString)

		return next(c)
	}
}

// ExtractToken places the raw bearer token on the context without resolving
// it to a user. Logout uses it so an already revoked token can still be
// handed to the revocation use case instead of bouncing off the denylist.
func (m *AuthMiddleware) ExtractToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return err
		}

		c.Set(ContextKeyToken, tokenString)

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", response.Unauthorized(c, "AUTHORIZATION_MISSING", "Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", response.Unauthorized(c, "AUTHORIZATION_MALFORMED", "Invalid token format, must be Bearer token")
	}

	return tokenString, nil
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextKeyUser).(*entity.User)
			if !ok || user == nil {
				return domainerrors.ErrForbidden
			}

			if user.Role != requiredRole {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// CurrentUser extracts the authenticated user placed on the context by
// Authenticate. It returns nil when the route is not guarded.
func CurrentUser(c echo.Context) *entity.User {
	if user, ok := c.Get(ContextKeyUser).(*entity.User); ok {
		return user
	}

	return nil
}

// CurrentToken extracts the raw bearer token placed on the context by
// Authenticate.
func CurrentToken(c echo.Context) string {
	if token, ok := c.Get(ContextKeyToken).(string); ok {
		return token
	}

	return ""
}
