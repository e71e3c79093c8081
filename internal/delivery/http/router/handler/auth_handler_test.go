package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"organizer/internal/delivery/http/middleware"
	"organizer/internal/domain/entity"
	"organizer/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthUsecase struct {
	revoked      []string
	resolveCalls int
}

func (f *fakeAuthUsecase) Register(context.Context, usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return nil, nil
}

func (f *fakeAuthUsecase) Login(context.Context, usecase.LoginInput) (*usecase.LoginOutput, error) {
	return nil, nil
}

func (f *fakeAuthUsecase) ResolveToken(context.Context, string) (*entity.User, error) {
	f.resolveCalls++
	return nil, nil
}

func (f *fakeAuthUsecase) RevokeToken(_ context.Context, token string) error {
	f.revoked = append(f.revoked, token)
	return nil
}

func newLogoutServer(t *testing.T) (*echo.Echo, *fakeAuthUsecase) {
	t.Helper()

	uc := &fakeAuthUsecase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(uc, logger)
	m := middleware.NewAuthMiddleware(uc)

	e := echo.New()
	e.POST("/api/v1/auth/logout", h.Logout, m.ExtractToken)

	return e, uc
}

func logoutRequest(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthHandler_Logout_NoContent(t *testing.T) {
	e, uc := newLogoutServer(t)

	rec := logoutRequest(e, "Bearer some-token")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	require.Equal(t, []string{"some-token"}, uc.revoked)
	assert.Zero(t, uc.resolveCalls, "logout must not resolve the token it is revoking")
}

// Logging out twice with the same token succeeds both times; the second
// call just refreshes the denylist record.
func TestAuthHandler_Logout_Repeated(t *testing.T) {
	e, uc := newLogoutServer(t)

	first := logoutRequest(e, "Bearer some-token")
	second := logoutRequest(e, "Bearer some-token")

	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, http.StatusNoContent, second.Code)
	assert.Equal(t, []string{"some-token", "some-token"}, uc.revoked)
}

func TestAuthHandler_Logout_MissingHeader(t *testing.T) {
	e, uc := newLogoutServer(t)

	rec := logoutRequest(e, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, uc.revoked)
}
