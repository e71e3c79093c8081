package handler

import (
	"log/slog"
	"net/http"

	"organizer/internal/delivery/http/middleware"
	"organizer/internal/delivery/http/response"
	"organizer/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type resendEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Me returns the authenticated user's profile.
func (h *UserHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)

	return response.Success(c, http.StatusOK, toUserView(user), "")
}

// Admin is reachable only through the admin role gate; it exists so the
// authorization path has an observable endpoint.
func (h *UserHandler) Admin(c echo.Context) error {
	user := middleware.CurrentUser(c)

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Hello, admin " + user.Username,
	}, "")
}

// ConfirmEmail consumes the confirmation token embedded in the emailed link.
func (h *UserHandler) ConfirmEmail(c echo.Context) error {
	message, err := h.uc.ConfirmEmail(c.Request().Context(), c.Param("token"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": message}, "")
}

// ResendEmail requests a fresh confirmation email.
func (h *UserHandler) ResendEmail(c echo.Context) error {
	var req resendEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resend input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.uc.ResendConfirmation(c.Request().Context(), usecase.ResendConfirmationInput{
		Email:          req.Email,
		ConfirmBaseURL: confirmBaseURL(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": message}, "")
}

// UpdateAvatar replaces the authenticated user's avatar with the uploaded file.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	user := middleware.CurrentUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Avatar file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded avatar")
	}
	defer file.Close()

	updated, err := h.uc.UpdateAvatar(c.Request().Context(), usecase.UpdateAvatarInput{
		Email:       user.Email,
		Username:    user.Username,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(updated), "Avatar updated successfully")
}
