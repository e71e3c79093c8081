package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"organizer/internal/delivery/http/middleware"
	"organizer/internal/delivery/http/response"
	"organizer/internal/domain/repository"
	"organizer/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultBirthdayDays = 7
	defaultPageLimit    = 100
)

// ContactHandler holds dependencies for contact-book handlers.
type ContactHandler struct {
	uc     usecase.ContactUsecase
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		uc:     uc,
		logger: logger,
	}
}

type contactRequest struct {
	FirstName   string  `json:"first_name" validate:"required,max=50"`
	LastName    string  `json:"last_name" validate:"required,max=50"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *int64  `json:"phone"`
	BirthDate   string  `json:"birth_date" validate:"required"`
	Description *string `json:"description"`
}

func (req *contactRequest) toInput() (usecase.ContactInput, error) {
	birthDate, err := time.Parse(time.DateOnly, req.BirthDate)
	if err != nil {
		return usecase.ContactInput{}, errors.New("birth_date must be in YYYY-MM-DD format")
	}

	if req.Email == nil && req.Phone == nil {
		return usecase.ContactInput{}, errors.New("at least one of email or phone is required")
	}

	return usecase.ContactInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		BirthDate:   birthDate,
		Description: req.Description,
	}, nil
}

// List returns the user's contacts, optionally filtered by name or email.
func (h *ContactHandler) List(c echo.Context) error {
	user := middleware.CurrentUser(c)

	filter := repository.ContactFilter{
		FirstName: c.QueryParam("first_name"),
		LastName:  c.QueryParam("last_name"),
		Email:     c.QueryParam("email"),
		Limit:     queryInt(c, "limit", defaultPageLimit),
		Offset:    queryInt(c, "offset", 0),
	}

	contacts, err := h.uc.List(c.Request().Context(), user.ID, filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactViews(contacts), "")
}

// Get returns a single contact by id.
func (h *ContactHandler) Get(c echo.Context) error {
	user := middleware.CurrentUser(c)

	contactID, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Contact id must be an integer")
	}

	contact, err := h.uc.Get(c.Request().Context(), user.ID, contactID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactView(contact), "")
}

// Create adds a new contact to the user's book.
func (h *ContactHandler) Create(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.UnprocessableEntity(c, "INVALID_INPUT", err.Error())
	}

	contact, err := h.uc.Create(c.Request().Context(), user.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toContactView(contact), "Contact created successfully")
}

// Update fully replaces an existing contact.
func (h *ContactHandler) Update(c echo.Context) error {
	user := middleware.CurrentUser(c)

	contactID, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Contact id must be an integer")
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.UnprocessableEntity(c, "INVALID_INPUT", err.Error())
	}

	contact, err := h.uc.Update(c.Request().Context(), user.ID, contactID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactView(contact), "Contact updated successfully")
}

// Delete removes a contact from the user's book.
func (h *ContactHandler) Delete(c echo.Context) error {
	user := middleware.CurrentUser(c)

	contactID, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Contact id must be an integer")
	}

	if err := h.uc.Delete(c.Request().Context(), user.ID, contactID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Birthdays lists contacts whose birthday falls within the next `days` days.
func (h *ContactHandler) Birthdays(c echo.Context) error {
	user := middleware.CurrentUser(c)

	days := queryInt(c, "days", defaultBirthdayDays)
	if days < 1 || days > 365 {
		return response.BadRequest(c, "INVALID_INPUT", "days must be between 1 and 365")
	}

	contacts, err := h.uc.UpcomingBirthdays(
		c.Request().Context(),
		user.ID,
		days,
		queryInt(c, "limit", defaultPageLimit),
		queryInt(c, "offset", 0),
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactViews(contacts), "")
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
