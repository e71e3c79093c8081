// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"organizer/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// userView is the outward shape of an account. The password hash never
// leaves the service.
type userView struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	EmailConfirmed bool      `json:"email_confirmed"`
	Role           string    `json:"role"`
	Avatar         *string   `json:"avatar,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		EmailConfirmed: user.EmailConfirmed,
		Role:           user.Role.String(),
		Avatar:         user.Avatar,
		CreatedAt:      user.CreatedAt,
	}
}

// contactView is the outward shape of a contact entry.
type contactView struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       *string `json:"email,omitempty"`
	Phone       *int64  `json:"phone,omitempty"`
	BirthDate   string  `json:"birth_date"`
	Description *string `json:"description,omitempty"`
}

func toContactView(contact *entity.Contact) contactView {
	return contactView{
		ID:          contact.ID,
		FirstName:   contact.FirstName,
		LastName:    contact.LastName,
		Email:       contact.Email,
		Phone:       contact.Phone,
		BirthDate:   contact.BirthDate.Format(time.DateOnly),
		Description: contact.Description,
	}
}

func toContactViews(contacts []*entity.Contact) []contactView {
	views := make([]contactView, 0, len(contacts))
	for _, contact := range contacts {
		views = append(views, toContactView(contact))
	}

	return views
}

// confirmBaseURL reconstructs the externally visible base URL of the
// request, used to build links that point back at this service.
func confirmBaseURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}
