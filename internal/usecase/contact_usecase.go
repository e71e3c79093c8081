package usecase

import (
	"context"
	"time"

	"organizer/internal/domain/entity"
	"organizer/internal/domain/repository"
)

// ContactInput defines the data for creating or fully replacing a contact.
// At least one of Email or Phone must be set.
type ContactInput struct {
	FirstName   string
	LastName    string
	Email       *string
	Phone       *int64
	BirthDate   time.Time
	Description *string
}

// ContactUsecase defines the interface for contact-book operations.
// Every operation is scoped to the owning user's ID.
type ContactUsecase interface {
	List(ctx context.Context, userID int64, filter repository.ContactFilter) ([]*entity.Contact, error)
	Get(ctx context.Context, userID, contactID int64) (*entity.Contact, error)
	Create(ctx context.Context, userID int64, input ContactInput) (*entity.Contact, error)
	Update(ctx context.Context, userID, contactID int64, input ContactInput) (*entity.Contact, error)
	Delete(ctx context.Context, userID, contactID int64) error

	// UpcomingBirthdays lists contacts whose birthday falls within the next
	// `days` days, including windows that wrap past the end of the year.
	UpcomingBirthdays(ctx context.Context, userID int64, days, limit, offset int) ([]*entity.Contact, error)
}
