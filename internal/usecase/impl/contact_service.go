package impl

import (
	"context"
	"log/slog"

	deliverycontext "organizer/internal/delivery/context"
	"organizer/internal/domain/entity"
	domainerrors "organizer/internal/domain/errors"
	"organizer/internal/domain/repository"
	"organizer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *contactService) List(ctx context.Context, userID int64, filter repository.ContactFilter) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.List(ctx, userID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return contacts, nil
}

func (srv *contactService) Get(ctx context.Context, userID, contactID int64) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, userID, contactID)
	if err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to get contact")
	}

	return contact, nil
}

func (srv *contactService) Create(ctx context.Context, userID int64, input usecase.ContactInput) (*entity.Contact, error) {
	contact := contactFromInput(userID, input)

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Contact created",
		slog.Int64("userID", userID), slog.Int64("contactID", contact.ID))

	return contact, nil
}

func (srv *contactService) Update(ctx context.Context, userID, contactID int64, input usecase.ContactInput) (*entity.Contact, error) {
	contact := contactFromInput(userID, input)
	contact.ID = contactID

	if err := srv.contactRepo.Update(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.ErrContactNotFound
		}

		return nil, err
	}

	return srv.Get(ctx, userID, contactID)
}

func (srv *contactService) Delete(ctx context.Context, userID, contactID int64) error {
	if err := srv.contactRepo.Delete(ctx, userID, contactID); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return domainerrors.ErrContactNotFound
		}

		return err
	}

	srv.log(ctx).Info("Contact deleted",
		slog.Int64("userID", userID), slog.Int64("contactID", contactID))

	return nil
}

func (srv *contactService) UpcomingBirthdays(ctx context.Context, userID int64, days, limit, offset int) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.UpcomingBirthdays(ctx, userID, days, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list upcoming birthdays")
	}

	return contacts, nil
}

func contactFromInput(userID int64, input usecase.ContactInput) *entity.Contact {
	return &entity.Contact{
		UserID:      userID,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Phone:       input.Phone,
		BirthDate:   input.BirthDate,
		Description: input.Description,
	}
}
