package postgres

import (
	"context"
	"time"

	"organizer/internal/domain/entity"
	domainerrors "organizer/internal/domain/errors"
	"organizer/internal/domain/repository"
	"organizer/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactRepository implements the domain.ContactRepository interface using GORM.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

// List retrieves the user's contacts, optionally filtered by name or email.
func (repo *contactRepository) List(ctx context.Context, userID int64, filter repository.ContactFilter) ([]*entity.Contact, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)

	// Case-insensitive equality; ILIKE would treat % and _ in the input as
	// wildcards.
	if filter.FirstName != "" {
		query = query.Where("LOWER(first_name) = LOWER(?)", filter.FirstName)
	}
	if filter.LastName != "" {
		query = query.Where("LOWER(last_name) = LOWER(?)", filter.LastName)
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var contactMs []*model.ContactModel
	if err := query.Order("id").Find(&contactMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	contacts := make([]*entity.Contact, 0, len(contactMs))
	for _, contactM := range contactMs {
		contacts = append(contacts, toContactDomain(contactM))
	}

	return contacts, nil
}

// FindByID retrieves a single contact owned by the given user.
func (repo *contactRepository) FindByID(ctx context.Context, userID, contactID int64) (*entity.Contact, error) {
	var contactM model.ContactModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, contactID).
		First(&contactM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by id")
	}

	return toContactDomain(&contactM), nil
}

// Create persists a new contact entity and backfills the generated ID and timestamps.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("missing required contact information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
	}

	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// Update modifies an existing contact owned by the given user.
func (repo *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)

	result := repo.db.WithContext(ctx).
		Model(&model.ContactModel{}).
		Where("user_id = ? AND id = ?", contact.UserID, contact.ID).
		Updates(map[string]any{
			"first_name":  contactM.FirstName,
			"last_name":   contactM.LastName,
			"email":       contactM.Email,
			"phone":       contactM.Phone,
			"birth_date":  contactM.BirthDate,
			"description": contactM.Description,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// Delete removes a contact owned by the given user.
func (repo *contactRepository) Delete(ctx context.Context, userID, contactID int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, contactID).
		Delete(&model.ContactModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}

// UpcomingBirthdays returns contacts whose birthday (month and day, any year)
// falls within the next `days` days, ordered by how soon the birthday occurs.
// A window that crosses the end of the year is split into two month/day ranges.
func (repo *contactRepository) UpcomingBirthdays(ctx context.Context, userID int64, days, limit, offset int) ([]*entity.Contact, error) {
	windows := birthdayWindows(time.Now(), days)

	contacts := make([]*entity.Contact, 0)
	for _, window := range windows {
		var contactMs []*model.ContactModel
		err := repo.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Where(
				"(EXTRACT(MONTH FROM birth_date), EXTRACT(DAY FROM birth_date)) BETWEEN (?, ?) AND (?, ?)",
				window.fromMonth, window.fromDay, window.toMonth, window.toDay,
			).
			Order("EXTRACT(MONTH FROM birth_date), EXTRACT(DAY FROM birth_date), id").
			Find(&contactMs).Error
		if err != nil {
			return nil, errors.Wrap(err, "failed to query upcoming birthdays")
		}

		for _, contactM := range contactMs {
			contacts = append(contacts, toContactDomain(contactM))
		}
	}

	return paginate(contacts, limit, offset), nil
}

// birthdayWindow is an inclusive month/day range within a single calendar year.
type birthdayWindow struct {
	fromMonth, fromDay int
	toMonth, toDay     int
}

// birthdayWindows computes the month/day ranges covering [start, start+days].
// When the range crosses December 31 it is returned as two windows in
// chronological order, so callers see year-end birthdays before January ones.
func birthdayWindows(start time.Time, days int) []birthdayWindow {
	end := start.AddDate(0, 0, days)

	if start.Year() == end.Year() {
		return []birthdayWindow{{
			fromMonth: int(start.Month()), fromDay: start.Day(),
			toMonth: int(end.Month()), toDay: end.Day(),
		}}
	}

	return []birthdayWindow{
		{
			fromMonth: int(start.Month()), fromDay: start.Day(),
			toMonth: 12, toDay: 31,
		},
		{
			fromMonth: 1, fromDay: 1,
			toMonth: int(end.Month()), toDay: end.Day(),
		},
	}
}

// paginate applies offset and limit to an already-ordered result set.
func paginate(contacts []*entity.Contact, limit, offset int) []*entity.Contact {
	if offset >= len(contacts) {
		return []*entity.Contact{}
	}
	contacts = contacts[offset:]
	if limit > 0 && limit < len(contacts) {
		contacts = contacts[:limit]
	}

	return contacts
}

// toContactDomain converts a GORM ContactModel to a domain Contact entity.
func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:          data.ID,
		UserID:      data.UserID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		Phone:       data.Phone,
		BirthDate:   data.BirthDate,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromContactDomain converts a domain Contact entity to a GORM ContactModel.
func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:          data.ID,
		UserID:      data.UserID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		Phone:       data.Phone,
		BirthDate:   data.BirthDate,
		Description: data.Description,
	}
}
