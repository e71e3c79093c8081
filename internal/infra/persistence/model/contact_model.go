package model

import (
	"time"
)

// ContactModel mirrors the 'contacts' table. At least one of email or phone
// must be present; the delivery layer rejects payloads with neither.
type ContactModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      int64     `gorm:"not null;index"`
	FirstName   string    `gorm:"type:varchar(50);not null"`
	LastName    string    `gorm:"type:varchar(50);not null"`
	Email       *string   `gorm:"type:varchar(255)"`
	Phone       *int64    `gorm:""`
	BirthDate   time.Time `gorm:"type:date;not null;index"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
