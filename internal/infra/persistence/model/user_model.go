package model

import (
	"time"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	Username       string  `gorm:"type:varchar(50);unique;not null"`
	Email          string  `gorm:"type:varchar(255);unique;not null"`
	EmailConfirmed bool    `gorm:"not null;default:false"`
	PasswordHash   string  `gorm:"type:varchar(255);not null"`
	Role           string  `gorm:"type:varchar(20);not null;default:'regular'"`
	Avatar         *string `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Contacts []ContactModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
