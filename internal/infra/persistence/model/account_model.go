// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Unique constraint names. Repositories map them back to the conflicting field.
const (
	ConstraintAccountEmail      = "accounts_email_key"
	ConstraintProfileNationalID = "profiles_national_id_key"
	ConstraintDashboardOwner    = "dashboards_owner_id_key"
)

// AccountModel mirrors the 'accounts' table. IDs are generated by the application.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:accounts_email_key"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// ProfileModel mirrors the 'profiles' table. AccountID references accounts.id.
type ProfileModel struct {
	AccountID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName   string    `gorm:"type:varchar(100);not null"`
	Phone      string    `gorm:"type:varchar(20);not null"`
	NationalID string    `gorm:"type:char(11);not null;uniqueIndex:profiles_national_id_key"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
