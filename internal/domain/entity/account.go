// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the login identity. Accounts are never deleted.
type Account struct {
	ID           uuid.UUID // Generated by the application before insert.
	Email        string    // Always stored normalized, see NormalizeEmail.
	PasswordHash string    // bcrypt hash; never serialized into a response.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile holds the personal data attached one-to-one to an Account.
type Profile struct {
	AccountID  uuid.UUID // Also the primary key.
	FullName   string
	Phone      string // Display form, e.g. "(11) 98765-4321".
	NationalID string // Exactly 11 digits.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewAccount builds an account with a fresh identifier.
func NewAccount(email, passwordHash string) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:           uuid.New(),
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewProfile builds the profile row for accountID. Phone and nationalID must already be normalized.
func NewProfile(accountID uuid.UUID, fullName, phone, nationalID string) *Profile {
	now := time.Now().UTC()

	return &Profile{
		AccountID:  accountID,
		FullName:   fullName,
		Phone:      phone,
		NationalID: nationalID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
