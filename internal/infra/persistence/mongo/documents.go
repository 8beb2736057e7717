package mongo

import (
	"encoding/json"
	"time"

	"dashkeep/internal/domain/entity"
	"dashkeep/internal/errors"

	"github.com/google/uuid"
)

// IDs are stored as canonical UUID strings.

type accountDocument struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type profileDocument struct {
	AccountID  string    `bson:"_id"`
	FullName   string    `bson:"full_name"`
	Phone      string    `bson:"phone"`
	NationalID string    `bson:"national_id"`
	CreatedAt  time.Time `bson:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

// dashboardDocument keeps the payload as JSON text so it round-trips byte for byte.
type dashboardDocument struct {
	ID          string    `bson:"_id"`
	OwnerID     string    `bson:"owner_id"`
	Data        string    `bson:"data"`
	LastUpdated time.Time `bson:"last_updated"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func fromAccountDomain(a *entity.Account) *accountDocument {
	return &accountDocument{
		ID:           a.ID.String(),
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (d *accountDocument) toDomain() (*entity.Account, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid account id %q", d.ID)
	}

	return &entity.Account{
		ID:           id,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

func fromProfileDomain(p *entity.Profile) *profileDocument {
	return &profileDocument{
		AccountID:  p.AccountID.String(),
		FullName:   p.FullName,
		Phone:      p.Phone,
		NationalID: p.NationalID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (d *profileDocument) toDomain() (*entity.Profile, error) {
	id, err := uuid.Parse(d.AccountID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid profile account id %q", d.AccountID)
	}

	return &entity.Profile{
		AccountID:  id,
		FullName:   d.FullName,
		Phone:      d.Phone,
		NationalID: d.NationalID,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}, nil
}

func (d *dashboardDocument) toDomain() (*entity.Dashboard, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid dashboard id %q", d.ID)
	}
	ownerID, err := uuid.Parse(d.OwnerID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid dashboard owner id %q", d.OwnerID)
	}

	return &entity.Dashboard{
		ID:          id,
		OwnerID:     ownerID,
		Data:        json.RawMessage(d.Data),
		LastUpdated: d.LastUpdated.UTC(),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}, nil
}
