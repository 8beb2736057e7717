package postgres

import (
	"encoding/json"
	"time"

	"dashkeep/internal/domain/entity"
	"dashkeep/internal/infra/persistence/model"
)

// --- Mapper Functions ---

func toAccountDomain(m *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromAccountDomain(a *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           a.ID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toProfileDomain(m *model.ProfileModel) *entity.Profile {
	return &entity.Profile{
		AccountID:  m.AccountID,
		FullName:   m.FullName,
		Phone:      m.Phone,
		NationalID: m.NationalID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromProfileDomain(p *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		AccountID:  p.AccountID,
		FullName:   p.FullName,
		Phone:      p.Phone,
		NationalID: p.NationalID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toDashboardDomain(m *model.DashboardModel) *entity.Dashboard {
	return &entity.Dashboard{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Data:        json.RawMessage(m.Data),
		LastUpdated: m.LastUpdated.UTC(),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromDashboardDomain(d *entity.Dashboard) *model.DashboardModel {
	lastUpdated := d.LastUpdated
	if lastUpdated.IsZero() {
		lastUpdated = time.Now().UTC()
	}

	return &model.DashboardModel{
		ID:          d.ID,
		OwnerID:     d.OwnerID,
		Data:        model.JSONB(d.Data),
		LastUpdated: lastUpdated,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
