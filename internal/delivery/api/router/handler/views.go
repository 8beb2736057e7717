package handler

import (
	"encoding/json"
	"time"

	"dashkeep/internal/domain/entity"

	"github.com/google/uuid"
)

// Request field names follow the public API, which predates this service.

type registerRequest struct {
	FullName   string `json:"nome_completo" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"telefone" validate:"required,phone"`
	NationalID string `json:"cpf" validate:"required,national_id"`
	Password   string `json:"senha" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

// dashboardRequest ignores every top-level key except data, including any owner.
type dashboardRequest struct {
	Data json.RawMessage `json:"data"`
}

type profileView struct {
	FullName   string `json:"nome_completo"`
	Phone      string `json:"telefone"`
	NationalID string `json:"cpf"`
}

type userView struct {
	ID      uuid.UUID    `json:"id"`
	Email   string       `json:"email"`
	Profile *profileView `json:"profile"`
}

type sessionView struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      userView  `json:"user"`
}

type dashboardView struct {
	ID          uuid.UUID       `json:"id"`
	Owner       uuid.UUID       `json:"owner"`
	Data        json.RawMessage `json:"data"`
	LastUpdated time.Time       `json:"lastUpdated"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func newUserView(account *entity.Account, profile *entity.Profile) userView {
	view := userView{ID: account.ID, Email: account.Email}
	if profile != nil {
		view.Profile = &profileView{
			FullName:   profile.FullName,
			Phone:      profile.Phone,
			NationalID: profile.NationalID,
		}
	}

	return view
}

func newDashboardView(d *entity.Dashboard) dashboardView {
	return dashboardView{
		ID:          d.ID,
		Owner:       d.OwnerID,
		Data:        d.Data,
		LastUpdated: d.LastUpdated,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
