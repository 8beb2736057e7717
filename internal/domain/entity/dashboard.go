package entity

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Dashboard is the single opaque JSON document owned by an account.
type Dashboard struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Data        json.RawMessage // Always a JSON object.
	LastUpdated time.Time       // Set on every write.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// defaultDashboard is the payload every new dashboard starts with.
const defaultDashboard = `{"boletos":[],"configuracoes":{"tema":"claro","notificacoes":true,"idioma":"pt-BR"},"metas":[],"estatisticas":{"totalBoletos":0,"boletosPagos":0,"boletosPendentes":0,"valorTotal":0}}`

// DefaultDashboardData returns a fresh copy of the payload used for every newly created dashboard.
func DefaultDashboardData() json.RawMessage {
	return json.RawMessage(defaultDashboard)
}

// NewDashboard builds a dashboard for ownerID holding data.
func NewDashboard(ownerID uuid.UUID, data json.RawMessage) *Dashboard {
	now := time.Now().UTC()

	return &Dashboard{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Data:        data,
		LastUpdated: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsJSONObject reports whether data is a syntactically valid JSON object.
func IsJSONObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}

	return json.Valid(trimmed)
}
