package model

import (
	"database/sql/driver"
	"time"

	"dashkeep/internal/errors"

	"github.com/google/uuid"
)

// JSONB stores raw JSON bytes in a jsonb column.
type JSONB []byte

// Value implements driver.Valuer. The payload is sent as text so the server parses it.
func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}

	return string(j), nil
}

// Scan implements sql.Scanner.
func (j *JSONB) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = JSONB(v)
	default:
		return errors.Errorf("unsupported jsonb source type %T", src)
	}

	return nil
}

// GormDataType tells GORM which column type to use.
func (JSONB) GormDataType() string {
	return "jsonb"
}

// DashboardModel mirrors the 'dashboards' table. OwnerID is unique.
type DashboardModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:dashboards_owner_id_key"`
	Data        JSONB     `gorm:"type:jsonb;not null"`
	LastUpdated time.Time `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DashboardModel) TableName() string {
	return "dashboards"
}
