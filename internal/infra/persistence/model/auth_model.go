package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthenticationModel mirrors the 'user_authentications' table.
type AuthenticationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_auth_provider_provider_user_id"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_auth_provider_provider_user_id"`
	PasswordHash   string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthenticationModel) TableName() string {
	return "user_authentications"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *AuthenticationModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
