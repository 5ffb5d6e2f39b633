// Package model holds the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 generated on insert.
type UserModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName   string    `gorm:"type:varchar(100);not null"`
	Username   string    `gorm:"type:varchar(100)"`
	ProfilePic string    `gorm:"type:text"`
	Bio        string    `gorm:"type:text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}

func assignID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}
