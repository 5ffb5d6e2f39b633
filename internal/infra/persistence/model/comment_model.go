package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentModel mirrors the 'comments' table.
type CommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BlogID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Blog *BlogModel `gorm:"foreignKey:BlogID"`
	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *CommentModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
