package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogModel mirrors the 'blogs' table. Tags are stored as a JSON array.
type BlogModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title      string    `gorm:"type:varchar(150);not null"`
	Content    string    `gorm:"type:text;not null"`
	Tags       []string  `gorm:"type:jsonb;serializer:json"`
	CoverImage string    `gorm:"type:text;not null;default:''"`
	Likes      int       `gorm:"not null;default:0"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}

// BeforeCreate assigns the primary key when the caller did not.
func (m *BlogModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
