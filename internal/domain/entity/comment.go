package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reply to a blog. Only its author may change it.
type Comment struct {
	ID        uuid.UUID      `json:"id"`
	BlogID    uuid.UUID      `json:"blog"`
	UserID    uuid.UUID      `json:"-"`
	Text      string         `json:"comment"`
	User      *PublicProfile `json:"user,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// OwnerID returns the author of the comment.
func (c *Comment) OwnerID() uuid.UUID {
	return c.UserID
}
