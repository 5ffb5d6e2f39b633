package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxTitleLength is the maximum number of characters in a blog title.
const MaxTitleLength = 150

// Blog is a post written by a single author.
type Blog struct {
	ID         uuid.UUID      `json:"id"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	Tags       []string       `json:"tags"`
	CoverImage string         `json:"coverImage"`
	Likes      int            `json:"likes"`
	AuthorID   uuid.UUID      `json:"-"`
	Author     *PublicProfile `json:"author,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// OwnerID returns the author of the blog.
func (b *Blog) OwnerID() uuid.UUID {
	return b.AuthorID
}
