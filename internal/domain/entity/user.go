// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Credential material never lives here; see Authentication.
type User struct {
	ID         uuid.UUID `json:"id"`                   // The Global Unique Identifier (GUID) for the user.
	Email      string    `json:"email"`                // Lower-cased, unique login identifier.
	FullName   string    `json:"fullName"`             // The user's display name.
	Username   string    `json:"username,omitempty"`   // Optional handle shown next to posts.
	ProfilePic string    `json:"profilePic,omitempty"` // URL returned by the media store.
	Bio        string    `json:"bio,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PublicProfile is the subset of a user embedded into blogs and comments.
type PublicProfile struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"fullName"`
	ProfilePic string    `json:"profilePic,omitempty"`
	Email      string    `json:"email,omitempty"`
	Username   string    `json:"username,omitempty"`
}

// NormalizeEmail trims and lower-cases an email address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AuthorProfile projects the fields populated for a blog author.
func (u *User) AuthorProfile() *PublicProfile {
	if u == nil {
		return nil
	}

	return &PublicProfile{
		ID:         u.ID,
		FullName:   u.FullName,
		ProfilePic: u.ProfilePic,
		Email:      u.Email,
		Username:   u.Username,
	}
}

// CommenterProfile projects the fields populated for a comment author.
func (u *User) CommenterProfile() *PublicProfile {
	if u == nil {
		return nil
	}

	return &PublicProfile{
		ID:         u.ID,
		FullName:   u.FullName,
		ProfilePic: u.ProfilePic,
	}
}
