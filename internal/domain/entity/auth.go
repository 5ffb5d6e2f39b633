// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderEmail identifies email/password credentials.
const ProviderEmail = "email"

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID // Links this authentication method to the User it belongs to.
	Provider       string    // The authentication provider, currently always "email".
	ProviderUserID string    // The normalized email for the "email" provider.
	PasswordHash   string    // Stores the bcrypt-hashed password.
	CreatedAt      time.Time // Timestamp of when this authentication method was linked to the user account.
}
