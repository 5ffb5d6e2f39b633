package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeSession is the only token type the service issues.
const TokenTypeSession = "session"

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed session token for the user.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks the signature, type and expiry of a token and returns its subject.
	Verify(tokenString string) (uuid.UUID, error)

	// TTL returns the configured lifetime of a session token.
	TTL() time.Duration
}
