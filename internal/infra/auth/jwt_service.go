// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"storyhub/config"
	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/domain/service"
	"storyhub/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte           // Secret key for signing session tokens.
	ttl    time.Duration    // Time-to-live for session tokens.
	now    func() time.Time // Clock, replaced in tests.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg.SecretKey.Session, cfg.TokenTTL(), time.Now)
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt session secret must be provided")
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue creates a signed HS256 session token whose subject is the user ID.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	issuedAt := s.now()
	claims := service.Claims{
		Type: service.TokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Verify checks the validity of a session token and returns the user ID it was issued for.
func (s *jwtService) Verify(tokenString string) (uuid.UUID, error) {
	claims := &service.Claims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	if claims.Type != service.TokenTypeSession {
		return uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected token type")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage("subject is not a user id")
	}

	return userID, nil
}

// TTL returns the configured session lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
