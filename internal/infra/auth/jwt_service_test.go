package auth

import (
	"testing"
	"time"

	"storyhub/config"
	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/domain/service"
	"storyhub/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_session_secret_key_very_long_for_testing"

func TestJWTService_IssueAndVerify(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Session = testSecret

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, jwtService.TTL())

	userID := uuid.New()
	token, err := jwtService.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := jwtService.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := issuedAt

	svc, err := newJWTService(testSecret, time.Hour, func() time.Time { return clock })
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	clock = issuedAt.Add(2 * time.Hour)
	_, err = svc.Verify(token)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_RejectsTampering(t *testing.T) {
	svc, err := newJWTService(testSecret, time.Hour, time.Now)
	require.NoError(t, err)
	other, err := newJWTService("another_secret", time.Hour, time.Now)
	require.NoError(t, err)

	foreign, err := other.Issue(uuid.New())
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "empty", token: ""},
		{name: "other secret", token: foreign},
		{name: "wrong type", token: signRaw(t, jwt.MapClaims{
			"sub":  uuid.NewString(),
			"type": "refresh",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})},
		{name: "subject is not a uuid", token: signRaw(t, jwt.MapClaims{
			"sub":  "42",
			"type": service.TokenTypeSession,
			"exp":  time.Now().Add(time.Hour).Unix(),
		})},
		{name: "no expiry", token: signRaw(t, jwt.MapClaims{
			"sub":  uuid.NewString(),
			"type": service.TokenTypeSession,
		})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := svc.Verify(tt.token)

			assert.Equal(t, uuid.Nil, userID)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		})
	}
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	svc, err := newJWTService(testSecret, time.Hour, time.Now)
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  uuid.NewString(),
		"type": service.TokenTypeSession,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func signRaw(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return signed
}
