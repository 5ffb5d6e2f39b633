package main

import (
	"context"
	"testing"

	"storyhub/config"
	"storyhub/internal/domain/entity"
	"storyhub/internal/infra/auth"
	"storyhub/internal/infra/persistence/postgres"
	"storyhub/internal/testutil/sqlitetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMintToken(t *testing.T) {
	ctx := context.Background()
	users := postgres.NewUserRepository(sqlitetest.Open(t))

	user := &entity.User{Email: "ada@example.com", FullName: "Ada"}
	require.NoError(t, users.Create(ctx, user))

	cfg := &config.Config{}
	cfg.SecretKey.Session = "cli-secret"
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	t.Run("known user", func(t *testing.T) {
		token, err := mintToken(ctx, users, tokens, "  ADA@example.com ")
		require.NoError(t, err)

		subject, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, subject)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := mintToken(ctx, users, tokens, "nobody@example.com")
		assert.ErrorContains(t, err, "no user registered with nobody@example.com")
	})

	t.Run("blank email", func(t *testing.T) {
		_, err := mintToken(ctx, users, tokens, " ")
		assert.Error(t, err)
	})
}

func TestRootCommands(t *testing.T) {
	cmd := tokenCmd()
	assert.Equal(t, "token", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("email"))
	assert.NotNil(t, cmd.Flags().Lookup("raw"))

	assert.Equal(t, "migrate", migrateCmd().Name())
}
