package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storyhub/config"
	"storyhub/internal/domain/repository"
	"storyhub/internal/domain/service"
	"storyhub/internal/errors"
	"storyhub/internal/infra/auth"
	"storyhub/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func tokenCmd() *cobra.Command {
	var (
		email string
		raw   bool
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a session token for an existing user",
		Long: `Mint a session token signed with secretKey.session for an existing user.

Send it as the session cookie, e.g.
  curl --cookie "token=$(storyhubctl token --email ada@example.com --raw)" localhost:8080/api/blog`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDB(cmd.Context(), func(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
				tokens, err := auth.NewJWTService(cfg)
				if err != nil {
					return err
				}

				token, err := mintToken(ctx, postgres.NewUserRepository(db), tokens, email)
				if err != nil {
					return err
				}

				if raw {
					fmt.Println(token)

					return nil
				}

				success("Token for %s", strings.ToLower(strings.TrimSpace(email)))
				info("cookie:  %s", cfg.CookieName())
				info("expires: %s", time.Now().Add(tokens.TTL()).Format(time.RFC3339))
				info("token:   %s", token)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Email of the user to impersonate")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print only the token")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

// mintToken issues a session token for the user registered under email.
func mintToken(ctx context.Context, users repository.UserRepository, tokens service.TokenService, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", errors.New("email is required")
	}

	user, err := users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", errors.Errorf("no user registered with %s", email)
		}

		return "", errors.Wrap(err, "failed to look up user")
	}

	return tokens.Issue(user.ID)
}
