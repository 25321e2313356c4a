package cmd

import (
	"fmt"
	"strings"

	"ucsbapi/internal/errors"
	"ucsbapi/internal/infra/auth"
	"ucsbapi/internal/infra/persistence/postgres"
	"ucsbapi/internal/usecase/impl"

	"github.com/spf13/cobra"
)

var tokenFlags struct {
	email string
	admin bool
}

// tokenCmd mints an access token for local development without Google sign-in.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for an account, creating it if needed",
	RunE: func(cmd *cobra.Command, _ []string) error {
		email := strings.TrimSpace(tokenFlags.email)
		if email == "" {
			return errors.New("--email is required")
		}

		env, err := openEnvironment()
		if err != nil {
			return err
		}
		defer env.close()

		tokens, err := auth.NewJWTService(env.cfg)
		if err != nil {
			return err
		}

		sessions := impl.NewSessionService(impl.SessionParams{
			Config:       env.cfg,
			UserRepo:     postgres.NewUserRepository(env.db),
			TokenService: tokens,
			Authorities:  impl.NewGrantedAuthoritiesService(env.cfg),
			Logger:       env.logger,
		})

		session, err := sessions.IssueToken(cmd.Context(), email, tokenFlags.admin)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), session.AccessToken)

		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenFlags.email, "email", "", "account email")
	tokenCmd.Flags().BoolVar(&tokenFlags.admin, "admin", false, "grant ROLE_ADMIN")
}
