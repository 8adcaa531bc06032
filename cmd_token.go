package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"shopadmin/config"
	"shopadmin/mockapi"
)

func (a *app) tokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the development backend",
		Long: `Signs an HS256 admin token with JWT_SECRET. Export it as SHOPADMIN_TOKEN
to talk to a development backend started with the same secret.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.JWTSecret == "" {
				return errors.New(config.EnvJWTSecret + " is not set")
			}
			tok, err := mockapi.IssueToken([]byte(a.cfg.JWTSecret), subject, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "admin", "user id placed in the token")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
