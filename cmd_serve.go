package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shopadmin/mockapi"
)

func (a *app) serveMockCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve-mock",
		Short: "Run the in-memory development backend",
		Long: `Serves the admin and retail endpoints from seeded in-memory data, so the
dashboard can be tried without the real services. Bearer tokens are
required when JWT_SECRET is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.MockAddr
			}
			srv := mockapi.New(mockapi.Seed(), mockapi.Options{JWTSecret: a.cfg.JWTSecret, Logger: a.log})

			errc := make(chan error, 1)
			go func() { errc <- srv.Listen(addr) }()
			a.log.Info("development backend listening",
				zap.String("addr", addr), zap.Bool("auth", a.cfg.JWTSecret != ""))

			select {
			case err := <-errc:
				return err
			case <-cmd.Context().Done():
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.ShutdownWithContext(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			a.log.Info("development backend stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default SHOPADMIN_MOCK_ADDR)")
	return cmd
}
