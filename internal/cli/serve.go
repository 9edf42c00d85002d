package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"household-engine/internal/handler"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculation API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer a.log.Sync() //nolint:errcheck

			srv := handler.New(a.engine, a.log).Server()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				a.log.Info("household engine starting",
					zap.String("port", a.cfg.Port),
					zap.Int("parameter_year", a.engine.Params().Year),
				)
				errCh <- srv.ListenAndServe(":" + a.cfg.Port)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			a.log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.ShutdownWithContext(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&a.cfg.Port, "port", a.cfg.Port, "listen port")
	return cmd
}
