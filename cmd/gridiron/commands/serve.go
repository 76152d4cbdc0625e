package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/gridiron/internal/api"
	"github.com/wonny/gridiron/internal/api/handlers"
)

func newServeCmd(global *globalOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "프로젝션 조회 API 서버 시작",
		Long: `생성된 프로젝션 아티팩트를 읽기 전용으로 제공하는 REST API 서버를 시작합니다.

Endpoints:
  GET  /health
  GET  /api/projections/{league}/{year}/{week}/baseline
  GET  /api/projections/{league}/{year}/{week}/forecast

Example:
  go run ./cmd/gridiron serve
  go run ./cmd/gridiron serve --port 8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(global)
			if err != nil {
				return err
			}
			defer rt.Close()

			if port != "" {
				rt.cfg.Port = port
			}

			projectionHandler := handlers.NewProjectionHandler(rt.store, rt.log)
			router := api.NewRouter(projectionHandler, rt.log)
			server := api.New(rt.cfg, rt.log, router)

			if err := server.Listen(); err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- server.Start()
			}()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n✅ Server running on http://%s\n", server.Addr())
			fmt.Fprintln(out, "\nPress Ctrl+C to stop")

			// Wait for interrupt signal
			quit := make(chan os.Signal, 1)
			signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err := <-errCh:
				return err
			case <-quit:
			}

			// Graceful shutdown with timeout
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}

			rt.log.Info("Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "API 서버 포트 (default PORT)")

	return cmd
}
