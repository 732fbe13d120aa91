package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/edvin/minio-lite-admin/internal/dashboard"
	"github.com/edvin/minio-lite-admin/internal/mcpserver"
)

func newDashboardCmd(a *app) *cobra.Command {
	var view string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open a full-screen dashboard with the server overview, access keys and
site replication status. When stdout is not a terminal, prints a one-shot
summary instead.

Examples:
  mlactl dashboard
  mlactl dashboard --view /access-keys`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return dashboard.Run(cmd.Context(), dashboard.NewStores(a.client), dashboard.RunOptions{
				StartPath: view,
				Out:       cmd.OutOrStdout(),
			})
		},
	}

	cmd.Flags().StringVar(&view, "view", "/", "route to open first: /dashboard, /access-keys, /site-replication")
	return cmd
}

func newMCPCmd(a *app) *cobra.Command {
	var (
		addr        string
		toolsConfig string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve read-only admin data as MCP tools",
		Long: `Start a streamable-HTTP MCP server at /mcp exposing get_server_info,
get_data_usage and list_access_keys, answered from the admin API.

Examples:
  mlactl mcp --addr :8091
  mlactl mcp --tools-config mcp.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mcpCfg := mcpserver.DefaultConfig()
			if toolsConfig != "" {
				var err error
				if mcpCfg, err = mcpserver.LoadConfig(toolsConfig); err != nil {
					return &configError{err: err}
				}
			}

			// The MCP server logs its lifecycle at info regardless of --log-level.
			logger := a.logger
			if logger.GetLevel() > zerolog.InfoLevel {
				logger = logger.Level(zerolog.InfoLevel)
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           mcpserver.New(mcpCfg, a.client, logger),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return serveUntilDone(cmd.Context(), srv, func(msg string) {
				logger.Info().Str("addr", addr).Msg(msg)
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8091", "listen address")
	cmd.Flags().StringVar(&toolsConfig, "tools-config", "", "optional mcp.yaml with tool overrides")
	return cmd
}

// serveUntilDone runs srv until ctx is cancelled, then shuts it down.
func serveUntilDone(ctx context.Context, srv *http.Server, log func(string)) error {
	errCh := make(chan error, 1)
	go func() {
		log("MCP server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("mcp server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log("shutting down MCP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
