package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alp4ka/pagenav/internal/api"
	"github.com/Alp4ka/pagenav/internal/catalog"
	"github.com/Alp4ka/pagenav/internal/config"
	"github.com/Alp4ka/pagenav/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo catalog API",
		Long: `Run the demo catalog API.

Endpoints:
  GET /products?page=&pageSize=&sort=&category=  paginated products with pager state
  GET /pages?page=&total=                         visible page sequence only`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg)
		},
	}

	cmd.Flags().String("listen", "", "Address to listen on (overrides config)")
	cmd.Flags().String("dsn", "", "sqlite data source name (overrides config)")
	cmd.Flags().Int("seed", -1, "Number of demo products for an empty catalog (overrides config)")

	return cmd
}

// loadConfig reads --config and applies flag overrides on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v, _ := cmd.Flags().GetString("listen"); v != "" {
		cfg.Listen = v
	}
	if v, _ := cmd.Flags().GetString("dsn"); v != "" {
		cfg.DSN = v
	}
	if v, _ := cmd.Flags().GetInt("seed"); v >= 0 {
		cfg.Seed = v
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	logging.Configure(cfg.Log, nil)
	log := logging.NewLogger("server")

	db, err := catalog.Open(cfg.DSN)
	if err != nil {
		return err
	}

	store := catalog.NewStore(db, logging.NewLogger("catalog"))
	if err = store.Migrate(ctx); err != nil {
		return err
	}
	if _, err = store.Seed(ctx, cfg.Seed); err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Listen,
		Handler:           api.NewHandler(store, cfg.PageSize, logging.NewLogger("api")),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Listen).Info("Catalog API listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
