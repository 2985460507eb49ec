package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/folio/internal/content"
	"github.com/folio/internal/db"
	"github.com/folio/internal/handler"
	"github.com/folio/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the public site, admin pages and content API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	created, err := db.EnsureUser(db.DB, cfg.AdminUserName, cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to ensure admin user: %w", err)
	}
	if created {
		logger.Info("seeded admin user", zap.String("username", cfg.AdminUserName))
	}

	store, err := content.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open content store: %w", err)
	}

	api := handler.NewAPI(db.DB, store, logger, handler.Options{
		UploadDir:           cfg.UploadDir,
		UploadURL:           cfg.UploadURLPath,
		ContactDelay:        cfg.ContactDelay,
		TokenTTL:            cfg.AdminTokenTTL,
		HomeProjectsPerPage: cfg.HomeProjectsPerPage,
	})
	r, err := router.SetupRouter(api, logger, router.Options{
		SessionSecret:        cfg.SessionSecret,
		UploadDir:            cfg.UploadDir,
		UploadURLPath:        cfg.UploadURLPath,
		ContactRatePerMinute: cfg.ContactRatePerMinute,
		LoginRatePerMinute:   cfg.LoginRatePerMinute,
	})
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", cfg.ListenAddr), zap.String("data_dir", store.Dir()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to run server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
