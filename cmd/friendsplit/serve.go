package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/friendsplit/internal/app"
	"github.com/mmynk/friendsplit/internal/service"
	"github.com/mmynk/friendsplit/internal/storage"
	"github.com/mmynk/friendsplit/internal/storage/memory"
	"github.com/mmynk/friendsplit/pkg/logging"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "Listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagAddr != "" {
		cfg.Server.Addr = flagAddr
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	seed, err := storage.LoadSeed(cfg.App.SeedPath)
	if err != nil {
		slog.Error("Failed to load seed", "path", cfg.App.SeedPath, "error", err)
		return err
	}
	slog.Info("Seed loaded", "friends", len(seed))

	store := memory.New()
	defer store.Close()

	srv, err := service.New(service.Options{
		Store: store,
		Seed:  seed,
		App: app.Options{
			Avatar:            app.AvatarBuilder(cfg.App.AvatarURL),
			SelectFirst:       cfg.App.SelectFirst,
			ShowNotifications: cfg.App.ShowNotifications,
			CloseOnNoop:       cfg.App.CloseOnNoop,
		},
		Currency:   cfg.App.Currency,
		SessionTTL: cfg.Server.SessionTTL.Duration,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go srv.RunSweeper(ctx, cfg.Server.SweepInterval.Duration)

	// h2c serves HTTP/2 without TLS alongside HTTP/1.1
	httpSrv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: h2c.NewHandler(srv.Handler(), &http2.Server{}),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", cfg.Server.Addr, "url", fmt.Sprintf("http://localhost%s", cfg.Server.Addr))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "timeout", cfg.Server.ShutdownTimeout.Duration)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
		return err
	}
	return nil
}
