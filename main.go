package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-helium-addon/app"
	"product-helium-addon/config"
	"product-helium-addon/db"
	"product-helium-addon/i18n"
	"product-helium-addon/lifecycle"
	"product-helium-addon/logx"
	"product-helium-addon/repository"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logx.Fatal().Err(err).Msg("failed to load config")
	}
	logx.Init(logx.LoggerOpts{Environment: logx.Environment(cfg.Environment())})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command := "serve"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "install", "uninstall":
		if err := runLifecycle(ctx, cfg, command); err != nil {
			logx.Fatal().Err(err).Str("command", command).Msg("lifecycle command failed")
		}
	case "serve":
		if err := serve(ctx, cfg); err != nil {
			logx.Fatal().Err(err).Msg("server failed")
		}
	default:
		logx.Fatal().Str("command", command).Msg("unknown command, expected serve, install or uninstall")
	}
}

func runLifecycle(ctx context.Context, cfg *config.AppConfig, command string) error {
	if err := app.InitStorage(ctx, cfg); err != nil {
		return err
	}
	defer db.CloseDB()

	settings := repository.NewSettingsRepository(db.DB, cfg.Shop.SiteID)
	if command == "install" {
		return lifecycle.Install(ctx, settings, i18n.New(cfg.Shop.DefaultLocale))
	}
	return lifecycle.Uninstall(ctx, settings)
}

func serve(ctx context.Context, cfg *config.AppConfig) error {
	application, err := app.Initialize(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.CloseDB()
	defer application.Redis.Close()

	// Listen on 0.0.0.0 to accept connections from all interfaces (required for Docker/Render)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           application.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logx.Info().Str("addr", srv.Addr).Msg("Server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logx.Info().Msg("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
