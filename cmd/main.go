package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"selmore/internal/adapter/filestore"
	"selmore/internal/adapter/http"
	"selmore/internal/adapter/pdf"
	"selmore/internal/adapter/postgres"
	"selmore/internal/adapter/usecase"
	"selmore/internal/auth"
	"selmore/internal/config"
	"selmore/internal/db"
)

// main is the entry point of the selmore marketplace API. It loads
// configuration, optionally runs database migrations and the demo seed,
// wires repositories, services and the HTTP handler, then serves until a
// termination signal arrives and shuts the server down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		case "tint":
			handler = tint.NewHandler(os.Stdout, &tint.Options{Level: level, TimeFormat: time.Kitchen})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, hasher); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("seed data ensured")
	}

	images, err := filestore.NewLocal(cfg.Upload.Dir, cfg.Upload.PublicPrefix)
	if err != nil {
		logger.Error("upload directory error", slog.Any("error", err))
		return
	}

	repo := postgres.NewRepository(pool)
	svc := httpadapter.Services{
		Auth:       usecase.NewAuthUseCase(repo, tokens, hasher, logger),
		Billboards: usecase.NewBillboardUseCase(repo, images, logger),
		Campaigns:  usecase.NewCampaignUseCase(repo),
		Bookings:   usecase.NewBookingUseCase(repo, repo, repo, repo, logger),
		Invoices:   usecase.NewInvoiceUseCase(repo, pdf.NewRenderer(), logger),
	}

	handler := httpadapter.NewHandler(svc, httpadapter.Options{
		Env:            cfg.Env,
		Production:     cfg.IsProduction(),
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		UploadDir:      images.Dir(),
		UploadPrefix:   cfg.Upload.PublicPrefix,
		MaxUploadBytes: cfg.Upload.MaxBytes,
		RateLimit:      cfg.RateLimit,
	}, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
