package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vet-clinic-records/internal/adapters/auth/jwtauth"
	"vet-clinic-records/internal/adapters/auth/odin"
	"vet-clinic-records/internal/adapters/password"
	pg "vet-clinic-records/internal/adapters/storage/postgres"
	"vet-clinic-records/internal/platform/config"
	"vet-clinic-records/internal/platform/logger"
	"vet-clinic-records/internal/ports/auth"
	"vet-clinic-records/internal/router"
)

// @title Vet Clinic Records API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configFile := flag.String("config", os.Getenv("CONFIG_FILE"), "archivo de configuración opcional (yaml/json/toml)")
	flag.Parse()

	if err := run(*configFile); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Server.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	verifier, err := newVerifier(cfg.Auth)
	if err != nil {
		return err
	}

	opts := router.Options{
		AuthVerifier:    verifier,
		Logger:          log,
		PasswordEncoder: password.NewBcryptEncoder(cfg.Auth.BcryptCost),
	}

	if cfg.Database.DSN != "" {
		db, err := pg.Open(cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer db.Close()

		if cfg.Database.Migrate {
			if err := pg.Migrate(ctx, db, log); err != nil {
				return err
			}
		}
		opts.DB = db
		log.Info("using postgres storage", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "auth_mode": cfg.Auth.Mode})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newVerifier devuelve nil en modo dev: AuthContext usa los headers de debug.
func newVerifier(cfg config.AuthConfig) (auth.AuthVerifier, error) {
	switch cfg.Mode {
	case config.AuthModeJWT:
		v, err := jwtauth.NewVerifier(cfg.JWTSecret)
		if err != nil {
			return nil, err
		}
		return v, nil
	case config.AuthModeOdin:
		v, err := odin.NewVerifier(odin.Config{BaseURL: cfg.OdinURL, APIKey: cfg.OdinAPIKey})
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, nil
	}
}
