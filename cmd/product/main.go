package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/dfranca/storefront/internal/auth"
	"github.com/dfranca/storefront/internal/config"
	"github.com/dfranca/storefront/internal/event"
	"github.com/dfranca/storefront/internal/service"
	"github.com/dfranca/storefront/internal/storage/postgres"
	transport "github.com/dfranca/storefront/internal/transport/http"
	"github.com/dfranca/storefront/pkg/logger"
)

func main() {
	cfg := config.LoadProduct()

	log, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Error("application error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	productRepo := postgres.NewProductRepository(pool)

	// Tokens are minted by the auth service; this side only verifies them,
	// so the shared secret and claim checks must match.
	jwtHandler := auth.NewJWTHandler(auth.JWTConfig{
		SecretKey: cfg.JWTSecretKey,
		Issuer:    cfg.JWTIssuer,
		Audience:  cfg.JWTAudience,
		TokenTTL:  cfg.TokenTTL,
	})

	var publisher event.Publisher = event.NewLoggingPublisher(log)

	productService := service.NewProductService(productRepo, publisher, log)

	server := transport.NewProductServer(productService, jwtHandler, log)

	errChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		log.Info("starting HTTP server", zap.String("addr", addr))
		if err := server.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info("received shutdown signal", zap.Stringer("signal", sig))
	case err := <-errChan:
		log.Error("server error", zap.Error(err))
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}

	log.Info("shutdown complete")
	return nil
}
