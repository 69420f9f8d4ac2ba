package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fluxa-wallet/config"
	httpHandler "fluxa-wallet/internal/adapter/http/handler"
	redisStorage "fluxa-wallet/internal/adapter/storage/redis"
	"fluxa-wallet/internal/core/ports"
	"fluxa-wallet/internal/service"
	"fluxa-wallet/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Fluxa wallet daemon")

	ctx := context.Background()

	// Redis is optional: it backs rate limiting and proximity replay
	// detection. Without it the wallet runs standalone.
	var (
		rateLimitStore *redisStorage.RateLimitStore
		nonceStore     ports.NonceStore
		healthCheckers []ports.HealthChecker
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		nonceStore = redisStorage.NewNonceStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Initialize core services
	signingSvc := service.NewSHA256SigningService()
	ledgerSvc := service.NewLedgerEngine(signingSvc, log)
	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.Expiry, cfg.Auth.Issuer)

	// Seed the wallet so the API is usable immediately after start.
	wallet := ledgerSvc.InitWallet()
	log.Info().
		Str("wallet_id", wallet.ID).
		Int64("online_balance", wallet.OnlineBalance).
		Int64("offline_balance", wallet.OfflineBalance).
		Msg("Wallet initialized")

	authSvc, err := service.NewLocalAuthService(cfg.Auth.Passphrase, ledgerSvc, hashSvc, tokenSvc, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize auth service")
	}
	if authSvc.Enabled() {
		log.Info().Msg("API authentication enabled")
	} else {
		log.Warn().Msg("No passphrase configured, API is unprotected")
	}

	proximitySvc := service.NewProximityService(
		ledgerSvc,
		nonceStore,
		cfg.Proximity.NFCAvailable,
		cfg.Proximity.BluetoothAvailable,
		log,
	)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		LedgerSvc:      ledgerSvc,
		ProximitySvc:   proximitySvc,
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
