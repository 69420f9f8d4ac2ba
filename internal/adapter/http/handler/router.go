package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fluxa-wallet/internal/adapter/http/middleware"
	redisStore "fluxa-wallet/internal/adapter/storage/redis"
	"fluxa-wallet/internal/core/ports"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	LedgerSvc      ports.LedgerService
	ProximitySvc   ports.ProximityService
	AuthSvc        ports.AuthService // nil or disabled = open local API
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// Bearer auth guards everything under /api/v1 except /auth/login when
	// a passphrase is configured. Without one the wallet runs open, the
	// default for a desktop build bound to loopback.
	authRequired := deps.AuthSvc != nil && deps.AuthSvc.Enabled()
	guard := func(c *gin.Context) { c.Next() }
	if authRequired {
		guard = middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	if deps.AuthSvc != nil {
		authHandler := NewAuthHandler(deps.AuthSvc)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", rl("auth"), authHandler.Login)
		}
	}

	walletHandler := NewWalletHandler(deps.LedgerSvc)
	wallet := v1.Group("/wallet", guard)
	{
		wallet.POST("/init", rl("wallet"), walletHandler.InitWallet)
		wallet.GET("", rl("wallet"), walletHandler.GetWallet)
		wallet.GET("/stats", rl("wallet"), walletHandler.GetStats)
	}

	vault := v1.Group("/vault", guard)
	{
		vault.POST("/deposit", rl("transactions"), walletHandler.VaultDeposit)
		vault.POST("/withdraw", rl("transactions"), walletHandler.VaultWithdraw)
	}

	keysHandler := NewKeysHandler(deps.LedgerSvc)
	keys := v1.Group("/keys", guard)
	{
		keys.POST("/init", rl("wallet"), keysHandler.InitializeKeys)
		keys.GET("/public", rl("wallet"), keysHandler.GetPublicKey)
	}
	v1.POST("/signatures/verify", guard, rl("wallet"), keysHandler.VerifySignature)

	txHandler := NewTransactionHandler(deps.LedgerSvc)
	transactions := v1.Group("/transactions", guard)
	{
		transactions.POST("/offline", rl("transactions"), txHandler.CreateOffline)
		transactions.POST("/online", rl("transactions"), txHandler.CreateOnline)
		transactions.GET("", rl("transactions"), txHandler.List)
		transactions.POST("/:id/confirm", rl("transactions"), txHandler.Confirm)
		transactions.POST("/:id/cancel", rl("transactions"), txHandler.Cancel)
	}

	proximityHandler := NewProximityHandler(deps.ProximitySvc)
	proximity := v1.Group("/proximity", guard)
	{
		proximity.GET("/nfc/available", rl("proximity"), proximityHandler.NFCAvailable)
		proximity.POST("/nfc/send", rl("proximity"), proximityHandler.NFCSend)
		proximity.POST("/nfc/receive", rl("proximity"), proximityHandler.NFCReceive)
		proximity.GET("/bluetooth/devices", rl("proximity"), proximityHandler.BluetoothDevices)
		proximity.POST("/bluetooth/connect", rl("proximity"), proximityHandler.BluetoothConnect)
		proximity.POST("/bluetooth/send", rl("proximity"), proximityHandler.BluetoothSend)
	}

	return r
}
