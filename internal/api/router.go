package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/licensehub/client-admin/internal/api/handler"
	"github.com/licensehub/client-admin/internal/api/middleware"
	"github.com/licensehub/client-admin/internal/core/ports"
	"github.com/licensehub/client-admin/internal/core/service"
	"github.com/licensehub/client-admin/internal/infrastructure/config"
	"github.com/licensehub/client-admin/internal/infrastructure/db/postgres"
	"github.com/licensehub/client-admin/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, store ports.AssetStore, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clientadmin"))
	// Per-request deadline; also bounds how long a request may sit queued
	// waiting for a pool connection.
	e.Use(echomiddleware.ContextTimeout(cfg.RequestTimeout))

	// --- Dependencies ---
	adminRepo := postgres.NewAdminRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	logoutCache := redis.NewLogoutCache(rdb, cfg.TokenTTL)

	authService := service.NewAuthService(adminRepo, logoutCache, cfg.JWTSecret, cfg.TokenTTL)
	clientService := service.NewClientService(clientRepo, store, log)

	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	assetHandler := handler.NewAssetHandler(clientService, store)
	authGate := middleware.Auth(authService)

	// --- Business routes ---
	g := e.Group("/api")

	g.POST("/login", authHandler.Login)
	g.POST("/logout", authHandler.Logout)
	g.POST("/change-password", authHandler.ChangePassword, authGate)

	g.GET("/clients", clientHandler.List, authGate)
	g.POST("/add_client", clientHandler.Create, authGate)
	g.PUT("/update_client", clientHandler.Update, authGate)
	g.GET("/app_update/:client_id", clientHandler.GetAppUpdate, authGate)
	g.POST("/app_update", clientHandler.SetAppUpdate, authGate)

	g.POST("/upload-image", assetHandler.Upload, authGate)

	// Intentionally unauthenticated: client installations poll their own
	// record and fetch their branding image.
	g.GET("/client_status/:client_name", clientHandler.Status)
	g.GET("/client-image/:imageFileName", assetHandler.GetImage)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
