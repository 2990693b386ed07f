// Package main is the application entry point.
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/config"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/crypto"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/jwt"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/common/metrics"
	authHandler "github.com/Kotarao21/Smart-Pg-Management-System/internal/handler/auth"
	ledgerHandler "github.com/Kotarao21/Smart-Pg-Management-System/internal/handler/ledger"
	propertyHandler "github.com/Kotarao21/Smart-Pg-Management-System/internal/handler/property"
	tenantHandler "github.com/Kotarao21/Smart-Pg-Management-System/internal/handler/tenant"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/middleware"
	"github.com/Kotarao21/Smart-Pg-Management-System/internal/repository"
	authService "github.com/Kotarao21/Smart-Pg-Management-System/internal/service/auth"
	ledgerService "github.com/Kotarao21/Smart-Pg-Management-System/internal/service/ledger"
	propertyService "github.com/Kotarao21/Smart-Pg-Management-System/internal/service/property"
	tenantService "github.com/Kotarao21/Smart-Pg-Management-System/internal/service/tenant"
)

// setupRouter wires repositories, services, handlers and middleware.
func setupRouter(
	r *gin.Engine,
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
) {
	jwtManager := jwt.NewManager(&jwt.Config{
		Secret:            cfg.JWT.Secret,
		AccessExpireTime:  cfg.JWT.AccessTokenDuration(),
		RefreshExpireTime: cfg.JWT.RefreshTokenDuration(),
		Issuer:            cfg.JWT.Issuer,
	})

	aes, err := crypto.NewAES(cfg.Crypto.AESKey)
	if err != nil {
		logger.Fatal("Invalid AES key", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	pgRepo := repository.NewPGRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Services
	authSvc := authService.NewAuthService(db, userRepo, jwtManager, authService.NewTokenStore(redisClient))
	propertySvc := propertyService.NewPropertyService(db, pgRepo, roomRepo)
	tenantSvc := tenantService.NewTenantService(db, tenantRepo, aes)
	ledgerSvc := ledgerService.NewLedgerService(db, bookingRepo, paymentRepo, roomRepo, tenantRepo)
	dashboardSvc := ledgerService.NewDashboardService(db)

	// Handlers
	authH := authHandler.NewHandler(authSvc)
	propertyH := propertyHandler.NewHandler(propertySvc)
	tenantH := tenantHandler.NewHandler(tenantSvc)
	ledgerH := ledgerHandler.NewHandler(ledgerSvc, dashboardSvc)

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.SecureHeaders())
	r.Use(middleware.CORS(&middleware.CORSConfig{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))
	r.Use(middleware.AccessLog(logger))

	if cfg.Metrics.Enabled {
		m := metrics.Init(cfg.Server.Name)
		r.Use(m.Middleware())
		r.GET(cfg.Metrics.Path, metrics.Handler())
	}

	// Health probes
	r.GET("/health", healthHandler)
	r.GET("/ping", pingHandler)
	r.GET("/ready", readyHandler(db, redisClient))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	if cfg.RateLimit.Enabled {
		v1.Use(middleware.IPRateLimit(redisClient, cfg.RateLimit.Limit, cfg.RateLimit.WindowDuration()))
	}

	// Public routes
	public := v1.Group("")
	{
		authH.RegisterRoutes(public)
	}

	// Staff routes: everything behind a valid session
	protected := v1.Group("")
	protected.Use(middleware.Auth(jwtManager))
	{
		authH.RegisterProtectedRoutes(protected)
		propertyH.RegisterRoutes(protected)
		tenantH.RegisterRoutes(protected)
		ledgerH.RegisterRoutes(protected)
	}
}
