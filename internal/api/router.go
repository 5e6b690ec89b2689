package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/backoffice-labs/sales-api/docs"
	"github.com/backoffice-labs/sales-api/internal/api/handler"
	"github.com/backoffice-labs/sales-api/internal/api/middleware"
	"github.com/backoffice-labs/sales-api/internal/core/service"
	"github.com/backoffice-labs/sales-api/internal/infrastructure/config"
	mongodb "github.com/backoffice-labs/sales-api/internal/infrastructure/db/mongo"
	redisdb "github.com/backoffice-labs/sales-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, notifier service.RestockNotifier, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	saleRepo := mongodb.NewSaleRepository(db)
	ledgerRepo := mongodb.NewLedgerRepository(db)
	idemStore := redisdb.NewIdempotencyStore(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, log)
	clientService := service.NewClientService(clientRepo, log)
	productService := service.NewProductService(productRepo, log)
	saleService := service.NewSaleService(saleRepo, productRepo, clientRepo, ledgerRepo, idemStore, notifier, cfg.RestockThreshold, log)
	financeService := service.NewFinanceService(ledgerRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)
	productHandler := handler.NewProductHandler(productService)
	saleHandler := handler.NewSaleHandler(saleService)
	financeHandler := handler.NewFinanceHandler(financeService)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Protected routes ---
	// The Auth middleware only authenticates; each handler authorizes its own
	// required role explicitly.
	v1 := e.Group("/v1", middleware.Auth(cfg.JWTSecret))

	v1.POST("/users", userHandler.Create)
	v1.GET("/users", userHandler.List)
	v1.GET("/users/:id", userHandler.Get)
	v1.PUT("/users/:id", userHandler.Update)
	v1.DELETE("/users/:id", userHandler.Delete)

	v1.POST("/clients", clientHandler.Create)
	v1.GET("/clients", clientHandler.List)
	v1.GET("/clients/:id", clientHandler.Get)
	v1.PUT("/clients/:id", clientHandler.Update)
	v1.DELETE("/clients/:id", clientHandler.Delete)

	v1.POST("/products", productHandler.Create)
	v1.GET("/products", productHandler.List)
	v1.GET("/products/:id", productHandler.Get)
	v1.PUT("/products/:id", productHandler.Update)
	v1.DELETE("/products/:id", productHandler.Delete)

	v1.POST("/sales", saleHandler.Create)
	v1.GET("/sales", saleHandler.List)
	v1.GET("/sales/:id", saleHandler.Get)

	v1.GET("/finance/entries", financeHandler.List)
	v1.POST("/finance/entries", financeHandler.Record)

	return e
}
