package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inmobilia/housing-api/internal/api/handler"
	"github.com/inmobilia/housing-api/internal/api/middleware"
	"github.com/inmobilia/housing-api/internal/core/service"
	mongostore "github.com/inmobilia/housing-api/internal/infrastructure/db/mongo"
	redisstore "github.com/inmobilia/housing-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("housing"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	userService := service.NewUserService(userRepo, log)
	userHandler := handler.NewUserHandler(userService)

	departmentRepo := mongostore.NewDepartmentRepository(db)
	departmentCache := redisstore.NewDepartmentCache(rdb, log)
	departmentService := service.NewDepartmentService(departmentRepo, departmentCache, log)
	departmentHandler := handler.NewDepartmentHandler(departmentService)

	// Auth stays disabled scaffolding: the middleware is built and tested but
	// not attached to any route group yet.
	authMiddleware := middleware.Auth(jwtSecret)
	_ = authMiddleware

	// --- User routes ---
	e.GET("/usuarios", userHandler.List)
	e.GET("/usuarios/:id", userHandler.Get)
	e.POST("/usuarios", userHandler.Create)
	e.DELETE("/usuario/:id", userHandler.Delete) // singular path kept for client compatibility
	e.PUT("/usuarios/:id/editar", userHandler.Update)

	// --- Department routes ---
	e.GET("/viviendas", departmentHandler.List)
	e.GET("/viviendas/:id", departmentHandler.Get)
	e.POST("/viviendas", departmentHandler.Create)
	e.DELETE("/viviendas/:id", departmentHandler.Delete)
	e.PUT("/viviendas/:id/editar", departmentHandler.Update)

	// --- Health probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)         // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
