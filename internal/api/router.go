package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pfaswatch/zipcheck/internal/api/handler"
	"github.com/pfaswatch/zipcheck/internal/api/middleware"
	"github.com/pfaswatch/zipcheck/internal/core/domain"
	"github.com/pfaswatch/zipcheck/internal/core/ports"
)

// Deps carries everything the router needs; services are built in main so the
// router stays free of storage concerns.
type Deps struct {
	DB        *mongo.Database
	Redis     *redis.Client
	Lookup    ports.LookupService
	Loader    ports.DatasetLoader
	Batch     ports.BatchService
	Auth      ports.AuthService
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pfas_http"))

	// --- Handlers ---
	checkHandler := handler.NewCheckHandler(deps.Lookup)
	batchHandler := handler.NewBatchHandler(deps.Batch)
	datasetHandler := handler.NewDatasetHandler(deps.Lookup, deps.Loader)
	authHandler := handler.NewAuthHandler(deps.Auth)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API v1 (authenticated) ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/zipcodes/:zip", checkHandler.Check)
	v1.POST("/zipcodes/check", checkHandler.CheckMany)
	v1.POST("/batches", batchHandler.Upload)
	v1.GET("/dataset", datasetHandler.Get)
	v1.POST("/dataset/reload", datasetHandler.Reload, middleware.RBAC(domain.RoleAdmin))

	return e
}
