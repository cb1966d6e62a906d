package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/corphq/api/internal/api/handler"
	"github.com/corphq/api/internal/api/middleware"
	"github.com/corphq/api/internal/core/domain"
	"github.com/corphq/api/internal/core/ports"
)

// Dependencies carries everything the router needs. All handles are
// constructed once at startup and passed down; nothing here is lazily
// initialized.
type Dependencies struct {
	Log          zerolog.Logger
	Users        ports.UserService
	Sessions     ports.SessionService
	SessionStore ports.SessionRepository
	Regions      ports.RegionRepository
	Bootstrap    ports.BootstrapService
	LoginGate    ports.LoginGate
	MongoClient  *mongo.Client
	RedisClient  *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("corphq"))

	// --- User routes ---
	userHandler := handler.NewUserHandler(deps.Users, deps.Sessions, deps.LoginGate, deps.Log)
	e.POST("/register", userHandler.Register)
	e.POST("/login", userHandler.Login)
	e.POST("/logout", userHandler.Logout)

	// --- Admin routes (valid session required) ---
	adminHandler := handler.NewAdminHandler(deps.Bootstrap, deps.Regions, deps.Log)
	admin := e.Group("/admin",
		middleware.SessionAuth(deps.SessionStore),
		middleware.RequireRole(domain.RoleUser),
	)
	admin.GET("/configured", adminHandler.Configured)
	admin.POST("/configure", adminHandler.Configure)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.MongoClient, deps.RedisClient)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
