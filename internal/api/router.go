package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/easyleave/leave-api/internal/api/handler"
	"github.com/easyleave/leave-api/internal/core/service"
	mongodb "github.com/easyleave/leave-api/internal/infrastructure/db/mongo"
	redisdb "github.com/easyleave/leave-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// The four screen routes are not guarded by a shared router-level check;
// each dashboard handler performs its own session guard on mount.
func NewRouter(db *mongo.Database, rdb *goredis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("easyleave"))

	// --- Dependencies ---
	identityRepo := mongodb.NewIdentityRepository(db)
	leaveRepo := mongodb.NewLeaveRepository(db)
	sessions := redisdb.NewSessionStore(rdb)

	authService := service.NewAuthService(identityRepo, log)
	leaveService := service.NewLeaveService(leaveRepo, identityRepo, log)

	authHandler := handler.NewAuthHandler(authService, sessions)
	employeeHandler := handler.NewEmployeeHandler(leaveService, sessions)
	managerHandler := handler.NewManagerHandler(leaveService, sessions)

	// --- Screen routes ---
	e.POST("/", authHandler.Login)
	e.POST("/register", authHandler.Register)
	e.POST("/logout", authHandler.Logout)

	e.GET("/employee-dashboard", employeeHandler.Dashboard)
	e.POST("/employee-dashboard/leave-requests", employeeHandler.Apply)

	e.GET("/manager-dashboard", managerHandler.Board)
	e.POST("/manager-dashboard/leave-requests/:id/decision", managerHandler.Decide)

	// --- Probes and metrics (no session required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
