package api

import (
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/swdsms/incident-api/internal/api/handler"
	"github.com/swdsms/incident-api/internal/core/service"
	"github.com/swdsms/incident-api/internal/infrastructure/config"
	"github.com/swdsms/incident-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger, pool *pgxpool.Pool) *echo.Echo {
	e := newEcho(cfg, log)

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, log))
	reportHandler := handler.NewReportHandler(service.NewReportService(reportRepo, log))
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo, log))

	registerRoutes(e, authHandler, reportHandler, userHandler,
		handler.NewHealthHandler(), handler.NewReadinessHandler(pool))

	// Registers with the default prometheus registry, so this stays out of
	// newEcho: tests build multiple echo instances.
	e.Use(echoprometheus.NewMiddleware("swdsms"))
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

func newEcho(cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())

	// Frontend assets are served through middleware, not a route, so the
	// router's 404/405 semantics under /api stay intact.
	if cfg.StaticDir != "" {
		e.Use(echomiddleware.StaticWithConfig(echomiddleware.StaticConfig{
			Root: cfg.StaticDir,
			Skipper: func(c echo.Context) bool {
				return strings.HasPrefix(c.Request().URL.Path, "/api")
			},
		}))
	}

	return e
}

func registerRoutes(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	reportHandler *handler.ReportHandler,
	userHandler *handler.UserHandler,
	healthHandler *handler.HealthHandler,
	readinessHandler *handler.ReadinessHandler,
) {
	api := e.Group("/api")
	api.POST("/login", authHandler.Login)
	api.POST("/signup", authHandler.Signup)
	api.GET("/reports", reportHandler.List)
	api.POST("/reports", reportHandler.Create)
	api.PUT("/reports/:id/solve", reportHandler.Solve)
	api.GET("/users", userHandler.List)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
}
