package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/consulta-ja/booking-system/internal/api/handler"
	"github.com/consulta-ja/booking-system/internal/api/middleware"
	"github.com/consulta-ja/booking-system/internal/core/domain"
	"github.com/consulta-ja/booking-system/internal/core/service"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	sessionService := service.NewSessionService(service.NewMockAuthenticator(), log)
	navigationService := service.NewNavigationService(sessionService, log)
	registrationService := service.NewRegistrationService(service.NewLogSink(log), log)

	sessionHandler := handler.NewSessionHandler(sessionService)
	navigationHandler := handler.NewNavigationHandler(navigationService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	layoutHandler := handler.NewLayoutHandler()

	// --- API routes (session scope injected on the whole group) ---
	v1 := e.Group("/v1", middleware.Session(sessionService))

	v1.POST("/session", sessionHandler.SignIn)
	v1.DELETE("/session", sessionHandler.SignOut)
	v1.GET("/session", sessionHandler.State)

	v1.GET("/navigation", navigationHandler.State)
	v1.POST("/navigation/enter", navigationHandler.Enter)
	v1.POST("/navigation/goto", navigationHandler.GoTo)

	v1.POST("/signup/patients", registrationHandler.RegisterPatient)
	v1.POST("/signup/doctors", registrationHandler.RegisterDoctor, middleware.Gate(domain.RoleAdmin))
	v1.GET("/specialties", registrationHandler.Specialties)

	v1.GET("/layout/metrics", layoutHandler.Metrics)

	// --- Probes and metrics (no session scope required) ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
