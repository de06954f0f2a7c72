package api

import (
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/flexfit/fitness-buddy/docs"
	"github.com/flexfit/fitness-buddy/internal/api/handler"
	"github.com/flexfit/fitness-buddy/internal/api/middleware"
	"github.com/flexfit/fitness-buddy/internal/api/session"
	"github.com/flexfit/fitness-buddy/internal/api/view"
	"github.com/flexfit/fitness-buddy/internal/core/domain"
	"github.com/flexfit/fitness-buddy/internal/core/ports"
	"github.com/flexfit/fitness-buddy/internal/infrastructure/http/handlers"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	AuthService  ports.AuthService
	ChatService  ports.ChatService
	Completion   ports.CompletionClient
	SessionStore sessions.Store
	Persona      domain.Persona
	Logger       zerolog.Logger

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = view.MustLoad()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(session.Middleware(deps.SessionStore))
	e.Use(middleware.Session())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: deps.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.Persona, deps.Logger)
	chatHandler := handler.NewChatHandler(deps.ChatService, deps.Persona)

	guestOnly := middleware.GuestOnly()
	signedInPage := middleware.RequireUser(middleware.RedirectToLogin)
	signedInAPI := middleware.RequireUser(middleware.UnauthorizedJSON)

	// --- Pages ---
	e.GET("/", chatHandler.Home, signedInPage)
	e.GET("/login", authHandler.LoginPage, guestOnly)
	e.POST("/login", authHandler.Login, guestOnly)
	e.GET("/register", authHandler.RegisterPage, guestOnly)
	e.POST("/register", authHandler.Register, guestOnly)
	e.GET("/logout", authHandler.Logout)

	// --- API ---
	e.POST("/ask", chatHandler.Ask, middleware.Bearer(deps.AuthService), signedInAPI)
	e.POST("/api/token", authHandler.Token)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Completion)

	e.GET("/health", healthHandler.Liveness)            // liveness: is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: is the completion service reachable?

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
