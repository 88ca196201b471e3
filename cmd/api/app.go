package main

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	_ "homeprice/docs" // Ensure docs are imported
	"homeprice/internal/config"
	"homeprice/internal/form"
	"homeprice/internal/providers/predictor"
	"homeprice/internal/ratelimit"
	"homeprice/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// Dependencies are the collaborators NewAppWithDependencies wires into the router
type Dependencies struct {
	Locations form.LocationProvider
	Estimator form.EstimateProvider
	Sessions  session.Store
	Limiter   *ratelimit.Limiter
}

// App encapsulates application dependencies
type App struct {
	router    *gin.Engine
	logger    *slog.Logger
	cfg       *config.Config
	locations form.LocationProvider
	estimator form.EstimateProvider
	sessions  session.Store
	limiter   *ratelimit.Limiter
}

// NewApp creates a new application with real providers built from configuration
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	client := predictor.NewClient(cfg.Predictor.BaseURL, cfg.Predictor.Timeout, logger)

	sessions, err := newSessionStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	return NewAppWithDependencies(cfg, logger, Dependencies{
		Locations: client,
		Estimator: client,
		Sessions:  sessions,
		Limiter:   ratelimit.NewLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window),
	})
}

// NewAppWithDependencies creates an application with custom collaborators.
// This is useful for testing with mock providers.
func NewAppWithDependencies(cfg *config.Config, logger *slog.Logger, deps Dependencies) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	// Create Gin router
	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	// Add middleware
	router.Use(gin.Recovery())

	app := &App{
		router:    router,
		logger:    logger,
		cfg:       cfg,
		locations: deps.Locations,
		estimator: deps.Estimator,
		sessions:  deps.Sessions,
		limiter:   deps.Limiter,
	}

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized", "session_store", cfg.Session.Store)

	return app, nil
}

func newSessionStore(cfg *config.Config, logger *slog.Logger) (session.Store, error) {
	switch strings.ToLower(cfg.Session.Store) {
	case config.SessionStoreRedis:
		store := session.NewRedisStore(cfg.Session.RedisAddr, cfg.Session.TTL)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, err
		}
		logger.Info("using redis session store", "addr", cfg.Session.RedisAddr)
		return store, nil
	default:
		return session.NewMemoryStore(cfg.Session.TTL), nil
	}
}

// controller builds a form controller around state for the current request
func (app *App) controller(state *form.State) *form.Controller {
	return form.NewController(state, app.locations, app.estimator, app.logger)
}

// Handler returns the router, mostly for tests
func (app *App) Handler() http.Handler {
	return app.router
}

// Server returns an HTTP server for addr serving the app
func (app *App) Server(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      app.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Close releases background resources
func (app *App) Close() {
	app.limiter.Stop()
	if err := app.sessions.Close(); err != nil {
		app.logger.Error("failed to close session store", "error", err)
	}
}
