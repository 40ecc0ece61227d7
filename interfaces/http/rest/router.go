package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"skilltree-backend/application/core"
	"skilltree-backend/infrastructure/config"
	"skilltree-backend/interfaces/http/rest/handlers"
	"skilltree-backend/interfaces/http/rest/middleware"
	pkgerrors "skilltree-backend/pkg/errors"
	"skilltree-backend/pkg/observability"
)

// Router creates and configures the HTTP router
type Router struct {
	core    *core.Core
	cfg     *config.Config
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	c *core.Core,
	cfg *config.Config,
	metrics *observability.Collector,
	logger *zap.Logger,
) *Router {
	return &Router{
		core:    c,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	errHandler := pkgerrors.NewErrorHandler(rt.logger, rt.cfg.IsDevelopment())
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(errHandler.Middleware)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.metrics))
	}

	// CORS for the visualizer frontend
	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{rt.cfg.AllowedOrigin},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if rt.cfg.EnableMetrics {
		router.Handle("/metrics", promhttp.HandlerFor(rt.metrics.Registry(), promhttp.HandlerOpts{}))
	}

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		graphHandler := handlers.NewGraphHandler(rt.core, rt.logger)
		r.Get("/tree", graphHandler.GetTree)
		r.Get("/state", graphHandler.GetState)

		searchHandler := handlers.NewSearchHandler(rt.core, rt.logger)
		r.Post("/search", searchHandler.Search)
		r.Route("/selection", func(r chi.Router) {
			r.Post("/toggle", searchHandler.ToggleSelection)
			r.Post("/target", searchHandler.SelectTarget)
		})

		pathHandler := handlers.NewPathHandler(rt.core, rt.logger)
		r.Post("/path", pathHandler.RequestPath)
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	// Ready once the universal tree is loaded
	snap := rt.core.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	if !snap.Loaded {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"waiting for universal tree"}`))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
