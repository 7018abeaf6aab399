package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/angelmondragon/tienda-backend/api/controllers"
	"github.com/angelmondragon/tienda-backend/api/middleware"
	"github.com/angelmondragon/tienda-backend/api/responses"
	_ "github.com/angelmondragon/tienda-backend/docs"
	"github.com/angelmondragon/tienda-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/tienda-backend/pkg/errors"
	"github.com/angelmondragon/tienda-backend/pkg/logger"
	"github.com/angelmondragon/tienda-backend/pkg/metrics"
)

// RouteTable mounts the resource routes of one service.
type RouteTable func(r chi.Router)

// Options carries what every service router needs besides its route table.
type Options struct {
	Config  *config.Config
	Logger  *logger.Logger
	Service string
	// Registry backs /metrics; nil disables metrics.
	Registry *prometheus.Registry
	// Ready lists the dependencies checked by /health/ready.
	Ready map[string]controllers.Pinger
}

// NewServiceRouter builds the shared HTTP scaffold (middleware, probes, metrics,
// docs, envelope 404/405) around a service's route table.
func NewServiceRouter(opts Options, table RouteTable) http.Handler {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	logg := opts.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)
	if opts.Registry != nil {
		r.Use(middleware.Metrics(metrics.NewHTTPMetrics(opts.Registry, opts.Service)))
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), nil, w, pkgerrors.New(pkgerrors.CodeNotFound, "ruta no encontrada"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		responses.WriteError(req.Context(), nil, w, pkgerrors.New(pkgerrors.CodeNotFound, "método no permitido para esta ruta"))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg, opts.Service))
		r.Get("/ready", controllers.HealthReady(cfg, logg, opts.Ready))
	})

	if opts.Registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{Registry: opts.Registry}))
	}

	r.Get("/api-docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/api-docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/api-docs/*", httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json")))

	if table != nil {
		table(r)
	}
	return r
}
