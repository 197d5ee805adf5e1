// Package server wires the landing handlers into a chi router and runs the HTTP server.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vidaemdestaque/entreconsultas/internal/assets"
	"github.com/vidaemdestaque/entreconsultas/internal/content"
	"github.com/vidaemdestaque/entreconsultas/internal/handlers"
	"github.com/vidaemdestaque/entreconsultas/internal/middleware"
	"github.com/vidaemdestaque/entreconsultas/internal/page"
	"github.com/vidaemdestaque/entreconsultas/internal/widget"
)

type Deps struct {
	Store    *content.Store
	Observer widget.Observer
	Logger   *slog.Logger

	// Registry receives the HTTP and render collectors and backs /metrics.
	Registry *prometheus.Registry
}

func NewRouter(d Deps) (http.Handler, error) {
	metrics, err := middleware.NewMetrics(d.Registry)
	if err != nil {
		return nil, err
	}
	pages, err := handlers.NewPages(d.Store, d.Observer, d.Logger, d.Registry)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.HTMX)
	r.Use(middleware.Logger(d.Logger))
	r.Use(chimw.Recoverer)
	r.Use(metrics.Handler)

	r.Handle("/static/*", middleware.AssetsWithCache(assets.Static(), "/static"))

	r.Get("/", pages.LandingPage)
	r.Get(page.FAQFragmentPath, pages.FAQFragment)
	r.Get(page.TestimonialFragmentPath, pages.TestimonialFragment)
	r.Get("/health", handlers.Health)
	r.Handle("/metrics", promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{}))

	return r, nil
}
