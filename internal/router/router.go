// Package router sets up all HTTP routes and middleware chains for the
// qrlink server. It organizes routes into the public scan surface and the
// token-guarded management API.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"qrlink/internal/handlers"
	"qrlink/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. apiToken guards the /api group; an empty
// token disables it.
func New(public *handlers.Public, api *handlers.API, apiToken string) (chi.Router, *middleware.RateLimiter) {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// PNG rendering is the CPU-heavy endpoint, so it gets its own limiter.
	// Scan and unlock stay unlimited: a scanner behind a venue NAT must
	// never be locked out of a menu.
	imageLimiter := middleware.NewRateLimiter(30, time.Minute)

	// Public scan surface.
	r.Route("/q/{code}", func(r chi.Router) {
		r.Get("/", public.Scan)
		r.Post("/unlock", public.Unlock)
		r.With(imageLimiter.Middleware).Get("/image", public.Image)
	})

	// Management API — bearer token, JSON only.
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAPIToken(apiToken))
		r.Route("/codes", func(r chi.Router) {
			r.Get("/", api.List)
			r.Post("/", api.Create)
			r.Get("/{id}", api.Get)
			r.Put("/{id}", api.Update)
			r.Delete("/{id}", api.Delete)
		})
	})

	r.Get("/", rootHandler)

	return r, imageLimiter
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// rootHandler is the landing page for people who strip the path from a scan
// URL. There is nothing to browse here.
func rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("qrlink — scan a code to continue\n"))
}
