package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zapponejosh/khronos/internal/config"
)

// requestTimeout bounds every handler, including observance resolution.
const requestTimeout = 30 * time.Second

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health                          database ping + catalog size
//	GET    /api/v1/calendars                supported calendars, current year
//	GET    /api/v1/today                    current date in one calendar
//	GET    /api/v1/convert                  ISO date from one calendar to others
//	GET    /api/v1/jd/{jd}                  a Julian Day in every calendar
//	GET    /api/v1/add                      date plus an offset
//	GET    /api/v1/diff                     signed days between two dates
//	GET    /api/v1/observances/{year}       observances in a Gregorian year
//	GET    /api/v1/observances/{year}/ics   same, as an iCalendar feed
//	POST   /api/v1/observances              create (API key)
//	DELETE /api/v1/observances/{id}         delete (API key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RequestIDMiddleware(),
		RecoveryMiddleware(log),
		middleware.RealIP,
		LoggingMiddleware(log),
		CORSMiddleware(),
		middleware.Timeout(requestTimeout),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", "METHOD_NOT_ALLOWED")
	})

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/calendars", handlers.ListCalendars)
		r.Get("/today", handlers.GetToday)
		r.Get("/convert", handlers.Convert)
		r.Get("/jd/{jd}", handlers.GetJD)
		r.Get("/add", handlers.AddOffset)
		r.Get("/diff", handlers.Diff)

		r.Route("/observances", func(r chi.Router) {
			r.Get("/{year}", handlers.GetObservances)
			r.Get("/{year}/ics", handlers.GetObservancesICS)

			r.Group(func(r chi.Router) {
				r.Use(AuthMiddleware(cfg, log))
				r.Post("/", handlers.CreateObservance)
				r.Delete("/{id}", handlers.DeleteObservance)
			})
		})
	})

	return r
}
