package router

import (
	"log/slog"
	"net/http"

	"collegeEvents/internal/config"
	"collegeEvents/internal/http-server/handlers/admin/createEvent"
	"collegeEvents/internal/http-server/handlers/admin/deleteEvent"
	"collegeEvents/internal/http-server/handlers/admin/eventRegistrations"
	"collegeEvents/internal/http-server/handlers/admin/updateEvent"
	"collegeEvents/internal/http-server/handlers/auth/signIn"
	"collegeEvents/internal/http-server/handlers/auth/signUp"
	"collegeEvents/internal/http-server/handlers/event/cancelRegistration"
	"collegeEvents/internal/http-server/handlers/event/getEvent"
	"collegeEvents/internal/http-server/handlers/event/listEvents"
	"collegeEvents/internal/http-server/handlers/event/registerForEvent"
	"collegeEvents/internal/http-server/handlers/health"
	"collegeEvents/internal/http-server/handlers/user/getCurrentUser"
	"collegeEvents/internal/http-server/handlers/user/myRegistrations"
	"collegeEvents/internal/http-server/middleware/mwauth"
	"collegeEvents/internal/http-server/middleware/mwlogger"
	"collegeEvents/internal/http-server/middleware/mwmetrics"
	"collegeEvents/internal/http-server/middleware/mwratelimit"
	"collegeEvents/internal/lib/api/response"
	"collegeEvents/internal/lib/metrics"
	"collegeEvents/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Storage is everything the HTTP layer needs from persistence.
type Storage interface {
	listEvents.EventLister
	getEvent.EventGetter
	registerForEvent.EventRegistrar
	cancelRegistration.RegistrationCanceller
	createEvent.EventCreator
	updateEvent.EventUpdater
	deleteEvent.EventDeleter
	eventRegistrations.RegistrationLister
	myRegistrations.RegistrationLister
	signUp.UserCreator
	signIn.UserFinder
	getCurrentUser.UserGetter
}

// Tokens issues and verifies bearer tokens.
type Tokens interface {
	mwauth.TokenVerifier
	signUp.TokenIssuer
}

func New(log *slog.Logger, storage Storage, tokens Tokens, cfg config.HTTPServer) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(mwlogger.New(log))
	router.Use(mwmetrics.New)
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	authenticated := mwauth.New(log, tokens)

	router.Get("/health", health.New())
	router.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	router.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(mwratelimit.New(cfg.AuthRatePerMinute))
			r.Post("/register", signUp.New(log, storage, tokens))
			r.Post("/login", signIn.New(log, storage, tokens))
		})
		r.With(authenticated).Get("/me", getCurrentUser.New(log, storage))
	})

	router.Route("/events", func(r chi.Router) {
		r.Get("/", listEvents.New(log, storage))
		r.Get("/{id}", getEvent.New(log, storage))

		r.Group(func(r chi.Router) {
			r.Use(authenticated)
			r.Post("/{id}/register", registerForEvent.New(log, storage))
			r.Post("/{id}/cancel", cancelRegistration.New(log, storage))
		})
	})

	router.Route("/me", func(r chi.Router) {
		r.Use(authenticated)
		r.Get("/profile", getCurrentUser.NewProfile(log, storage))
		r.Get("/registrations", myRegistrations.New(log, storage))
	})

	router.Route("/admin", func(r chi.Router) {
		r.Use(authenticated)
		r.Use(mwauth.RequireRole(log, models.RoleAdmin))

		r.Post("/events", createEvent.New(log, storage))
		r.Put("/events/{id}", updateEvent.New(log, storage))
		r.Delete("/events/{id}", deleteEvent.New(log, storage))
		r.Get("/events/{id}/registrations", eventRegistrations.New(log, storage))
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("Not found"))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusMethodNotAllowed)
		render.JSON(w, r, response.Error("Method not allowed"))
	})

	return router
}
