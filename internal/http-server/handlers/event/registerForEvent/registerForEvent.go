package registerForEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"collegeEvents/internal/http-server/middleware/mwauth"
	"collegeEvents/internal/lib/api/response"
	"collegeEvents/internal/lib/logger/sl"
	"collegeEvents/internal/lib/metrics"
	"collegeEvents/internal/models"
	"collegeEvents/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventRegistrar
type EventRegistrar interface {
	RegisterForEvent(ctx context.Context, userID, eventID string) (*models.Registration, error)
}

func New(log *slog.Logger, registrar EventRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.registerForEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		user, ok := mwauth.IdentityFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Unauthorized"))
			return
		}

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Info("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		if _, err := uuid.Parse(eventID); err != nil {
			log.Info("invalid event id format", sl.Err(err))
			metrics.Registrations.WithLabelValues(metrics.ActionRegister, metrics.OutcomeInvalid).Inc()
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(
			slog.String("event_id", eventID),
			slog.String("user_id", user.ID),
		)

		reg, err := registrar.RegisterForEvent(r.Context(), user.ID, eventID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				log.Info("event not found")
				metrics.Registrations.WithLabelValues(metrics.ActionRegister, metrics.OutcomeNotFound).Inc()
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("Event not found"))
			case errors.Is(err, storage.ErrEventFull):
				log.Info("event is full")
				metrics.Registrations.WithLabelValues(metrics.ActionRegister, metrics.OutcomeFull).Inc()
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Event is full"))
			case errors.Is(err, storage.ErrAlreadyRegistered):
				log.Info("already registered")
				metrics.Registrations.WithLabelValues(metrics.ActionRegister, metrics.OutcomeConflict).Inc()
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("Already registered"))
			default:
				log.Error("failed to register for event", sl.Err(err))
				metrics.Registrations.WithLabelValues(metrics.ActionRegister, metrics.OutcomeError).Inc()
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to register for event"))
			}
			return
		}

		metrics.Registrations.WithLabelValues(metrics.ActionRegister, metrics.OutcomeOK).Inc()
		log.Info("registered for event", slog.String("registration_id", reg.ID))

		render.JSON(w, r, response.Done())
	}
}
