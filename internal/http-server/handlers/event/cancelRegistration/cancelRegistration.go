package cancelRegistration

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"collegeEvents/internal/http-server/middleware/mwauth"
	"collegeEvents/internal/lib/api/response"
	"collegeEvents/internal/lib/logger/sl"
	"collegeEvents/internal/lib/metrics"
	"collegeEvents/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationCanceller
type RegistrationCanceller interface {
	CancelRegistration(ctx context.Context, userID, eventID string) error
}

func New(log *slog.Logger, canceller RegistrationCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.cancelRegistration.New"

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
			metrics.Registrations.WithLabelValues(metrics.ActionCancel, metrics.OutcomeInvalid).Inc()
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(
			slog.String("event_id", eventID),
			slog.String("user_id", user.ID),
		)

		err := canceller.CancelRegistration(r.Context(), user.ID, eventID)
		if errors.Is(err, storage.ErrNotRegistered) {
			log.Info("not registered")
			metrics.Registrations.WithLabelValues(metrics.ActionCancel, metrics.OutcomeNotFound).Inc()
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Not registered"))
			return
		}
		if err != nil {
			log.Error("failed to cancel registration", sl.Err(err))
			metrics.Registrations.WithLabelValues(metrics.ActionCancel, metrics.OutcomeError).Inc()
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to cancel registration"))
			return
		}

		metrics.Registrations.WithLabelValues(metrics.ActionCancel, metrics.OutcomeOK).Inc()
		log.Info("registration cancelled")

		render.JSON(w, r, response.Done())
	}
}
