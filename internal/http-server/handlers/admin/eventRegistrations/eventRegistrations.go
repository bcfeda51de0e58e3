package eventRegistrations

import (
	"context"
	"log/slog"
	"net/http"

	"collegeEvents/internal/lib/api/response"
	"collegeEvents/internal/lib/logger/sl"
	"collegeEvents/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type ListResponse struct {
	Items []models.EventRegistration `json:"items"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationLister
type RegistrationLister interface {
	ListRegistrationsByEvent(ctx context.Context, eventID string) ([]models.EventRegistration, error)
}

// New lists every registration of an event, cancelled ones included.
func New(log *slog.Logger, lister RegistrationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.eventRegistrations.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		eventID := chi.URLParam(r, "id")
		if _, err := uuid.Parse(eventID); err != nil {
			log.Info("invalid event id format", slog.String("event_id", eventID))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		items, err := lister.ListRegistrationsByEvent(r.Context(), eventID)
		if err != nil {
			log.Error("failed to get registrations", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get registrations"))
			return
		}

		if items == nil {
			items = []models.EventRegistration{}
		}

		render.JSON(w, r, ListResponse{Items: items})
	}
}
