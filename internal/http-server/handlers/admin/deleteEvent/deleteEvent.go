package deleteEvent

import (
	"context"
	"log/slog"
	"net/http"

	"collegeEvents/internal/lib/api/response"
	"collegeEvents/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(ctx context.Context, id string) (bool, error)
}

func New(log *slog.Logger, deleter EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.deleteEvent.New"

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

		log = log.With(slog.String("event_id", eventID))

		existed, err := deleter.DeleteEvent(r.Context(), eventID)
		if err != nil {
			log.Error("failed to delete event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))
			return
		}

		if !existed {
			log.Info("event not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Event not found"))
			return
		}

		log.Info("event deleted")

		render.JSON(w, r, response.Done())
	}
}
