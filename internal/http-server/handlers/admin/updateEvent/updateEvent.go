package updateEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"collegeEvents/internal/lib/api/response"
	"collegeEvents/internal/lib/api/validate"
	"collegeEvents/internal/lib/logger/sl"
	"collegeEvents/internal/models"
	"collegeEvents/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

// UpdateRequest is a partial update: absent fields keep their stored value.
type UpdateRequest struct {
	Title       *string    `json:"title" validate:"omitnil,min=3"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	Capacity    *int       `json:"capacity" validate:"omitnil,min=0,max=2147483647"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	UpdateEvent(ctx context.Context, id string, upd models.EventUpdate) (*models.Event, error)
}

func New(log *slog.Logger, updater EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.updateEvent.New"

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

		var req UpdateRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Info("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validate.Struct(req); err != nil {
			log.Info("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FromValidate(err))
			return
		}

		// When only one bound is sent the stored row decides, via the table check.
		if req.StartTime != nil && req.EndTime != nil && !req.EndTime.After(*req.StartTime) {
			log.Info("end_time is not after start_time")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Invalid("end_time", "field end_time must be after start_time"))
			return
		}

		event, err := updater.UpdateEvent(r.Context(), eventID, models.EventUpdate{
			Title:       req.Title,
			Description: req.Description,
			Location:    req.Location,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Capacity:    req.Capacity,
		})
		switch {
		case errors.Is(err, storage.ErrEventNotFound):
			log.Info("event not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("Event not found"))
			return
		case errors.Is(err, storage.ErrInvalidSchedule):
			log.Info("invalid schedule", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Invalid("end_time", "field end_time must be after start_time"))
			return
		case err != nil:
			log.Error("failed to update event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update event"))
			return
		}

		log.Info("event updated")

		render.JSON(w, r, event)
	}
}
