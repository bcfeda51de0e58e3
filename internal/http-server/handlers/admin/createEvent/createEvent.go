package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"collegeEvents/internal/http-server/middleware/mwauth"
	"collegeEvents/internal/lib/api/response"
	"collegeEvents/internal/lib/api/validate"
	"collegeEvents/internal/lib/logger/sl"
	"collegeEvents/internal/models"
	"collegeEvents/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type EventRequest struct {
	Title       string    `json:"title" validate:"required,min=3"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	Capacity    *int      `json:"capacity" validate:"required,min=0,max=2147483647"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, in models.NewEvent) (*models.Event, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.createEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		admin, ok := mwauth.IdentityFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Unauthorized"))
			return
		}

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Info("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Debug("request body decoded", slog.Any("request", req))

		if err = validate.Struct(req); err != nil {
			log.Info("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FromValidate(err))
			return
		}

		event, err := creator.CreateEvent(r.Context(), models.NewEvent{
			Title:       req.Title,
			Description: req.Description,
			Location:    req.Location,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Capacity:    *req.Capacity,
			CreatedBy:   admin.ID,
		})
		if errors.Is(err, storage.ErrInvalidSchedule) {
			log.Info("invalid schedule", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Invalid("end_time", "field end_time must be after start_time"))
			return
		}
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))
			return
		}

		log.Info("event added", slog.String("id", event.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, event)
	}
}
