package listEvents

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"collegeEvents/internal/lib/api/response"
	"collegeEvents/internal/lib/api/validate"
	"collegeEvents/internal/lib/logger/sl"
	"collegeEvents/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

type ListRequest struct {
	Page     int    `json:"page" validate:"min=1,max=1000000"`
	PageSize int    `json:"pageSize" validate:"min=1,max=100"`
	Search   string `json:"search"`
	Upcoming bool   `json:"upcoming"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	ListEvents(ctx context.Context, filter models.EventFilter) (*models.EventPage, error)
}

func New(log *slog.Logger, lister EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		req, field, err := parseQuery(r)
		if err != nil {
			log.Info("invalid query parameter", slog.String("field", field), sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Invalid(field, "field "+field+" is not valid"))
			return
		}

		if err = validate.Struct(req); err != nil {
			log.Info("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FromValidate(err))
			return
		}

		page, err := lister.ListEvents(r.Context(), models.EventFilter{
			Page:     req.Page,
			PageSize: req.PageSize,
			Search:   req.Search,
			Upcoming: req.Upcoming,
		})
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		log.Debug("events retrieved successfully",
			slog.Int("count", len(page.Items)),
			slog.Int("total", page.Total),
		)

		responseOK(w, r, page)
	}
}

// parseQuery returns the offending parameter name along with any error.
func parseQuery(r *http.Request) (ListRequest, string, error) {
	q := r.URL.Query()

	req := ListRequest{
		Page:     defaultPage,
		PageSize: defaultPageSize,
		Search:   q.Get("search"),
	}

	var err error

	if v := q.Get("page"); v != "" {
		if req.Page, err = strconv.Atoi(v); err != nil {
			return req, "page", err
		}
	}

	if v := q.Get("pageSize"); v != "" {
		if req.PageSize, err = strconv.Atoi(v); err != nil {
			return req, "pageSize", err
		}
	}

	if v := q.Get("upcoming"); v != "" {
		if req.Upcoming, err = strconv.ParseBool(v); err != nil {
			return req, "upcoming", err
		}
	}

	return req, "", nil
}

func responseOK(w http.ResponseWriter, r *http.Request, page *models.EventPage) {
	if page.Items == nil {
		page.Items = []models.Event{}
	}

	render.JSON(w, r, page)
}
