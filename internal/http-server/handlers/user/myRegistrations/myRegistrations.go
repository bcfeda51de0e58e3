package myRegistrations

import (
	"context"
	"log/slog"
	"net/http"

	"collegeEvents/internal/http-server/middleware/mwauth"
	"collegeEvents/internal/lib/api/response"
	"collegeEvents/internal/lib/logger/sl"
	"collegeEvents/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type ListResponse struct {
	Items []models.UserRegistration `json:"items"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationLister
type RegistrationLister interface {
	ListRegistrationsByUser(ctx context.Context, userID string) ([]models.UserRegistration, error)
}

func New(log *slog.Logger, lister RegistrationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.myRegistrations.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id, ok := mwauth.IdentityFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Unauthorized"))
			return
		}

		items, err := lister.ListRegistrationsByUser(r.Context(), id.ID)
		if err != nil {
			log.Error("failed to get registrations", sl.Err(err), slog.String("user_id", id.ID))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get registrations"))
			return
		}

		if items == nil {
			items = []models.UserRegistration{}
		}

		render.JSON(w, r, ListResponse{Items: items})
	}
}
