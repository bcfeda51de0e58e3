package getCurrentUser

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"collegeEvents/internal/http-server/middleware/mwauth"
	"collegeEvents/internal/lib/api/response"
	"collegeEvents/internal/lib/logger/sl"
	"collegeEvents/internal/models"
	"collegeEvents/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Response struct {
	User *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserGetter
type UserGetter interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// New serves /auth/me, wrapping the user in {"user": ...}.
func New(log *slog.Logger, users UserGetter) http.HandlerFunc {
	return handler(log, users, "handlers.user.getCurrentUser.New", func(u *models.User) interface{} {
		return Response{User: u}
	})
}

// NewProfile serves /me/profile with the bare user object.
func NewProfile(log *slog.Logger, users UserGetter) http.HandlerFunc {
	return handler(log, users, "handlers.user.getCurrentUser.NewProfile", func(u *models.User) interface{} {
		return u
	})
}

func handler(log *slog.Logger, users UserGetter, op string, body func(*models.User) interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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

		user, err := users.GetUserByID(r.Context(), id.ID)
		if errors.Is(err, storage.ErrUserNotFound) {
			// token outlived the account
			log.Info("user not found", slog.String("user_id", id.ID))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Unauthorized"))
			return
		}
		if err != nil {
			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get user"))
			return
		}

		render.JSON(w, r, body(user))
	}
}
