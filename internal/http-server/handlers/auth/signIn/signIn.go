package signIn

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"collegeEvents/internal/lib/api/response"
	"collegeEvents/internal/lib/api/validate"
	"collegeEvents/internal/lib/logger/sl"
	"collegeEvents/internal/lib/password"
	"collegeEvents/internal/models"
	"collegeEvents/internal/storage"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type Response struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserFinder
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.UserCredentials, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenIssuer
type TokenIssuer interface {
	Issue(userID, role string) (string, error)
}

func New(log *slog.Logger, users UserFinder, issuer TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.signIn.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

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

		creds, err := users.FindByEmail(r.Context(), req.Email)
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Info("unknown email")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Invalid credentials"))
			return
		}
		if err != nil {
			log.Error("failed to find user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to login"))
			return
		}

		if !password.Matches(creds.PasswordHash, req.Password) {
			log.Info("password mismatch", slog.String("user_id", creds.ID))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("Invalid credentials"))
			return
		}

		token, err := issuer.Issue(creds.ID, string(creds.Role))
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to login"))
			return
		}

		log.Info("user logged in", slog.String("user_id", creds.ID))

		user := creds.User
		render.JSON(w, r, Response{Token: token, User: &user})
	}
}
