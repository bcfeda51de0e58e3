package signUp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

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
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type Response struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserCreator
type UserCreator interface {
	CreateUser(ctx context.Context, name, email, passwordHash string, role models.Role) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenIssuer
type TokenIssuer interface {
	Issue(userID, role string) (string, error)
}

func New(log *slog.Logger, users UserCreator, issuer TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.signUp.New"

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

		req.Name = strings.TrimSpace(req.Name)

		if err = validate.Struct(req); err != nil {
			log.Info("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FromValidate(err))
			return
		}

		hash, err := password.Hash(req.Password)
		if errors.Is(err, password.ErrTooLong) {
			// multi-byte runes can pass the rune-counted max tag
			log.Info("password too long")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Invalid("password", "field password must be at most 72 bytes"))
			return
		}
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register"))
			return
		}

		user, err := users.CreateUser(r.Context(), req.Name, req.Email, hash, models.RoleUser)
		if errors.Is(err, storage.ErrEmailTaken) {
			log.Info("email already in use")
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("Email already in use"))
			return
		}
		if err != nil {
			log.Error("failed to create user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register"))
			return
		}

		token, err := issuer.Issue(user.ID, string(user.Role))
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register"))
			return
		}

		log.Info("user registered", slog.String("user_id", user.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{Token: token, User: user})
	}
}
