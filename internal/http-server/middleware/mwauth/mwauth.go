package mwauth

import (
	"context"
	"log/slog"
	"net/http"

	"collegeEvents/internal/lib/api/response"
	"collegeEvents/internal/lib/logger/sl"
	"collegeEvents/internal/lib/tokens"
	"collegeEvents/internal/models"

	"github.com/go-chi/render"
)

type ctxKey struct{}

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	ID   string
	Role models.Role
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenVerifier
type TokenVerifier interface {
	Verify(token string) (tokens.Identity, error)
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}

// New rejects requests without a valid bearer token.
func New(log *slog.Logger, verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			token, err := tokens.FromHeader(r.Header.Get("Authorization"))
			if err != nil {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Unauthorized"))
				return
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				log.Debug("token rejected", sl.Err(err), slog.String("path", r.URL.Path))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Invalid token"))
				return
			}

			ctx := WithIdentity(r.Context(), Identity{
				ID:   claims.ID,
				Role: models.Role(claims.Role),
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// RequireRole lets the request through only when the authenticated identity
// has one of the given roles. It must run after New.
func RequireRole(log *slog.Logger, roles ...models.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/role"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("Unauthorized"))
				return
			}

			for _, role := range roles {
				if id.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.Info("access denied",
				slog.String("user_id", id.ID),
				slog.String("role", string(id.Role)),
				slog.String("path", r.URL.Path),
			)
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("Forbidden"))
		}

		return http.HandlerFunc(fn)
	}
}
