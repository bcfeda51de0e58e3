// Package bootstrap holds startup steps that must run before the server
// accepts traffic.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"collegeEvents/internal/config"
	"collegeEvents/internal/lib/password"
	"collegeEvents/internal/models"
	"collegeEvents/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AdminStore
type AdminStore interface {
	HasAdmin(ctx context.Context) (bool, error)
	CreateUser(ctx context.Context, name, email, passwordHash string, role models.Role) (*models.User, error)
	SetRole(ctx context.Context, email string, role models.Role) error
}

// EnsureAdmin seeds the configured admin account when no admin exists yet.
// If the configured email already belongs to a user, that user is promoted.
func EnsureAdmin(ctx context.Context, log *slog.Logger, store AdminStore, cfg config.Admin) error {
	const op = "bootstrap.EnsureAdmin"

	log = log.With(slog.String("op", op))

	exists, err := store.HasAdmin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		log.Debug("admin already present")
		return nil
	}

	if cfg.Email == "" || cfg.Password == "" {
		return fmt.Errorf("%s: admin email and password must be set", op)
	}

	hash, err := password.Hash(cfg.Password)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	user, err := store.CreateUser(ctx, cfg.Name, cfg.Email, hash, models.RoleAdmin)
	if errors.Is(err, storage.ErrEmailTaken) {
		if err = store.SetRole(ctx, cfg.Email, models.RoleAdmin); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		log.Warn("existing user promoted to admin", slog.String("email", cfg.Email))
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("default admin created", slog.String("email", user.Email), slog.String("id", user.ID))

	return nil
}
