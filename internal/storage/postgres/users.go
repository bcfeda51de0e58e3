package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"collegeEvents/internal/models"
	"collegeEvents/internal/storage"

	"github.com/google/uuid"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Storage) CreateUser(ctx context.Context, name, email, passwordHash string, role models.Role) (*models.User, error) {
	const op = "storage.postgres.CreateUser"

	user := models.User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: normalizeEmail(email),
		Role:  role,
	}

	query := `
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := s.DB.QueryRowContext(ctx, query, user.ID, user.Name, user.Email, passwordHash, string(role)).Scan(&user.CreatedAt)
	if err != nil {
		if _, ok := violation(err, codeUniqueViolation); ok {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEmailTaken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func (s *Storage) FindByEmail(ctx context.Context, email string) (*models.UserCredentials, error) {
	const op = "storage.postgres.FindByEmail"

	query := `
		SELECT id, name, email, role, created_at, password_hash
		FROM users
		WHERE email = $1`

	var creds models.UserCredentials
	err := s.DB.QueryRowContext(ctx, query, normalizeEmail(email)).Scan(
		&creds.ID,
		&creds.Name,
		&creds.Email,
		&creds.Role,
		&creds.CreatedAt,
		&creds.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &creds, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.postgres.GetUserByID"

	query := `
		SELECT id, name, email, role, created_at
		FROM users
		WHERE id = $1`

	var user models.User
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

func (s *Storage) HasAdmin(ctx context.Context) (bool, error) {
	const op = "storage.postgres.HasAdmin"

	var exists bool
	err := s.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE role = $1)`, string(models.RoleAdmin)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (s *Storage) SetRole(ctx context.Context, email string, role models.Role) error {
	const op = "storage.postgres.SetRole"

	res, err := s.DB.ExecContext(ctx,
		`UPDATE users SET role = $1, updated_at = NOW() WHERE email = $2`,
		string(role), normalizeEmail(email),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	return nil
}
