package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"collegeEvents/internal/models"
	"collegeEvents/internal/storage"

	"github.com/google/uuid"
)

// RegisterForEvent moves the (user, event) pair to registered.
//
// The event row is locked for the duration of the transaction, so
// concurrent registrations for one event are serialized and the seat count
// can not be exceeded. A full event is reported before a duplicate. A
// cancelled row is reused instead of inserting a new one.
func (s *Storage) RegisterForEvent(ctx context.Context, userID, eventID string) (*models.Registration, error) {
	const op = "storage.postgres.RegisterForEvent"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var capacity int
	err = tx.QueryRowContext(ctx, `SELECT capacity FROM events WHERE id = $1 FOR UPDATE`, eventID).Scan(&capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: failed to get event: %w", op, err)
	}

	var registered int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = $2`,
		eventID, string(models.StatusRegistered),
	).Scan(&registered)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to count registrations: %w", op, err)
	}

	if availableSeats(capacity, registered) <= 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEventFull)
	}

	reg := models.Registration{UserID: userID, EventID: eventID}
	found := true

	err = tx.QueryRowContext(ctx, `
		SELECT id, status, created_at, updated_at
		FROM registrations
		WHERE user_id = $1 AND event_id = $2`, userID, eventID,
	).Scan(&reg.ID, &reg.Status, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: failed to check existing registration: %w", op, err)
		}
		found = false
	}

	if found && reg.Status == models.StatusRegistered {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyRegistered)
	}

	if found {
		err = tx.QueryRowContext(ctx, `
			UPDATE registrations
			SET status = $1, updated_at = NOW()
			WHERE id = $2
			RETURNING updated_at`, string(models.StatusRegistered), reg.ID,
		).Scan(&reg.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to reactivate registration: %w", op, err)
		}
	} else {
		reg.ID = uuid.NewString()
		err = tx.QueryRowContext(ctx, `
			INSERT INTO registrations (id, user_id, event_id, status)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at, updated_at`, reg.ID, userID, eventID, string(models.StatusRegistered),
		).Scan(&reg.CreatedAt, &reg.UpdatedAt)
		if err != nil {
			if _, ok := violation(err, codeUniqueViolation); ok {
				return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyRegistered)
			}
			return nil, fmt.Errorf("%s: failed to create registration: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	reg.Status = models.StatusRegistered

	return &reg, nil
}

func (s *Storage) CancelRegistration(ctx context.Context, userID, eventID string) error {
	const op = "storage.postgres.CancelRegistration"

	res, err := s.DB.ExecContext(ctx, `
		UPDATE registrations
		SET status = $1, updated_at = NOW()
		WHERE user_id = $2 AND event_id = $3 AND status = $4`,
		string(models.StatusCancelled), userID, eventID, string(models.StatusRegistered),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotRegistered)
	}

	return nil
}

func (s *Storage) ListRegistrationsByEvent(ctx context.Context, eventID string) ([]models.EventRegistration, error) {
	const op = "storage.postgres.ListRegistrationsByEvent"

	query := `
		SELECT r.id, r.status, r.created_at, u.id, u.name, u.email
		FROM registrations r
		JOIN users u ON u.id = r.user_id
		WHERE r.event_id = $1
		ORDER BY r.created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get registrations: %w", op, err)
	}
	defer rows.Close()

	regs := []models.EventRegistration{}
	for rows.Next() {
		var reg models.EventRegistration
		err = rows.Scan(
			&reg.ID,
			&reg.Status,
			&reg.CreatedAt,
			&reg.UserID,
			&reg.UserName,
			&reg.UserEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan registration: %w", op, err)
		}
		regs = append(regs, reg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating registrations: %w", op, err)
	}

	return regs, nil
}

func (s *Storage) ListRegistrationsByUser(ctx context.Context, userID string) ([]models.UserRegistration, error) {
	const op = "storage.postgres.ListRegistrationsByUser"

	query := `
		SELECT r.id, r.status, r.created_at, e.id, e.title, e.start_time, e.end_time, e.location
		FROM registrations r
		JOIN events e ON e.id = r.event_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get registrations: %w", op, err)
	}
	defer rows.Close()

	regs := []models.UserRegistration{}
	for rows.Next() {
		var (
			reg      models.UserRegistration
			location sql.NullString
		)
		err = rows.Scan(
			&reg.ID,
			&reg.Status,
			&reg.CreatedAt,
			&reg.EventID,
			&reg.Title,
			&reg.StartTime,
			&reg.EndTime,
			&location,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan registration: %w", op, err)
		}
		reg.Location = nullString(location)
		regs = append(regs, reg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating registrations: %w", op, err)
	}

	return regs, nil
}
