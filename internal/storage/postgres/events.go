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
	"github.com/lib/pq"
)

const eventColumns = `id, title, description, location, start_time, end_time, capacity, created_by, created_at`

const scheduleConstraint = "events_schedule_check"

func scanEvent(row rowScanner) (models.Event, error) {
	var (
		event                            models.Event
		description, location, createdBy sql.NullString
	)

	err := row.Scan(
		&event.ID,
		&event.Title,
		&description,
		&location,
		&event.StartTime,
		&event.EndTime,
		&event.Capacity,
		&createdBy,
		&event.CreatedAt,
	)
	if err != nil {
		return models.Event{}, err
	}

	event.Description = nullString(description)
	event.Location = nullString(location)
	event.CreatedBy = nullString(createdBy)

	return event, nil
}

func availableSeats(capacity, registered int) int {
	return capacity - registered
}

// fillAvailableSeats counts active registrations for all events in one
// grouped query and sets AvailableSeats on each of them.
func fillAvailableSeats(ctx context.Context, q querier, events []models.Event) error {
	if len(events) == 0 {
		return nil
	}

	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}

	query := `
		SELECT event_id, COUNT(*)
		FROM registrations
		WHERE status = $1 AND event_id = ANY($2::uuid[])
		GROUP BY event_id`

	rows, err := q.QueryContext(ctx, query, string(models.StatusRegistered), pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to count registrations: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int, len(events))
	for rows.Next() {
		var (
			id    string
			count int
		)
		if err = rows.Scan(&id, &count); err != nil {
			return fmt.Errorf("failed to scan registration count: %w", err)
		}
		counts[id] = count
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating registration counts: %w", err)
	}

	for i := range events {
		events[i].AvailableSeats = availableSeats(events[i].Capacity, counts[events[i].ID])
	}

	return nil
}

func (s *Storage) CreateEvent(ctx context.Context, in models.NewEvent) (*models.Event, error) {
	const op = "storage.postgres.CreateEvent"

	var createdBy interface{}
	if in.CreatedBy != "" {
		createdBy = in.CreatedBy
	}

	query := `
		INSERT INTO events (id, title, description, location, start_time, end_time, capacity, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + eventColumns

	row := s.DB.QueryRowContext(ctx, query,
		uuid.NewString(),
		in.Title,
		in.Description,
		in.Location,
		in.StartTime,
		in.EndTime,
		in.Capacity,
		createdBy,
	)

	event, err := scanEvent(row)
	if err != nil {
		if pqErr, ok := violation(err, codeCheckViolation); ok && pqErr.Constraint == scheduleConstraint {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidSchedule)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	events := []models.Event{event}
	if err = fillAvailableSeats(ctx, s.DB, events); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &events[0], nil
}

func (s *Storage) UpdateEvent(ctx context.Context, id string, upd models.EventUpdate) (*models.Event, error) {
	const op = "storage.postgres.UpdateEvent"

	var (
		sets []string
		args []interface{}
	)

	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		set("title", *upd.Title)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.Location != nil {
		set("location", *upd.Location)
	}
	if upd.StartTime != nil {
		set("start_time", *upd.StartTime)
	}
	if upd.EndTime != nil {
		set("end_time", *upd.EndTime)
	}
	if upd.Capacity != nil {
		set("capacity", *upd.Capacity)
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE events
		SET %s
		WHERE id = $%d
		RETURNING %s`, strings.Join(sets, ", "), len(args), eventColumns)

	event, err := scanEvent(s.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		if pqErr, ok := violation(err, codeCheckViolation); ok && pqErr.Constraint == scheduleConstraint {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidSchedule)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	events := []models.Event{event}
	if err = fillAvailableSeats(ctx, s.DB, events); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &events[0], nil
}

// DeleteEvent removes the event together with its registrations and reports
// whether the event existed.
func (s *Storage) DeleteEvent(ctx context.Context, id string) (bool, error) {
	const op = "storage.postgres.DeleteEvent"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM registrations WHERE event_id = $1`, id); err != nil {
		return false, fmt.Errorf("%s: failed to delete registrations: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("%s: failed to delete event: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return n > 0, nil
}

func (s *Storage) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	const op = "storage.postgres.GetEventByID"

	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	event, err := scanEvent(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	events := []models.Event{event}
	if err = fillAvailableSeats(ctx, s.DB, events); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &events[0], nil
}

func (s *Storage) ListEvents(ctx context.Context, f models.EventFilter) (*models.EventPage, error) {
	const op = "storage.postgres.ListEvents"

	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 10
	}

	var (
		where []string
		args  []interface{}
	)

	if f.Search != "" {
		args = append(args, "%"+escapeLike(f.Search)+"%")
		n := len(args)
		where = append(where, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR location ILIKE $%d)", n, n, n))
	}
	if f.Upcoming {
		where = append(where, "start_time >= NOW()")
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	page := &models.EventPage{
		Items:    []models.Event{},
		Page:     f.Page,
		PageSize: f.PageSize,
	}

	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`+clause, args...).Scan(&page.Total); err != nil {
		return nil, fmt.Errorf("%s: failed to count events: %w", op, err)
	}

	args = append(args, f.PageSize, (f.Page-1)*f.PageSize)
	query := fmt.Sprintf(`SELECT %s FROM events%s ORDER BY start_time ASC, id ASC LIMIT $%d OFFSET $%d`,
		eventColumns, clause, len(args)-1, len(args))

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get events: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan event: %w", op, err)
		}
		page.Items = append(page.Items, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating events: %w", op, err)
	}

	if err = fillAvailableSeats(ctx, s.DB, page.Items); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
