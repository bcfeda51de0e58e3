package postgres

import (
	"context"
	"testing"
	"time"

	"collegeEvents/internal/models"
	"collegeEvents/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const missingID = "9b2f3c1e-0a7d-4d61-8f5e-3c2b1a0f9e8d"

func TestCreateEvent(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	admin := mustCreateUser(t, s, "Admin", "admin@x.com", models.RoleAdmin)
	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)

	event, err := s.CreateEvent(ctx, models.NewEvent{
		Title:       "Cultural Night",
		Description: strPtr("Music and dance"),
		StartTime:   start,
		EndTime:     start.Add(3 * time.Hour),
		Capacity:    50,
		CreatedBy:   admin.ID,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Cultural Night", event.Title)
	require.NotNil(t, event.Description)
	assert.Equal(t, "Music and dance", *event.Description)
	assert.Nil(t, event.Location)
	require.NotNil(t, event.CreatedBy)
	assert.Equal(t, admin.ID, *event.CreatedBy)
	assert.True(t, start.Equal(event.StartTime))
	assert.Equal(t, 50, event.AvailableSeats)

	got, err := s.GetEventByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, 50, got.AvailableSeats)
}

func TestCreateEventRejectsBadSchedule(t *testing.T) {
	s := setupStorage(t)

	start := time.Now().Add(time.Hour)
	_, err := s.CreateEvent(context.Background(), models.NewEvent{
		Title:     "Backwards",
		StartTime: start,
		EndTime:   start.Add(-time.Minute),
		Capacity:  1,
	})
	assert.ErrorIs(t, err, storage.ErrInvalidSchedule)
}

func TestGetEventNotFound(t *testing.T) {
	s := setupStorage(t)

	_, err := s.GetEventByID(context.Background(), missingID)
	assert.ErrorIs(t, err, storage.ErrEventNotFound)
}

func TestUpdateEventPartial(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	start := time.Now().Add(48 * time.Hour)
	event := mustCreateEvent(t, s, "Hackathon", start, 10)
	user := mustCreateUser(t, s, "U", "u@x.com", models.RoleUser)

	_, err := s.RegisterForEvent(ctx, user.ID, event.ID)
	require.NoError(t, err)

	updated, err := s.UpdateEvent(ctx, event.ID, models.EventUpdate{
		Location: strPtr("Main hall"),
		Capacity: intPtr(3),
	})
	require.NoError(t, err)

	assert.Equal(t, "Hackathon", updated.Title)
	require.NotNil(t, updated.Location)
	assert.Equal(t, "Main hall", *updated.Location)
	assert.Equal(t, 3, updated.Capacity)
	assert.Equal(t, 2, updated.AvailableSeats)
	assert.True(t, event.EndTime.Equal(updated.EndTime))
}

func TestUpdateEventErrors(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	_, err := s.UpdateEvent(ctx, missingID, models.EventUpdate{Title: strPtr("x")})
	assert.ErrorIs(t, err, storage.ErrEventNotFound)

	start := time.Now().Add(time.Hour)
	event := mustCreateEvent(t, s, "Talk", start, 5)

	// end moved before the stored start
	before := start.Add(-time.Hour)
	_, err = s.UpdateEvent(ctx, event.ID, models.EventUpdate{EndTime: &before})
	assert.ErrorIs(t, err, storage.ErrInvalidSchedule)
}

func TestDeleteEventCascades(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	event := mustCreateEvent(t, s, "Fest", time.Now().Add(time.Hour), 5)
	a := mustCreateUser(t, s, "A", "a@x.com", models.RoleUser)
	b := mustCreateUser(t, s, "B", "b@x.com", models.RoleUser)

	_, err := s.RegisterForEvent(ctx, a.ID, event.ID)
	require.NoError(t, err)
	_, err = s.RegisterForEvent(ctx, b.ID, event.ID)
	require.NoError(t, err)
	require.NoError(t, s.CancelRegistration(ctx, b.ID, event.ID))

	existed, err := s.DeleteEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	regs, err := s.ListRegistrationsByEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, regs)

	_, err = s.GetEventByID(ctx, event.ID)
	assert.ErrorIs(t, err, storage.ErrEventNotFound)

	existed, err = s.DeleteEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestListEventsSearchAndUpcoming(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	now := time.Now()
	future := mustCreateEvent(t, s, "Cultural Fest", now.Add(24*time.Hour), 100)
	mustCreateEvent(t, s, "CULTURAL evening (past)", now.Add(-48*time.Hour), 100)
	mustCreateEvent(t, s, "Robotics Workshop", now.Add(72*time.Hour), 20)

	inHall, err := s.CreateEvent(ctx, models.NewEvent{
		Title:     "Open Mic",
		Location:  strPtr("Multicultural Centre"),
		StartTime: now.Add(96 * time.Hour),
		EndTime:   now.Add(98 * time.Hour),
		Capacity:  30,
	})
	require.NoError(t, err)

	page, err := s.ListEvents(ctx, models.EventFilter{Page: 1, PageSize: 10, Search: "cultural", Upcoming: true})
	require.NoError(t, err)

	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, future.ID, page.Items[0].ID)
	assert.Equal(t, inHall.ID, page.Items[1].ID)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)

	all, err := s.ListEvents(ctx, models.EventFilter{Page: 1, PageSize: 10, Search: "cultural"})
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)
}

func TestListEventsSearchIsLiteral(t *testing.T) {
	s := setupStorage(t)

	mustCreateEvent(t, s, "100% attendance", time.Now().Add(time.Hour), 1)
	mustCreateEvent(t, s, "1000 attendees", time.Now().Add(2*time.Hour), 1)

	page, err := s.ListEvents(context.Background(), models.EventFilter{Search: "0%"})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "100% attendance", page.Items[0].Title)
}

func TestListEventsPaginationAndSeats(t *testing.T) {
	s := setupStorage(t)
	ctx := context.Background()

	now := time.Now().Add(time.Hour)
	var events []*models.Event
	for i := 0; i < 5; i++ {
		events = append(events, mustCreateEvent(t, s, "Event", now.Add(time.Duration(i)*time.Hour), 10))
	}

	user := mustCreateUser(t, s, "U", "u@x.com", models.RoleUser)
	_, err := s.RegisterForEvent(ctx, user.ID, events[2].ID)
	require.NoError(t, err)
	_, err = s.RegisterForEvent(ctx, user.ID, events[3].ID)
	require.NoError(t, err)
	require.NoError(t, s.CancelRegistration(ctx, user.ID, events[3].ID))

	page, err := s.ListEvents(ctx, models.EventFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)

	assert.Equal(t, 5, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, events[2].ID, page.Items[0].ID)
	assert.Equal(t, 9, page.Items[0].AvailableSeats)
	assert.Equal(t, events[3].ID, page.Items[1].ID)
	assert.Equal(t, 10, page.Items[1].AvailableSeats)

	last, err := s.ListEvents(ctx, models.EventFilter{Page: 4, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, last.Items)
	assert.NotNil(t, last.Items)
}

func TestEscapeLike(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `50\% off`, escapeLike("50% off"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
	assert.Equal(t, "plain", escapeLike("plain"))
}

func TestAvailableSeats(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, availableSeats(10, 0))
	assert.Equal(t, 0, availableSeats(3, 3))
	assert.Equal(t, -1, availableSeats(2, 3))
}

func intPtr(i int) *int {
	return &i
}
