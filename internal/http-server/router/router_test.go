package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"collegeEvents/internal/config"
	"collegeEvents/internal/lib/logger/handlers/slogdiscard"
	"collegeEvents/internal/lib/tokens"
	"collegeEvents/internal/models"
	"collegeEvents/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	knownEvent = "2f1e0d9c-8b7a-4654-9321-0fedcba98765"
	userID     = "1b4e28ba-2fa1-41d2-883f-0016d3cca427"
	adminID    = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
)

// fakeStorage knows a single event and registers anyone for it.
type fakeStorage struct{}

func (fakeStorage) ListEvents(context.Context, models.EventFilter) (*models.EventPage, error) {
	return &models.EventPage{Page: 1, PageSize: 10}, nil
}

func (fakeStorage) GetEventByID(_ context.Context, id string) (*models.Event, error) {
	if id != knownEvent {
		return nil, storage.ErrEventNotFound
	}
	return &models.Event{ID: id, Title: "Open Day", Capacity: 1, AvailableSeats: 1}, nil
}

func (fakeStorage) RegisterForEvent(_ context.Context, userID, eventID string) (*models.Registration, error) {
	return &models.Registration{ID: "r1", UserID: userID, EventID: eventID, Status: models.StatusRegistered}, nil
}

func (fakeStorage) CancelRegistration(context.Context, string, string) error {
	return storage.ErrNotRegistered
}

func (fakeStorage) CreateEvent(_ context.Context, in models.NewEvent) (*models.Event, error) {
	return &models.Event{ID: knownEvent, Title: in.Title, Capacity: in.Capacity, AvailableSeats: in.Capacity}, nil
}

func (fakeStorage) UpdateEvent(context.Context, string, models.EventUpdate) (*models.Event, error) {
	return nil, storage.ErrEventNotFound
}

func (fakeStorage) DeleteEvent(_ context.Context, id string) (bool, error) {
	return id == knownEvent, nil
}

func (fakeStorage) ListRegistrationsByEvent(context.Context, string) ([]models.EventRegistration, error) {
	return nil, nil
}

func (fakeStorage) ListRegistrationsByUser(context.Context, string) ([]models.UserRegistration, error) {
	return nil, nil
}

func (fakeStorage) CreateUser(_ context.Context, name, email, _ string, role models.Role) (*models.User, error) {
	return &models.User{ID: userID, Name: name, Email: email, Role: role}, nil
}

func (fakeStorage) FindByEmail(context.Context, string) (*models.UserCredentials, error) {
	return nil, storage.ErrUserNotFound
}

func (fakeStorage) GetUserByID(_ context.Context, id string) (*models.User, error) {
	return &models.User{ID: id, Name: "Someone", Email: "someone@college.edu", Role: models.RoleUser}, nil
}

func newTestRouter(t *testing.T) (http.Handler, *tokens.Manager) {
	t.Helper()

	manager := tokens.NewManager("router-test-secret", time.Hour, "college-events")
	cfg := config.HTTPServer{
		CORSAllowedOrigins: []string{"*"},
		AuthRatePerMinute:  2,
	}

	return New(slogdiscard.NewDiscardLogger(), fakeStorage{}, manager, cfg), manager
}

func bearer(t *testing.T, m *tokens.Manager, id string, role models.Role) string {
	t.Helper()

	token, err := m.Issue(id, string(role))
	require.NoError(t, err)

	return "Bearer " + token
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	router, manager := newTestRouter(t)

	userAuth := bearer(t, manager, userID, models.RoleUser)
	adminAuth := bearer(t, manager, adminID, models.RoleAdmin)

	testCases := []struct {
		name           string
		method         string
		path           string
		auth           string
		body           string
		expectedStatus int
		expectedBody   string
	}{
		{name: "Health", method: http.MethodGet, path: "/health", expectedStatus: http.StatusOK, expectedBody: `{"status":"ok"}`},
		{name: "Unknown route", method: http.MethodGet, path: "/nowhere", expectedStatus: http.StatusNotFound, expectedBody: `{"error":"Not found"}`},
		{name: "Public list", method: http.MethodGet, path: "/events", expectedStatus: http.StatusOK, expectedBody: `{"items":[],"page":1,"pageSize":10,"total":0}`},
		{name: "Public detail", method: http.MethodGet, path: "/events/" + knownEvent, expectedStatus: http.StatusOK},
		{name: "Register without token", method: http.MethodPost, path: "/events/" + knownEvent + "/register", expectedStatus: http.StatusUnauthorized, expectedBody: `{"error":"Unauthorized"}`},
		{name: "Register with garbage token", method: http.MethodPost, path: "/events/" + knownEvent + "/register", auth: "Bearer nope", expectedStatus: http.StatusUnauthorized, expectedBody: `{"error":"Invalid token"}`},
		{name: "Register as user", method: http.MethodPost, path: "/events/" + knownEvent + "/register", auth: userAuth, expectedStatus: http.StatusOK, expectedBody: `{"success":true}`},
		{name: "Cancel when not registered", method: http.MethodPost, path: "/events/" + knownEvent + "/cancel", auth: userAuth, expectedStatus: http.StatusBadRequest, expectedBody: `{"error":"Not registered"}`},
		{name: "Admin route as user", method: http.MethodDelete, path: "/admin/events/" + knownEvent, auth: userAuth, expectedStatus: http.StatusForbidden, expectedBody: `{"error":"Forbidden"}`},
		{name: "Admin route without token", method: http.MethodDelete, path: "/admin/events/" + knownEvent, expectedStatus: http.StatusUnauthorized},
		{name: "Admin delete", method: http.MethodDelete, path: "/admin/events/" + knownEvent, auth: adminAuth, expectedStatus: http.StatusOK, expectedBody: `{"success":true}`},
		{
			name:           "Admin create",
			method:         http.MethodPost,
			path:           "/admin/events",
			auth:           adminAuth,
			body:           `{"title":"Open Day","start_time":"2030-01-01T10:00:00Z","end_time":"2030-01-01T12:00:00Z","capacity":5}`,
			expectedStatus: http.StatusCreated,
		},
		{name: "Profile", method: http.MethodGet, path: "/me/profile", auth: userAuth, expectedStatus: http.StatusOK},
		{name: "My registrations", method: http.MethodGet, path: "/me/registrations", auth: userAuth, expectedStatus: http.StatusOK, expectedBody: `{"items":[]}`},
		{name: "Auth me", method: http.MethodGet, path: "/auth/me", auth: userAuth, expectedStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			if tc.auth != "" {
				req.Header.Set("Authorization", tc.auth)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			}
		})
	}
}

func TestAuthRoutesAreRateLimited(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.co","password":"secret1"}`))
		req.RemoteAddr = "203.0.113.7:5555"
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		statuses = append(statuses, rr.Code)
	}

	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, statuses)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "college_events_http_requests_total")
}
