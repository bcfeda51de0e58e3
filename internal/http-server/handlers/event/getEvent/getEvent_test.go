package getEvent

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"collegeEvents/internal/http-server/handlers/event/getEvent/mocks"
	"collegeEvents/internal/lib/logger/handlers/slogdiscard"
	"collegeEvents/internal/models"
	"collegeEvents/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const eventID = "0f8e7d6c-5b4a-4321-9876-0123456789ab"

func TestGetEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	start := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	location := "Main Hall"

	testCases := []struct {
		name           string
		id             string
		mockSetup      func(m *mocks.EventGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			id:   eventID,
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetEventByID", mock.Anything, eventID).Return(&models.Event{
					ID:             eventID,
					Title:          "Career Fair",
					Location:       &location,
					StartTime:      start,
					EndTime:        start.Add(4 * time.Hour),
					Capacity:       2,
					CreatedAt:      start.Add(-24 * time.Hour),
					AvailableSeats: 0,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"id":"` + eventID + `",
				"title":"Career Fair",
				"description":null,
				"location":"Main Hall",
				"start_time":"2025-04-10T09:00:00Z",
				"end_time":"2025-04-10T13:00:00Z",
				"capacity":2,
				"created_by":null,
				"created_at":"2025-04-09T09:00:00Z",
				"available_seats":0
			}`,
		},
		{
			name: "Not found",
			id:   eventID,
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetEventByID", mock.Anything, eventID).Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Event not found"}`,
		},
		{
			name:           "Malformed id",
			id:             "not-a-uuid",
			mockSetup:      func(m *mocks.EventGetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid event id format"}`,
		},
		{
			name: "Storage error",
			id:   eventID,
			mockSetup: func(m *mocks.EventGetter) {
				m.On("GetEventByID", mock.Anything, eventID).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to get event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewEventGetter(t)
			tc.mockSetup(getter)

			r := chi.NewRouter()
			r.Get("/events/{id}", New(logger, getter))

			req := httptest.NewRequest(http.MethodGet, "/events/"+tc.id, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}

func TestGetEventWithoutRouteParam(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger(), mocks.NewEventGetter(t))

	req := httptest.NewRequest(http.MethodGet, "/events/", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"event id is required"}`, rr.Body.String())
}
