package myRegistrations

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"collegeEvents/internal/http-server/handlers/user/myRegistrations/mocks"
	"collegeEvents/internal/http-server/middleware/mwauth"
	"collegeEvents/internal/lib/logger/handlers/slogdiscard"
	"collegeEvents/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const userID = "16fd2706-8baf-433b-82eb-8c7fada847da"

func TestMyRegistrationsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	start := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.RegistrationLister)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.RegistrationLister) {
				m.On("ListRegistrationsByUser", mock.Anything, userID).Return([]models.UserRegistration{
					{
						ID:        "r9",
						Status:    models.StatusRegistered,
						CreatedAt: start.Add(-48 * time.Hour),
						EventID:   "e1",
						Title:     "Poetry Night",
						StartTime: start,
						EndTime:   start.Add(2 * time.Hour),
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"items":[{
				"id":"r9",
				"status":"registered",
				"created_at":"2025-05-30T14:00:00Z",
				"event_id":"e1",
				"title":"Poetry Night",
				"start_time":"2025-06-01T14:00:00Z",
				"end_time":"2025-06-01T16:00:00Z",
				"location":null
			}]}`,
		},
		{
			name: "Empty",
			mockSetup: func(m *mocks.RegistrationLister) {
				m.On("ListRegistrationsByUser", mock.Anything, userID).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"items":[]}`,
		},
		{
			name: "Storage error",
			mockSetup: func(m *mocks.RegistrationLister) {
				m.On("ListRegistrationsByUser", mock.Anything, userID).Return(nil, errors.New("closed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to get registrations"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewRegistrationLister(t)
			tc.mockSetup(lister)

			handler := New(logger, lister)

			req := httptest.NewRequest(http.MethodGet, "/me/registrations", nil)
			req = req.WithContext(mwauth.WithIdentity(req.Context(), mwauth.Identity{ID: userID, Role: models.RoleUser}))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
