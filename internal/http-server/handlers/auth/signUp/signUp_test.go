package signUp

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"collegeEvents/internal/http-server/handlers/auth/signUp/mocks"
	"collegeEvents/internal/lib/logger/handlers/slogdiscard"
	"collegeEvents/internal/lib/password"
	"collegeEvents/internal/models"
	"collegeEvents/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSignUpHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	user := &models.User{
		ID:        "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		Name:      "Maya",
		Email:     "maya@college.edu",
		Role:      models.RoleUser,
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	hashOf := func(plain string) interface{} {
		return mock.MatchedBy(func(hash string) bool {
			return password.Matches(hash, plain)
		})
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(users *mocks.UserCreator, issuer *mocks.TokenIssuer)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"name":"  Maya ","email":"maya@college.edu","password":"secret1"}`,
			mockSetup: func(users *mocks.UserCreator, issuer *mocks.TokenIssuer) {
				users.On("CreateUser", mock.Anything, "Maya", "maya@college.edu", hashOf("secret1"), models.RoleUser).
					Return(user, nil)
				issuer.On("Issue", user.ID, "user").Return("signed.jwt.token", nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "signed.jwt.token", resp.Token)
				require.NotNil(t, resp.User)
				assert.Equal(t, user.ID, resp.User.ID)
				assert.Equal(t, models.RoleUser, resp.User.Role)
				assert.NotContains(t, body, "password")
			},
		},
		{
			name:        "Email taken",
			requestBody: `{"name":"Maya","email":"maya@college.edu","password":"secret1"}`,
			mockSetup: func(users *mocks.UserCreator, issuer *mocks.TokenIssuer) {
				users.On("CreateUser", mock.Anything, "Maya", "maya@college.edu", mock.Anything, models.RoleUser).
					Return(nil, storage.ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Email already in use"}`,
		},
		{
			name:           "Short password",
			requestBody:    `{"name":"Maya","email":"maya@college.edu","password":"123"}`,
			mockSetup:      func(users *mocks.UserCreator, issuer *mocks.TokenIssuer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":[{"field":"password","message":"field password must be at least 6 characters"}]}`,
		},
		{
			name:           "Password over 72 characters",
			requestBody:    `{"name":"Maya","email":"maya@college.edu","password":"` + strings.Repeat("a", 80) + `"}`,
			mockSetup:      func(users *mocks.UserCreator, issuer *mocks.TokenIssuer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":[{"field":"password","message":"field password must be at most 72 characters"}]}`,
		},
		{
			name:           "Password over 72 bytes in multi-byte runes",
			requestBody:    `{"name":"Maya","email":"maya@college.edu","password":"` + strings.Repeat("é", 40) + `"}`,
			mockSetup:      func(users *mocks.UserCreator, issuer *mocks.TokenIssuer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":[{"field":"password","message":"field password must be at most 72 bytes"}]}`,
		},
		{
			name:           "Bad email",
			requestBody:    `{"name":"Maya","email":"maya-at-college","password":"secret1"}`,
			mockSetup:      func(users *mocks.UserCreator, issuer *mocks.TokenIssuer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":[{"field":"email","message":"field email is not a valid email"}]}`,
		},
		{
			name:           "Name too short after trim",
			requestBody:    `{"name":" M ","email":"maya@college.edu","password":"secret1"}`,
			mockSetup:      func(users *mocks.UserCreator, issuer *mocks.TokenIssuer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"errors":[{"field":"name","message":"field name must be at least 2 characters"}]}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{`,
			mockSetup:      func(users *mocks.UserCreator, issuer *mocks.TokenIssuer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"failed to decode request"}`,
		},
		{
			name:        "Storage error",
			requestBody: `{"name":"Maya","email":"maya@college.edu","password":"secret1"}`,
			mockSetup: func(users *mocks.UserCreator, issuer *mocks.TokenIssuer) {
				users.On("CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(nil, errors.New("pool exhausted"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to register"}`,
		},
		{
			name:        "Token error",
			requestBody: `{"name":"Maya","email":"maya@college.edu","password":"secret1"}`,
			mockSetup: func(users *mocks.UserCreator, issuer *mocks.TokenIssuer) {
				users.On("CreateUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(user, nil)
				issuer.On("Issue", user.ID, "user").Return("", errors.New("signing failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"failed to register"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			users := mocks.NewUserCreator(t)
			issuer := mocks.NewTokenIssuer(t)
			tc.mockSetup(users, issuer)

			handler := New(logger, users, issuer)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(tc.requestBody))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
