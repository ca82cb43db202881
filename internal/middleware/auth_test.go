package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Olii83/gym-tracker/internal/auth"
	"github.com/Olii83/gym-tracker/internal/middleware"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddlewareHandler_AuthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoginChecker := NewMockloginChecker(ctrl)
	authMiddleware := middleware.NewAuthMiddlewareHandler(mockLoginChecker)

	testCases := []struct {
		name               string
		path               string
		method             string
		token              string
		expectedStatusCode int
		mockUserID         string
		mockErr            error
	}{
		{
			name:               "AllowedPathWithoutToken",
			path:               "/version",
			method:             "GET",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "LoginPathWithoutToken",
			path:               "/a/login",
			method:             "POST",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "NotAllowedPathWithoutToken",
			path:               "/training",
			method:             "GET",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "ValidToken",
			path:               "/secure/resource",
			method:             "GET",
			token:              "valid-token",
			expectedStatusCode: http.StatusOK,
			mockUserID:         "user-1",
		},
		{
			name:               "InvalidToken",
			path:               "/secure/resource",
			method:             "GET",
			token:              "invalid-token",
			expectedStatusCode: http.StatusUnauthorized,
			mockErr:            auth.ErrNotLoggedIn,
		},
		{
			name:               "OptionsRequest",
			path:               "/secure/resource",
			method:             "OPTIONS",
			expectedStatusCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, tc.path, nil)
			assert.NoError(t, err)
			if tc.token != "" {
				req.Header.Add("X-GYMTRACKER-TOKEN", tc.token)
			}

			if tc.token != "" {
				mockLoginChecker.EXPECT().
					GetLoggedUser(gomock.Any(), tc.token).
					Return(tc.mockUserID, tc.mockErr).AnyTimes()
			}

			var gotUserID string
			rr := httptest.NewRecorder()
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = auth.UserIDFromContext(r.Context())
			})
			authMiddleware.AuthCheck()(handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
			if tc.mockUserID != "" {
				assert.Equal(t, tc.mockUserID, gotUserID)
			}
		})
	}
}
