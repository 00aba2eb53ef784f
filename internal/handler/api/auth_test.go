//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"consultation-booking/internal/domain/admin"
	"consultation-booking/internal/handler/api"
	resdto "consultation-booking/internal/handler/dto/response"
	"consultation-booking/internal/handler/middleware"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/pkg/cookie"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/commands"
	"consultation-booking/tests/common/httptest"
	"consultation-booking/tests/common/testutil"
	commandsmock "consultation-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var authNow = time.Date(2026, time.October, 14, 19, 0, 0, 0, time.UTC)

type AuthHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	mockAuth *commandsmock.MockAdminAuthCommands
	handler  *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAuth = commandsmock.NewMockAdminAuthCommands(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockAuth, clock.NewMockClock(authNow), config.NewTestConfig().Cookie)

	authMw := middleware.NewAuthMiddleware(s.mockAuth)
	s.router.POST("/api/admin/login", s.handler.Login)
	s.router.POST("/api/admin/logout", s.handler.Logout)
	s.router.GET("/api/admin/session", authMw.RequireAdmin(), s.handler.Session)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/api/admin/login"
	reqBody := map[string]any{"username": "admin", "password": config.TestAdminPassword}
	sess := admin.NewSession("admin", authNow, 2*time.Hour)

	s.Run("success: sets the session cookie and returns the token", func() {
		s.mockAuth.EXPECT().Login(gomock.Any(), "admin", config.TestAdminPassword).
			Return(&commands.LoginResult{Session: sess, Token: "signed-token"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed-token", response.Token)
		s.Equal(sess.ID, response.Session.ID)
		s.Equal(int64(7200), response.Session.RemainingSeconds)

		c := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(c)
		s.Equal("signed-token", c.Value)
		s.True(c.HttpOnly)
		s.Equal(7200, c.MaxAge)
	})

	s.Run("error: 400 with the form message when a field is missing", func() {
		testCases := []struct {
			name        string
			mutate      func(m map[string]any)
			expectedMsg string
		}{
			{name: "missing username", mutate: testutil.Field("username", nil), expectedMsg: "Username is required"},
			{name: "blank username", mutate: testutil.Field("username", "   "), expectedMsg: "Username is required"},
			{name: "missing password", mutate: testutil.Field("password", nil), expectedMsg: "Password is required"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectedMsg)
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  errs.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid username or password",
			},
			{
				name:           "session store down",
				commandsError:  errors.New("redis: connection refused"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Login failed",
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAuth.EXPECT().Login(gomock.Any(), "admin", config.TestAdminPassword).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.Nil(httptest.ExtractCookie(rec, cookie.SessionCookieName))
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: deletes the session and clears the cookie", func() {
		s.mockAuth.EXPECT().Logout(gomock.Any(), "bearer-token").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		c := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(c)
		s.Less(c.MaxAge, 0)
	})

	s.Run("success: cookie token wins over the header", func() {
		s.mockAuth.EXPECT().Logout(gomock.Any(), "cookie-token").Return(nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.SessionCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, "/api/admin/logout", nil, cookies, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: 204 without any token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/logout", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: 204 even when the store fails", func() {
		s.mockAuth.EXPECT().Logout(gomock.Any(), "bearer-token").Return(errors.New("redis down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestSession() {
	url := "/api/admin/session"
	sess := admin.NewSession("admin", authNow.Add(-30*time.Minute), 2*time.Hour)

	s.Run("success: returns the live session", func() {
		s.mockAuth.EXPECT().Authenticate(gomock.Any(), "bearer-token").Return(&sess, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(sess.ID, response.ID)
		s.Equal("admin", response.Username)
		s.Equal(int64(90*60), response.RemainingSeconds)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Admin session required")
	})

	s.Run("error: 401 for rejected sessions", func() {
		testCases := []struct {
			name        string
			authErr     error
			expectedMsg string
		}{
			{name: "expired", authErr: errs.ErrSessionExpired, expectedMsg: "Session expired"},
			{name: "unknown", authErr: errs.Mark(errors.New("token is malformed"), errs.ErrSessionNotFound), expectedMsg: "Invalid or expired session"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAuth.EXPECT().Authenticate(gomock.Any(), "bearer-token").Return(nil, tc.authErr).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 500 when the session store fails", func() {
		s.mockAuth.EXPECT().Authenticate(gomock.Any(), "bearer-token").Return(nil, errors.New("redis down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
