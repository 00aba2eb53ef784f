//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"consultation-booking/internal/handler/dto/request"
	resdto "consultation-booking/internal/handler/dto/response"
	"consultation-booking/internal/pkg/cookie"
	"consultation-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	LoginURL  = "/api/admin/login"
	LogoutURL = "/api/admin/logout"
)

// LoginAdmin returns the session token; the same value is set as the session cookie.
func LoginAdmin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, LoginURL,
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response resdto.LoginResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &response))
	require.NotEmpty(t, response.Token, "Login response carries no token")

	sessionCookie := httptest.ExtractCookie(w, cookie.SessionCookieName)
	require.NotNil(t, sessionCookie, "Session cookie not set")
	require.Equal(t, response.Token, sessionCookie.Value)

	return response.Token
}

func LogoutAdmin(t *testing.T, router *gin.Engine, token string) {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, LogoutURL, nil, token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
