package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"consultation-booking/internal/domain/admin"
	"consultation-booking/internal/handler/httperr"
	"consultation-booking/internal/pkg/cookie"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	ctxAdminSessionKey = "admin_session"
	ctxAdminTokenKey   = "admin_token"
)

type AuthMiddleware struct {
	auth commands.AdminAuthCommands
}

func NewAuthMiddleware(auth commands.AdminAuthCommands) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAdmin lets the request through only with a live admin session.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrSessionNotFound, "Admin session required", nil)
			return
		}

		sess, err := m.auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case errs.Is(err, errs.ErrSessionExpired):
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Session expired", nil)
			case errs.Is(err, errs.ErrSessionNotFound):
				slog.Warn("Admin session rejected", "error", err.Error())
				httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session", nil)
			default:
				httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			}
			return
		}

		c.Set(ctxAdminSessionKey, sess)
		c.Set(ctxAdminTokenKey, token)
		c.Next()
	}
}

// SessionToken prefers the session cookie and falls back to a Bearer header.
func SessionToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetAdminSession(c *gin.Context) (*admin.Session, bool) {
	v, exists := c.Get(ctxAdminSessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*admin.Session)
	return sess, ok
}

func GetAdminToken(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminTokenKey)
	if !exists {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}
