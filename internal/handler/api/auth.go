package api

import (
	"log/slog"
	"net/http"

	reqdto "consultation-booking/internal/handler/dto/request"
	resdto "consultation-booking/internal/handler/dto/response"
	"consultation-booking/internal/handler/httperr"
	"consultation-booking/internal/handler/middleware"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/pkg/cookie"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth   commands.AdminAuthCommands
	clock  clock.Clock
	cookie config.CookieConfig
}

func NewAuthHandler(auth commands.AdminAuthCommands, clock clock.Clock, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{auth: auth, clock: clock, cookie: cookieCfg}
}

// @Summary Admin login
// @Description Opens an admin session; the token is set as an HttpOnly cookie and returned in the body
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if _, err := req.ToDomain(); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, errs.UserMessage(err), nil)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		abortWithUsecaseErr(c, err, "Login failed")
		return
	}

	now := h.clock.Now()
	cookie.SetSessionCookie(c, h.cookie, result.Token, result.Session.Remaining(now))
	c.JSON(http.StatusOK, resdto.LoginResponse{
		Token:   result.Token,
		Session: resdto.FromSession(&result.Session, now),
	})
}

// @Summary Admin logout
// @Description Ends the admin session and clears the cookie
// @Tags admin
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.SessionToken(c); token != "" {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			// the cookie is cleared regardless; a stale session expires on its own
			slog.Warn("Admin logout failed", "error", err.Error())
		}
	}
	cookie.ClearSessionCookie(c, h.cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current admin session
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	sess, ok := middleware.GetAdminSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Admin session required", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(sess, h.clock.Now()))
}
