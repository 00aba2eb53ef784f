package commands

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"consultation-booking/internal/domain/admin"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/pkg/password"
)

var ErrTokenGeneration = errs.New("token generation failed")

type AdminAuthConfig struct {
	Username     string
	PasswordHash string
	SessionTTL   time.Duration
}

type LoginResult struct {
	Session admin.Session
	Token   string
}

type AdminAuthCommands interface {
	Login(ctx context.Context, username, pass string) (*LoginResult, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (*admin.Session, error)
}

type adminAuthCommandsImpl struct {
	sessions SessionStore
	tokens   SessionTokens
	metrics  Metrics
	clock    clock.Clock
	cfg      AdminAuthConfig
}

func NewAdminAuthCommands(sessions SessionStore, tokens SessionTokens, metrics Metrics, clock clock.Clock, cfg AdminAuthConfig) AdminAuthCommands {
	return &adminAuthCommandsImpl{
		sessions: sessions,
		tokens:   tokens,
		metrics:  metrics,
		clock:    clock,
		cfg:      cfg,
	}
}

func (a *adminAuthCommandsImpl) Login(ctx context.Context, username, pass string) (*LoginResult, error) {
	creds, err := admin.NewCredentials(username, pass)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if !a.checkCredentials(creds) {
		a.metrics.AdminLoginFailed()
		slog.Warn("Admin login rejected", "username", creds.Username())
		return nil, errs.ErrInvalidCredentials
	}

	sess := admin.NewSession(creds.Username(), a.clock.Now(), a.cfg.SessionTTL)
	if err := a.sessions.Save(ctx, sess); err != nil {
		return nil, errs.Wrap(err, "save admin session")
	}

	token, err := a.tokens.GenerateToken(sess.ID, sess.Username, sess.CreatedAt, sess.ExpiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{Session: sess, Token: token}, nil
}

// Logout is idempotent: an unknown or already expired session is not an error.
func (a *adminAuthCommandsImpl) Logout(ctx context.Context, token string) error {
	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		return nil
	}
	if err := a.sessions.Delete(ctx, claims.SessionID); err != nil {
		return errs.Wrap(err, "delete admin session")
	}
	return nil
}

func (a *adminAuthCommandsImpl) Authenticate(ctx context.Context, token string) (*admin.Session, error) {
	if token == "" {
		return nil, errs.ErrSessionNotFound
	}
	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSessionNotFound)
	}

	sess, err := a.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSessionNotFound)
		}
		return nil, errs.Wrap(err, "load admin session")
	}
	if sess.Username != claims.Subject {
		return nil, errs.ErrSessionNotFound
	}

	if sess.IsExpired(a.clock.Now()) {
		if err := a.sessions.Delete(ctx, sess.ID); err != nil {
			slog.Warn("Failed to delete expired admin session", "session_id", sess.ID, "error", err.Error())
		}
		return nil, errs.ErrSessionExpired
	}
	return sess, nil
}

func (a *adminAuthCommandsImpl) checkCredentials(creds admin.Credentials) bool {
	userOK := subtle.ConstantTimeCompare([]byte(creds.Username()), []byte(a.cfg.Username)) == 1
	err := password.ComparePassword(a.cfg.PasswordHash, creds.Password())
	if err != nil && !errors.Is(err, password.ErrMismatch) {
		slog.Error("Admin password hash check failed", "error", err.Error())
	}
	return userOK && err == nil
}
