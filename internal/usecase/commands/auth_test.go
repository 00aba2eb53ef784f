//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"consultation-booking/internal/domain/admin"
	"consultation-booking/internal/infra"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/pkg/jwt"
	"consultation-booking/internal/usecase/commands"
	commandsmock "consultation-booking/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	cmds     commands.AdminAuthCommands
	sessions *commandsmock.MockSessionStore
	metrics  *commandsmock.MockMetrics
	tokens   *jwt.Service
	clock    *clock.MockClock
}

func newAuthFixture(t *testing.T) authFixture {
	ctrl := gomock.NewController(t)
	cfg := config.NewTestConfig()
	sessions := commandsmock.NewMockSessionStore(ctrl)
	metrics := commandsmock.NewMockMetrics(ctrl)
	tokens := jwt.NewService(cfg.Session.Secret)
	clk := clock.NewMockClock(time.Now())

	return authFixture{
		cmds: commands.NewAdminAuthCommands(sessions, tokens, metrics, clk, commands.AdminAuthConfig{
			Username:     cfg.Admin.Username,
			PasswordHash: cfg.Admin.PasswordHash,
			SessionTTL:   2 * time.Hour,
		}),
		sessions: sessions,
		metrics:  metrics,
		tokens:   tokens,
		clock:    clk,
	}
}

func TestAdminAuth_Login(t *testing.T) {
	t.Run("success stores a session and signs its id", func(t *testing.T) {
		f := newAuthFixture(t)
		var saved admin.Session
		f.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s admin.Session) error { saved = s; return nil })

		res, err := f.cmds.Login(context.Background(), " admin ", config.TestAdminPassword)
		require.NoError(t, err)
		assert.Equal(t, "admin", res.Session.Username)
		assert.Equal(t, 2*time.Hour, res.Session.ExpiresAt.Sub(res.Session.CreatedAt))
		assert.Equal(t, saved.ID, res.Session.ID)

		claims, err := f.tokens.ValidateToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, saved.ID, claims.SessionID)
	})

	testCases := []struct {
		name     string
		username string
		password string
		wantErr  error
		counted  bool
	}{
		{name: "missing username", username: " ", password: "x", wantErr: errs.ErrDomainValidation},
		{name: "missing password", username: "admin", password: "", wantErr: errs.ErrDomainValidation},
		{name: "wrong password", username: "admin", password: "nope", wantErr: errs.ErrInvalidCredentials, counted: true},
		{name: "wrong username", username: "root", password: config.TestAdminPassword, wantErr: errs.ErrInvalidCredentials, counted: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAuthFixture(t)
			if tc.counted {
				f.metrics.EXPECT().AdminLoginFailed().Times(1)
			}
			_, err := f.cmds.Login(context.Background(), tc.username, tc.password)
			assert.True(t, errs.Is(err, tc.wantErr))
		})
	}
}

func TestAdminAuth_Authenticate(t *testing.T) {
	issue := func(f authFixture, ttl time.Duration) (admin.Session, string) {
		s := admin.NewSession("admin", f.clock.Now(), ttl)
		token, err := f.tokens.GenerateToken(s.ID, s.Username, s.CreatedAt, s.ExpiresAt)
		require.NoError(t, err)
		return s, token
	}

	t.Run("live session", func(t *testing.T) {
		f := newAuthFixture(t)
		s, token := issue(f, time.Hour)
		f.sessions.EXPECT().Get(gomock.Any(), s.ID).Return(&s, nil)

		got, err := f.cmds.Authenticate(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, s.ID, got.ID)
	})

	t.Run("missing token", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.cmds.Authenticate(context.Background(), "")
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("garbage token", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.cmds.Authenticate(context.Background(), "not.a.jwt")
		assert.True(t, errs.Is(err, errs.ErrSessionNotFound))
	})

	t.Run("logged out session", func(t *testing.T) {
		f := newAuthFixture(t)
		s, token := issue(f, time.Hour)
		f.sessions.EXPECT().Get(gomock.Any(), s.ID).Return(nil, infra.WrapRepoErr("session not found", nil, infra.KindNotFound))

		_, err := f.cmds.Authenticate(context.Background(), token)
		assert.True(t, errs.Is(err, errs.ErrSessionNotFound))
	})

	t.Run("expired session is deleted", func(t *testing.T) {
		f := newAuthFixture(t)
		s, token := issue(f, time.Hour)
		stale := s
		stale.ExpiresAt = f.clock.Now().Add(-time.Minute)
		f.sessions.EXPECT().Get(gomock.Any(), s.ID).Return(&stale, nil)
		f.sessions.EXPECT().Delete(gomock.Any(), s.ID).Return(nil)

		_, err := f.cmds.Authenticate(context.Background(), token)
		assert.ErrorIs(t, err, errs.ErrSessionExpired)
	})
}

func TestAdminAuth_Logout(t *testing.T) {
	f := newAuthFixture(t)
	id := uuid.New()
	token, err := f.tokens.GenerateToken(id, "admin", f.clock.Now(), f.clock.Now().Add(time.Hour))
	require.NoError(t, err)

	f.sessions.EXPECT().Delete(gomock.Any(), id).Return(nil)
	require.NoError(t, f.cmds.Logout(context.Background(), token))

	// unknown tokens are a no-op
	require.NoError(t, f.cmds.Logout(context.Background(), "garbage"))
}
