//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.SessionConfig
}

func NewJWTHelper(cfg config.SessionConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateUnstoredToken signs a well-formed token for a session that was never saved.
func (h *JWTHelper) GenerateUnstoredToken(t *testing.T, username string) string {
	t.Helper()
	now := time.Now()
	token, err := jwt.NewService(h.cfg.Secret).GenerateToken(uuid.New(), username, now, now.Add(h.cfg.TTL))
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, username string) string {
	t.Helper()
	issued := time.Now().Add(-2 * h.cfg.TTL)
	token, err := jwt.NewService(h.cfg.Secret).GenerateToken(uuid.New(), username, issued, issued.Add(h.cfg.TTL))
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) ForgedToken(t *testing.T, username string) string {
	t.Helper()
	now := time.Now()
	token, err := jwt.NewService("not-"+h.cfg.Secret).GenerateToken(uuid.New(), username, now, now.Add(h.cfg.TTL))
	require.NoError(t, err)
	return token
}
