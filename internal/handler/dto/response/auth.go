package response

import (
	"time"

	"consultation-booking/internal/domain/admin"

	"github.com/google/uuid"
)

type SessionResponse struct {
	ID               uuid.UUID `json:"id"`
	Username         string    `json:"username"`
	CreatedAt        time.Time `json:"createdAt"`
	ExpiresAt        time.Time `json:"expiresAt"`
	RemainingSeconds int64     `json:"remainingSeconds"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

func FromSession(s *admin.Session, now time.Time) SessionResponse {
	return SessionResponse{
		ID:               s.ID,
		Username:         s.Username,
		CreatedAt:        s.CreatedAt,
		ExpiresAt:        s.ExpiresAt,
		RemainingSeconds: int64(s.Remaining(now).Seconds()),
	}
}
