package admin

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrSessionExpired   = errors.New("session expired")
)

type Credentials struct {
	username string
	password string
}

func NewCredentials(username, password string) (Credentials, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Credentials{}, ErrUsernameRequired
	}
	if password == "" {
		return Credentials{}, ErrPasswordRequired
	}
	return Credentials{username: username, password: password}, nil
}

func (c Credentials) Username() string { return c.username }
func (c Credentials) Password() string { return c.password }

// Session is created on login and dies on logout or when ExpiresAt passes.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func NewSession(username string, now time.Time, ttl time.Duration) Session {
	return Session{
		ID:        uuid.New(),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

func (s Session) Remaining(now time.Time) time.Duration {
	if s.IsExpired(now) {
		return 0
	}
	return s.ExpiresAt.Sub(now)
}
