package request

import (
	"consultation-booking/internal/domain/admin"
)

// LoginRequest leaves presence checks to admin.NewCredentials so the
// messages match the login form.
type LoginRequest struct {
	Username string `json:"username" binding:"max=128"`
	Password string `json:"password" binding:"max=256"`
}

func (r *LoginRequest) ToDomain() (admin.Credentials, error) {
	return admin.NewCredentials(r.Username, r.Password)
}
