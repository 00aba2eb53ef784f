//go:build unit

package password_test

import (
	"testing"

	"consultation-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.NoError(t, password.ValidateHash(hash))

	assert.NoError(t, password.ComparePassword(hash, "s3cret-pass"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong"), password.ErrMismatch)
	assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.ComparePassword("short", "x"), password.ErrMalformedHash)

	_, err = password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
	assert.ErrorIs(t, password.ValidateHash("plaintext"), password.ErrMalformedHash)
}
