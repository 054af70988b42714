package credentials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"munasabat-backend/config"
	"munasabat-backend/internal/status"
)

func TestMockBackend_Authenticate(t *testing.T) {
	backend := NewMockBackend("admin@munasabatkom.com")
	ctx := context.Background()

	identity, err := backend.Authenticate(ctx, "ADMIN@munasabatkom.com", "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin_mock_id", identity.ID)
	assert.Equal(t, "admin@munasabatkom.com", identity.Email)

	identity, err = backend.Authenticate(ctx, "demo@munasabatkom.com", "demo1234")
	require.NoError(t, err)
	assert.Equal(t, "u1", identity.ID)

	_, err = backend.Authenticate(ctx, "admin@munasabatkom.com", "nope")
	assert.ErrorIs(t, err, status.ErrWrongPassword)

	_, err = backend.Authenticate(ctx, "ghost@example.com", "admin")
	assert.ErrorIs(t, err, status.ErrUserNotFound)
}

func TestNewBackend_Selection(t *testing.T) {
	backend, err := NewBackend(&config.Config{AuthBackend: "mock", AdminEmail: "a@b.com"})
	require.NoError(t, err)
	assert.IsType(t, &MockBackend{}, backend)

	backend, err = NewBackend(&config.Config{AuthBackend: "firebase", FirebaseAPIKey: "key"})
	require.NoError(t, err)
	assert.IsType(t, &FirebaseBackend{}, backend)

	_, err = NewBackend(&config.Config{AuthBackend: "firebase"})
	assert.Error(t, err, "firebase requires an api key")

	_, err = NewBackend(&config.Config{AuthBackend: "ldap"})
	assert.Error(t, err)
}

func TestMapProviderError(t *testing.T) {
	assert.ErrorIs(t, mapProviderError("EMAIL_NOT_FOUND"), status.ErrUserNotFound)
	assert.ErrorIs(t, mapProviderError("INVALID_PASSWORD"), status.ErrWrongPassword)
	assert.ErrorIs(t, mapProviderError("INVALID_LOGIN_CREDENTIALS"), status.ErrWrongPassword)
	assert.ErrorIs(t, mapProviderError("INVALID_EMAIL"), status.ErrInvalidEmail)
	assert.ErrorIs(t, mapProviderError("TOO_MANY_ATTEMPTS_TRY_LATER : blocked"), status.ErrTooManyRequests)
	assert.ErrorIs(t, mapProviderError("UNKNOWN_CODE"), status.ErrBackendUnavailable)
}
