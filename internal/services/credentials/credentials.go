// Package credentials abstracts the collaborator that verifies email and
// password. The backend is picked once at startup from configuration: the
// in-process mock keeps the app usable offline, the firebase backend talks to
// the real identity provider.
package credentials

import (
	"context"
	"fmt"

	"munasabat-backend/config"
)

// Identity is the verified account a backend returns.
type Identity struct {
	ID    string
	Name  string
	Email string
}

// Backend verifies a credential pair. Failures are the typed errors from
// internal/status so callers can map them to user-facing messages.
type Backend interface {
	Authenticate(ctx context.Context, email, password string) (Identity, error)
}

// NewBackend creates the configured backend.
func NewBackend(cfg *config.Config) (Backend, error) {
	switch cfg.AuthBackend {
	case "mock":
		return NewMockBackend(cfg.AdminEmail), nil

	case "firebase":
		if cfg.FirebaseAPIKey == "" {
			return nil, fmt.Errorf("firebase backend requires FIREBASE_API_KEY")
		}
		return NewFirebaseBackend(cfg.FirebaseAPIKey), nil

	default:
		return nil, fmt.Errorf("unsupported auth backend: %s", cfg.AuthBackend)
	}
}
