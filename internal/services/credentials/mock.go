package credentials

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"munasabat-backend/internal/status"
)

type mockUser struct {
	id   string
	name string
	hash []byte
}

// MockBackend verifies against a small in-process account table. The admin
// account uses the fixed demo password "admin"; it exists so the app works
// with no identity provider configured at all.
type MockBackend struct {
	users map[string]mockUser
}

func NewMockBackend(adminEmail string) *MockBackend {
	backend := &MockBackend{users: make(map[string]mockUser)}
	backend.register("admin_mock_id", "Admin", adminEmail, "admin")
	backend.register("u1", "مستخدم تجريبي", "demo@munasabatkom.com", "demo1234")
	return backend
}

func (m *MockBackend) register(id, name, email, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash mock password", "email", email, "error", err)
		return
	}
	m.users[strings.ToLower(email)] = mockUser{id: id, name: name, hash: hash}
}

func (m *MockBackend) Authenticate(_ context.Context, email, password string) (Identity, error) {
	user, ok := m.users[strings.ToLower(email)]
	if !ok {
		return Identity{}, fmt.Errorf("%s: %w", email, status.ErrUserNotFound)
	}

	if err := bcrypt.CompareHashAndPassword(user.hash, []byte(password)); err != nil {
		return Identity{}, status.ErrWrongPassword
	}

	return Identity{ID: user.id, Name: user.name, Email: strings.ToLower(email)}, nil
}
