package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"munasabat-backend/internal/services/credentials"
	"munasabat-backend/internal/status"
	"munasabat-backend/internal/storage"
	"munasabat-backend/models"
	"munasabat-backend/security"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type AuthService struct {
	store      *storage.Store
	backend    credentials.Backend
	limiter    *security.LoginLimiter
	adminEmail string
}

func NewAuthService(store *storage.Store, backend credentials.Backend, limiter *security.LoginLimiter, adminEmail string) *AuthService {
	return &AuthService{
		store:      store,
		backend:    backend,
		limiter:    limiter,
		adminEmail: strings.ToLower(adminEmail),
	}
}

// Login verifies the credential pair against the configured backend and
// caches the resulting user record under current_user. The admin email gets
// the admin role; everyone else is a regular user.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return models.User{}, status.ErrInvalidEmail
	}

	if s.limiter != nil && !s.limiter.Allow(ctx, email) {
		return models.User{}, status.ErrTooManyRequests
	}

	identity, err := s.backend.Authenticate(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
		Role:  models.RoleUser,
	}
	if user.Name == "" {
		user.Name = displayName(identity.Email)
	}
	if identity.Email == s.adminEmail {
		user.Role = models.RoleAdmin
	}

	if err := s.store.WriteJSON(ctx, storage.KeyCurrentUser, user); err != nil {
		return models.User{}, err
	}
	if s.limiter != nil {
		s.limiter.Reset(ctx, email)
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, storage.KeyCurrentUser)
}

// CurrentUser returns the cached session user or ErrNotFound when nobody is
// logged in.
func (s *AuthService) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := s.store.ReadJSON(ctx, storage.KeyCurrentUser, &user); err != nil {
		return models.User{}, err
	}
	if user.ID == "" {
		return models.User{}, fmt.Errorf("current user: %w", status.ErrNotFound)
	}
	return user, nil
}

func (s *AuthService) IsAdmin(ctx context.Context) bool {
	user, err := s.CurrentUser(ctx)
	return err == nil && user.Role == models.RoleAdmin
}

func displayName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return "مستخدم"
}
