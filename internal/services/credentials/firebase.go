package credentials

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"munasabat-backend/internal/status"
	"munasabat-backend/utils"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// FirebaseBackend verifies credentials against the Identity Toolkit REST API.
// Calls go through a circuit breaker so a flapping provider degrades to a
// typed "unavailable" error instead of hammering the endpoint.
type FirebaseBackend struct {
	apiKey  string
	client  *http.Client
	breaker *utils.CircuitBreaker
}

func NewFirebaseBackend(apiKey string) *FirebaseBackend {
	return &FirebaseBackend{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		breaker: utils.NewCircuitBreaker("firebase-auth"),
	}
}

func (f *FirebaseBackend) Authenticate(ctx context.Context, email, password string) (Identity, error) {
	result, err := f.breaker.Execute(ctx, func() (any, error) {
		return f.signIn(ctx, email, password)
	})
	if err != nil {
		if errors.Is(err, utils.ErrCircuitOpen) {
			return Identity{}, status.ErrBackendUnavailable
		}
		return Identity{}, err
	}

	identity, ok := result.(Identity)
	if !ok {
		return Identity{}, status.ErrBackendUnavailable
	}
	return identity, nil
}

func (f *FirebaseBackend) signIn(ctx context.Context, email, password string) (Identity, error) {
	payload, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return Identity{}, err
	}

	url := fmt.Sprintf("%s?key=%s", signInEndpoint, f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Identity{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", status.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var failure struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&failure); err != nil {
			return Identity{}, fmt.Errorf("%w: status %d", status.ErrBackendUnavailable, resp.StatusCode)
		}
		return Identity{}, mapProviderError(failure.Error.Message)
	}

	var success struct {
		LocalID     string `json:"localId"`
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&success); err != nil {
		return Identity{}, fmt.Errorf("%w: decode response: %v", status.ErrBackendUnavailable, err)
	}

	return Identity{
		ID:    success.LocalID,
		Name:  success.DisplayName,
		Email: strings.ToLower(success.Email),
	}, nil
}

func mapProviderError(code string) error {
	switch {
	case strings.HasPrefix(code, "EMAIL_NOT_FOUND"):
		return status.ErrUserNotFound
	case strings.HasPrefix(code, "INVALID_PASSWORD"),
		strings.HasPrefix(code, "INVALID_LOGIN_CREDENTIALS"):
		return status.ErrWrongPassword
	case strings.HasPrefix(code, "INVALID_EMAIL"):
		return status.ErrInvalidEmail
	case strings.HasPrefix(code, "TOO_MANY_ATTEMPTS_TRY_LATER"):
		return status.ErrTooManyRequests
	default:
		return fmt.Errorf("%w: %s", status.ErrBackendUnavailable, code)
	}
}
