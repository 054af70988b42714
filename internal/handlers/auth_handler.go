package handlers

import (
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"munasabat-backend/internal/services"
	"munasabat-backend/internal/status"
	"munasabat-backend/monitoring"
)

type AuthHandler struct {
	app         *pocketbase.PocketBase
	authService *services.AuthService
}

func NewAuthHandler(app *pocketbase.PocketBase, authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		app:         app,
		authService: authService,
	}
}

// Login - Verify credentials and open a session
func (h *AuthHandler) Login(e *core.RequestEvent) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	user, err := h.authService.Login(e.Request.Context(), req.Email, req.Password)
	if err != nil {
		monitoring.TrackLogin("failure")
		return loginError(err)
	}

	monitoring.TrackLogin("success")
	return e.JSON(http.StatusOK, user)
}

// Logout - Drop the cached session
func (h *AuthHandler) Logout(e *core.RequestEvent) error {
	if err := h.authService.Logout(e.Request.Context()); err != nil {
		return apis.NewBadRequestError("Failed to log out", err)
	}
	return e.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Me - The current session user, 404 when nobody is logged in
func (h *AuthHandler) Me(e *core.RequestEvent) error {
	user, err := h.authService.CurrentUser(e.Request.Context())
	if err != nil {
		return notFoundOr(err, "Not logged in")
	}
	return e.JSON(http.StatusOK, user)
}

// loginError keeps the exact failure messages the UI shows, in Arabic.
func loginError(err error) error {
	switch {
	case errors.Is(err, status.ErrInvalidEmail):
		return apis.NewBadRequestError("صيغة البريد الإلكتروني خاطئة", err)
	case errors.Is(err, status.ErrUserNotFound):
		return apis.NewUnauthorizedError("البريد الإلكتروني غير مسجل", err)
	case errors.Is(err, status.ErrWrongPassword):
		return apis.NewUnauthorizedError("كلمة المرور غير صحيحة", err)
	case errors.Is(err, status.ErrTooManyRequests):
		return apis.NewTooManyRequestsError("تم تعطيل الحساب مؤقتاً بسبب كثرة المحاولات", err)
	default:
		return apis.NewBadRequestError("فشل تسجيل الدخول", err)
	}
}
