package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/pocketbase/pocketbase/tools/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"munasabat-backend/internal/status"
)

func apiStatus(t *testing.T, err error) int {
	t.Helper()
	var apiErr *router.ApiError
	require.ErrorAs(t, err, &apiErr)
	return apiErr.Status
}

func TestNotFoundOr(t *testing.T) {
	wrapped := fmt.Errorf("vendor v9: %w", status.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, apiStatus(t, notFoundOr(wrapped, "Vendor not found")))

	assert.Equal(t, http.StatusBadRequest, apiStatus(t, notFoundOr(errors.New("boom"), "Vendor not found")))
}

func TestLoginError_StatusAndMessage(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{status.ErrInvalidEmail, http.StatusBadRequest, "صيغة البريد الإلكتروني خاطئة"},
		{status.ErrUserNotFound, http.StatusUnauthorized, "البريد الإلكتروني غير مسجل"},
		{status.ErrWrongPassword, http.StatusUnauthorized, "كلمة المرور غير صحيحة"},
		{status.ErrTooManyRequests, http.StatusTooManyRequests, "تم تعطيل الحساب مؤقتاً بسبب كثرة المحاولات"},
		{errors.New("anything else"), http.StatusBadRequest, "فشل تسجيل الدخول"},
	}

	for _, tc := range cases {
		err := loginError(fmt.Errorf("login: %w", tc.err))
		var apiErr *router.ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, tc.status, apiErr.Status)
		assert.Equal(t, tc.message, apiErr.Message)
	}
}
