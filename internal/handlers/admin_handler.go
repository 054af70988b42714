package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"munasabat-backend/internal/services"
	"munasabat-backend/models"
)

type AdminHandler struct {
	app          *pocketbase.PocketBase
	adminService *services.AdminService
	authService  *services.AuthService
}

func NewAdminHandler(app *pocketbase.PocketBase, adminService *services.AdminService, authService *services.AuthService) *AdminHandler {
	return &AdminHandler{
		app:          app,
		adminService: adminService,
		authService:  authService,
	}
}

// requireAdmin rejects requests from anonymous or non-admin sessions.
func (h *AdminHandler) requireAdmin(e *core.RequestEvent) error {
	user, err := h.authService.CurrentUser(e.Request.Context())
	if err != nil {
		return apis.NewUnauthorizedError("Login required", err)
	}
	if user.Role != models.RoleAdmin {
		return apis.NewForbiddenError("Admin access required", nil)
	}
	return nil
}

// GetStats - Dashboard aggregates recomputed from the stored collections
func (h *AdminHandler) GetStats(e *core.RequestEvent) error {
	if err := h.requireAdmin(e); err != nil {
		return err
	}

	stats, err := h.adminService.GetStats(e.Request.Context())
	if err != nil {
		return apis.NewBadRequestError("Failed to compute stats", err)
	}
	return e.JSON(http.StatusOK, stats)
}

// GetSettings - Site feature toggles
func (h *AdminHandler) GetSettings(e *core.RequestEvent) error {
	if err := h.requireAdmin(e); err != nil {
		return err
	}

	settings, err := h.adminService.GetSiteSettings(e.Request.Context())
	if err != nil {
		return apis.NewBadRequestError("Failed to load site settings", err)
	}
	return e.JSON(http.StatusOK, settings)
}

// SaveSettings - Persist site feature toggles
func (h *AdminHandler) SaveSettings(e *core.RequestEvent) error {
	if err := h.requireAdmin(e); err != nil {
		return err
	}

	var settings models.SiteSettings
	if err := e.BindBody(&settings); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	if err := h.adminService.SaveSiteSettings(e.Request.Context(), settings); err != nil {
		return apis.NewBadRequestError("Failed to save site settings", err)
	}
	return e.JSON(http.StatusOK, settings)
}
