package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"munasabat-backend/internal/services"
	"munasabat-backend/models"
)

type NotificationHandler struct {
	app                 *pocketbase.PocketBase
	notificationService *services.NotificationService
}

func NewNotificationHandler(app *pocketbase.PocketBase, notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		app:                 app,
		notificationService: notificationService,
	}
}

// GetNotifications - Feed, most recent first
func (h *NotificationHandler) GetNotifications(e *core.RequestEvent) error {
	items, err := h.notificationService.GetNotifications(e.Request.Context())
	if err != nil {
		return apis.NewBadRequestError("Failed to load notifications", err)
	}
	return e.JSON(http.StatusOK, items)
}

// GetUnreadCount - Badge count for the bell icon
func (h *NotificationHandler) GetUnreadCount(e *core.RequestEvent) error {
	count, err := h.notificationService.UnreadCount(e.Request.Context())
	if err != nil {
		return apis.NewBadRequestError("Failed to count notifications", err)
	}
	return e.JSON(http.StatusOK, map[string]int{"unread": count})
}

// AddNotification - Push a notification onto the feed
func (h *NotificationHandler) AddNotification(e *core.RequestEvent) error {
	var item models.NotificationItem
	if err := e.BindBody(&item); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}
	if item.Message == "" {
		return apis.NewBadRequestError("Notification message required", nil)
	}

	stored, err := h.notificationService.Add(e.Request.Context(), item)
	if err != nil {
		return apis.NewBadRequestError("Failed to add notification", err)
	}
	return e.JSON(http.StatusOK, stored)
}

// MarkAsRead - Mark one notification read
func (h *NotificationHandler) MarkAsRead(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")

	if err := h.notificationService.MarkAsRead(e.Request.Context(), id); err != nil {
		return notFoundOr(err, "Notification not found")
	}
	return e.JSON(http.StatusOK, map[string]bool{"success": true})
}

// MarkAllAsRead - Clear the unread badge
func (h *NotificationHandler) MarkAllAsRead(e *core.RequestEvent) error {
	if err := h.notificationService.MarkAllAsRead(e.Request.Context()); err != nil {
		return apis.NewBadRequestError("Failed to mark notifications", err)
	}
	return e.JSON(http.StatusOK, map[string]bool{"success": true})
}

// DeleteNotification - Remove a notification from the feed
func (h *NotificationHandler) DeleteNotification(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")

	if err := h.notificationService.Delete(e.Request.Context(), id); err != nil {
		return notFoundOr(err, "Notification not found")
	}
	return e.JSON(http.StatusOK, map[string]bool{"success": true})
}

// GetSettings - Notification preferences, defaults when never saved
func (h *NotificationHandler) GetSettings(e *core.RequestEvent) error {
	settings, err := h.notificationService.GetSettings(e.Request.Context())
	if err != nil {
		return apis.NewBadRequestError("Failed to load notification settings", err)
	}
	return e.JSON(http.StatusOK, settings)
}

// SaveSettings - Persist notification preferences as a whole
func (h *NotificationHandler) SaveSettings(e *core.RequestEvent) error {
	var settings models.NotificationSettings
	if err := e.BindBody(&settings); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}

	if err := h.notificationService.SaveSettings(e.Request.Context(), settings); err != nil {
		return apis.NewBadRequestError("Failed to save notification settings", err)
	}
	return e.JSON(http.StatusOK, settings)
}
