package handlers

import (
	"fmt"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"munasabat-backend/internal/services"
	"munasabat-backend/models"
)

type BookingHandler struct {
	app                 *pocketbase.PocketBase
	notificationService *services.NotificationService
}

func NewBookingHandler(app *pocketbase.PocketBase, notificationService *services.NotificationService) *BookingHandler {
	return &BookingHandler{
		app:                 app,
		notificationService: notificationService,
	}
}

// CreateBooking - Accept a booking request and record it on the notification
// feed. Bookings have no collection of their own; the feed is their ledger.
func (h *BookingHandler) CreateBooking(e *core.RequestEvent) error {
	var req struct {
		Name        string `json:"name"`
		Phone       string `json:"phone"`
		ServiceType string `json:"service_type"`
		Date        string `json:"date"`
		Time        string `json:"time"`
		City        string `json:"city"`
		Notes       string `json:"notes"`
	}
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}
	if req.Name == "" || req.Phone == "" {
		return apis.NewBadRequestError("Name and phone required", nil)
	}

	message := fmt.Sprintf("طلب حجز جديد من %s (%s) - %s بتاريخ %s", req.Name, req.Phone, req.ServiceType, req.Date)
	if req.Notes != "" {
		message += " - " + req.Notes
	}

	stored, err := h.notificationService.Add(e.Request.Context(), models.NotificationItem{
		Kind:    models.NotificationBooking,
		Title:   "طلب حجز جديد",
		Message: message,
	})
	if err != nil {
		return apis.NewBadRequestError("Failed to record booking", err)
	}
	return e.JSON(http.StatusOK, stored)
}
