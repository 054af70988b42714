package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"munasabat-backend/internal/services"
	"munasabat-backend/models"
)

type EventHandler struct {
	app          *pocketbase.PocketBase
	eventService *services.EventService
}

func NewEventHandler(app *pocketbase.PocketBase, eventService *services.EventService) *EventHandler {
	return &EventHandler{
		app:          app,
		eventService: eventService,
	}
}

// GetEvents - List all events
func (h *EventHandler) GetEvents(e *core.RequestEvent) error {
	events, err := h.eventService.GetEvents(e.Request.Context())
	if err != nil {
		return apis.NewBadRequestError("Failed to load events", err)
	}
	return e.JSON(http.StatusOK, events)
}

// GetEvent - Get a single event (the public invitation page reads this)
func (h *EventHandler) GetEvent(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")

	event, err := h.eventService.GetEventByID(e.Request.Context(), id)
	if err != nil {
		return notFoundOr(err, "Event not found")
	}
	return e.JSON(http.StatusOK, event)
}

// CreateEvent - Create an event, deriving id and waze link server-side
func (h *EventHandler) CreateEvent(e *core.RequestEvent) error {
	var event models.EventModel
	if err := e.BindBody(&event); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}
	if event.Title == "" {
		return apis.NewBadRequestError("Event title required", nil)
	}

	created, err := h.eventService.CreateEvent(e.Request.Context(), event)
	if err != nil {
		return apis.NewBadRequestError("Failed to create event", err)
	}
	return e.JSON(http.StatusOK, created)
}

// SaveEvent - Upsert an event by id
func (h *EventHandler) SaveEvent(e *core.RequestEvent) error {
	var event models.EventModel
	if err := e.BindBody(&event); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}
	event.ID = e.Request.PathValue("id")
	if event.ID == "" {
		return apis.NewBadRequestError("Event ID required", nil)
	}

	if err := h.eventService.SaveEvent(e.Request.Context(), event); err != nil {
		return apis.NewBadRequestError("Failed to save event", err)
	}
	return e.JSON(http.StatusOK, event)
}

// AddRSVP - Append a guest response to the event's attendee list
func (h *EventHandler) AddRSVP(e *core.RequestEvent) error {
	eventID := e.Request.PathValue("id")

	var rsvp models.RSVP
	if err := e.BindBody(&rsvp); err != nil {
		return apis.NewBadRequestError("Invalid request", err)
	}
	switch rsvp.Status {
	case models.RSVPYes, models.RSVPNo, models.RSVPMaybe:
	default:
		return apis.NewBadRequestError("Invalid RSVP status", nil)
	}

	stored, err := h.eventService.AddRSVP(e.Request.Context(), eventID, rsvp)
	if err != nil {
		return notFoundOr(err, "Event not found")
	}
	return e.JSON(http.StatusOK, stored)
}

// GetSummary - Derived attendance counts for the organizer dashboard
func (h *EventHandler) GetSummary(e *core.RequestEvent) error {
	id := e.Request.PathValue("id")

	event, err := h.eventService.GetEventByID(e.Request.Context(), id)
	if err != nil {
		return notFoundOr(err, "Event not found")
	}
	return e.JSON(http.StatusOK, services.SummarizeRSVPs(event.Attendees))
}
