package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"munasabat-backend/internal/status"
	"munasabat-backend/internal/storage"
	"munasabat-backend/models"
	"munasabat-backend/utils"
)

type EventService struct {
	store *storage.Store
}

func NewEventService(store *storage.Store) *EventService {
	return &EventService{store: store}
}

func (s *EventService) GetEvents(ctx context.Context) ([]models.EventModel, error) {
	events := []models.EventModel{}
	if err := s.store.ReadJSON(ctx, storage.KeyEvents, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventService) GetEventByID(ctx context.Context, id string) (models.EventModel, error) {
	events, err := s.GetEvents(ctx)
	if err != nil {
		return models.EventModel{}, err
	}
	for _, e := range events {
		if e.ID == id {
			return e, nil
		}
	}
	return models.EventModel{}, fmt.Errorf("event %s: %w", id, status.ErrNotFound)
}

// CreateEvent fills in the server-derived fields (id, waze link, empty
// attendee list) and appends the event to the collection.
func (s *EventService) CreateEvent(ctx context.Context, event models.EventModel) (models.EventModel, error) {
	if event.ID == "" {
		event.ID = utils.NewID("e")
	}
	if event.WazeURL == "" {
		event.WazeURL = WazeURL(event.Latitude, event.Longitude)
	}
	if event.Attendees == nil {
		event.Attendees = []models.RSVP{}
	}

	if err := s.SaveEvent(ctx, event); err != nil {
		return models.EventModel{}, err
	}
	return event, nil
}

// SaveEvent upserts: an existing id is replaced in place, keeping its
// position and every other entry untouched; a new id is appended.
func (s *EventService) SaveEvent(ctx context.Context, event models.EventModel) error {
	return s.store.WithLock(storage.KeyEvents, func() error {
		events := []models.EventModel{}
		if err := s.store.ReadJSON(ctx, storage.KeyEvents, &events); err != nil {
			return err
		}

		replaced := false
		for i := range events {
			if events[i].ID == event.ID {
				events[i] = event
				replaced = true
				break
			}
		}
		if !replaced {
			events = append(events, event)
		}

		return s.store.WriteJSON(ctx, storage.KeyEvents, events)
	})
}

// AddRSVP appends one guest response to the event's attendee ledger. Entries
// are never mutated or removed afterwards. Returns the stored response with
// its assigned id and timestamp.
func (s *EventService) AddRSVP(ctx context.Context, eventID string, rsvp models.RSVP) (models.RSVP, error) {
	if rsvp.ID == "" {
		rsvp.ID = utils.NewID("rsvp")
	}
	rsvp.EventID = eventID
	if rsvp.Timestamp == "" {
		rsvp.Timestamp = time.Now().Format(time.RFC3339)
	}

	err := s.store.WithLock(storage.KeyEvents, func() error {
		events := []models.EventModel{}
		if err := s.store.ReadJSON(ctx, storage.KeyEvents, &events); err != nil {
			return err
		}

		for i := range events {
			if events[i].ID == eventID {
				events[i].Attendees = append(events[i].Attendees, rsvp)
				return s.store.WriteJSON(ctx, storage.KeyEvents, events)
			}
		}
		return fmt.Errorf("event %s: %w", eventID, status.ErrNotFound)
	})
	if err != nil {
		return models.RSVP{}, err
	}
	return rsvp, nil
}

// SummarizeRSVPs derives attendance counts from an attendee list. Yes and
// maybe sum party sizes; a decline counts as one person whatever its count
// field says. Percentages are computed per bucket over the number of
// responses and rounded independently.
func SummarizeRSVPs(attendees []models.RSVP) models.RSVPSummary {
	var summary models.RSVPSummary
	var yesEntries, noEntries, maybeEntries int

	for _, r := range attendees {
		switch r.Status {
		case models.RSVPYes:
			yesEntries++
			summary.YesCount += r.Count
		case models.RSVPNo:
			noEntries++
			summary.NoCount++
		case models.RSVPMaybe:
			maybeEntries++
			summary.MaybeCount += r.Count
		}
	}

	summary.Total = yesEntries + noEntries + maybeEntries
	if summary.Total > 0 {
		summary.YesPercent = percent(yesEntries, summary.Total)
		summary.NoPercent = percent(noEntries, summary.Total)
		summary.MaybePercent = percent(maybeEntries, summary.Total)
	}
	return summary
}

func percent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}

// WazeURL builds the navigation link derived from event coordinates.
func WazeURL(lat, lng float64) string {
	return fmt.Sprintf("https://www.waze.com/ul?ll=%s,%s&navigate=yes",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64))
}
