package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"munasabat-backend/internal/status"
	"munasabat-backend/models"
)

func TestEventService_CreateEvent_DerivesFields(t *testing.T) {
	service := NewEventService(setupSeededStore(t))
	ctx := context.Background()

	created, err := service.CreateEvent(ctx, models.EventModel{
		Title:     "عيد ميلاد ليان",
		Type:      models.EventBirthday,
		Latitude:  31.25,
		Longitude: 34.79,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.ID, "e_"))
	assert.Equal(t, "https://www.waze.com/ul?ll=31.25,34.79&navigate=yes", created.WazeURL)
	assert.NotNil(t, created.Attendees)

	fetched, err := service.GetEventByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestEventService_CreateEvent_KeepsProvidedWazeURL(t *testing.T) {
	service := NewEventService(setupSeededStore(t))

	created, err := service.CreateEvent(context.Background(), models.EventModel{
		Title:   "خطوبة",
		WazeURL: "https://waze.com/custom",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://waze.com/custom", created.WazeURL)
}

func TestEventService_SaveEvent_ReplacesInPlace(t *testing.T) {
	service := NewEventService(setupSeededStore(t))
	ctx := context.Background()

	second, err := service.CreateEvent(ctx, models.EventModel{Title: "تخرج"})
	require.NoError(t, err)

	updated, err := service.GetEventByID(ctx, "e1")
	require.NoError(t, err)
	updated.Title = "حفل زفاف معدل"
	require.NoError(t, service.SaveEvent(ctx, updated))

	events, err := service.GetEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "e1", events[0].ID, "updated event keeps its position")
	assert.Equal(t, "حفل زفاف معدل", events[0].Title)
	assert.Equal(t, second.ID, events[1].ID)
}

func TestEventService_AddRSVP_AppendsToLedger(t *testing.T) {
	service := NewEventService(setupSeededStore(t))
	ctx := context.Background()

	first, err := service.AddRSVP(ctx, "e1", models.RSVP{Name: "خالد", Status: models.RSVPYes, Count: 2})
	require.NoError(t, err)
	assert.Equal(t, "e1", first.EventID)
	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, first.Timestamp)

	_, err = service.AddRSVP(ctx, "e1", models.RSVP{Name: "نور", Status: models.RSVPMaybe, Count: 1})
	require.NoError(t, err)

	event, err := service.GetEventByID(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, event.Attendees, 2)
	assert.Equal(t, first.ID, event.Attendees[0].ID, "responses stay in arrival order")
}

func TestEventService_AddRSVP_UnknownEvent(t *testing.T) {
	service := NewEventService(setupSeededStore(t))
	ctx := context.Background()

	_, err := service.AddRSVP(ctx, "e999", models.RSVP{Status: models.RSVPYes, Count: 1})
	assert.ErrorIs(t, err, status.ErrNotFound)

	events, err := service.GetEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Empty(t, events[0].Attendees)
}

func TestSummarizeRSVPs(t *testing.T) {
	attendees := []models.RSVP{
		{Status: models.RSVPYes, Count: 2},
		{Status: models.RSVPYes, Count: 1},
		{Status: models.RSVPMaybe, Count: 1},
		{Status: models.RSVPNo, Count: 4}, // a decline is one person
	}

	summary := SummarizeRSVPs(attendees)
	assert.Equal(t, 3, summary.YesCount)
	assert.Equal(t, 1, summary.MaybeCount)
	assert.Equal(t, 1, summary.NoCount)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 50, summary.YesPercent)
	assert.Equal(t, 25, summary.MaybePercent)
	assert.Equal(t, 25, summary.NoPercent)
}

func TestSummarizeRSVPs_Empty(t *testing.T) {
	summary := SummarizeRSVPs(nil)
	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.YesPercent)
}

func TestSummarizeRSVPs_PercentRoundsPerBucket(t *testing.T) {
	attendees := []models.RSVP{
		{Status: models.RSVPYes, Count: 1},
		{Status: models.RSVPMaybe, Count: 1},
		{Status: models.RSVPNo},
	}

	summary := SummarizeRSVPs(attendees)
	// 1/3 rounds to 33 in every bucket; the percentages need not sum to 100.
	assert.Equal(t, 33, summary.YesPercent)
	assert.Equal(t, 33, summary.MaybePercent)
	assert.Equal(t, 33, summary.NoPercent)
}

func TestWazeURL_TrimsTrailingZeros(t *testing.T) {
	assert.Equal(t, "https://www.waze.com/ul?ll=32.7,35.3&navigate=yes", WazeURL(32.7, 35.3))
	assert.Equal(t, "https://www.waze.com/ul?ll=0,0&navigate=yes", WazeURL(0, 0))
}
