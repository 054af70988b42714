package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"munasabat-backend/models"
)

func TestAdminService_GetStats(t *testing.T) {
	store := setupSeededStore(t)
	adminService := NewAdminService(store)
	eventService := NewEventService(store)
	ctx := context.Background()

	_, err := eventService.AddRSVP(ctx, "e1", models.RSVP{Status: models.RSVPYes, Count: 3})
	require.NoError(t, err)
	_, err = eventService.AddRSVP(ctx, "e1", models.RSVP{Status: models.RSVPNo, Count: 2})
	require.NoError(t, err)
	_, err = eventService.CreateEvent(ctx, models.EventModel{
		Title: "تخرج", Type: models.EventGraduation, Region: models.RegionSouth,
	})
	require.NoError(t, err)

	stats, err := adminService.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalEvents)
	assert.Equal(t, 3, stats.TotalYesRSVPs, "declines never add guests")
	assert.Equal(t, 8, stats.TotalVendors)
	assert.Equal(t, 2, stats.TotalDresses)
	assert.Equal(t, 21, stats.TotalBundles)

	assert.Equal(t, 1, stats.EventsByType[models.EventWedding])
	assert.Equal(t, 1, stats.EventsByType[models.EventGraduation])

	require.Len(t, stats.Regions, 3)
	assert.Equal(t, models.RegionNorth, stats.Regions[0].Region)
	assert.Equal(t, 1, stats.Regions[0].EventCount)
	assert.Equal(t, 1, stats.Regions[0].VendorCount)
	assert.Equal(t, models.RegionSouth, stats.Regions[2].Region)
	assert.Equal(t, 1, stats.Regions[2].EventCount)
	assert.Equal(t, 5, stats.Regions[2].VendorCount)
}

func TestAdminService_GetStats_TopVendors(t *testing.T) {
	adminService := NewAdminService(setupSeededStore(t))

	stats, err := adminService.GetStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.TopVendors, 5)
	// v3 and v7 share 4.9; the tie keeps collection order.
	assert.Equal(t, "v3", stats.TopVendors[0].ID)
	assert.Equal(t, "v7", stats.TopVendors[1].ID)
	// v1 and v6 share 4.8 next.
	assert.Equal(t, "v1", stats.TopVendors[2].ID)
	assert.Equal(t, "v6", stats.TopVendors[3].ID)
	// v4 and v8 share 4.7; v4 comes first in the collection.
	assert.Equal(t, "v4", stats.TopVendors[4].ID)
}

func TestAdminService_SiteSettings(t *testing.T) {
	adminService := NewAdminService(setupSeededStore(t))
	ctx := context.Background()

	settings, err := adminService.GetSiteSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSiteSettings(), settings)

	settings.EnableBooking = false
	settings.DefaultDarkMode = true
	require.NoError(t, adminService.SaveSiteSettings(ctx, settings))

	reloaded, err := adminService.GetSiteSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, reloaded)
}
