package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"munasabat-backend/internal/status"
	"munasabat-backend/models"
)

func TestNotificationService_FirstReadSeedsFeed(t *testing.T) {
	service := NewNotificationService(setupSeededStore(t))

	items, err := service.GetNotifications(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, models.NotificationOffer, items[0].Kind)

	count, err := service.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	service := NewNotificationService(setupSeededStore(t))
	ctx := context.Background()

	require.NoError(t, service.MarkAsRead(ctx, "1"))

	count, err := service.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	assert.ErrorIs(t, service.MarkAsRead(ctx, "nope"), status.ErrNotFound)
}

func TestNotificationService_MarkAllAsRead(t *testing.T) {
	service := NewNotificationService(setupSeededStore(t))
	ctx := context.Background()

	require.NoError(t, service.MarkAllAsRead(ctx))

	count, err := service.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNotificationService_Delete(t *testing.T) {
	service := NewNotificationService(setupSeededStore(t))
	ctx := context.Background()

	require.NoError(t, service.Delete(ctx, "2"))

	items, err := service.GetNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].ID)

	assert.ErrorIs(t, service.Delete(ctx, "2"), status.ErrNotFound)
}

func TestNotificationService_AddPrependsAndFillsDefaults(t *testing.T) {
	service := NewNotificationService(setupSeededStore(t))
	ctx := context.Background()

	stored, err := service.AddSimple(ctx, "تم استلام طلبك")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.NotEmpty(t, stored.CreatedAt)
	assert.Equal(t, models.NotificationGeneral, stored.Kind)
	assert.Equal(t, "إشعار جديد", stored.Title)

	items, err := service.GetNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, stored.ID, items[0].ID, "newest first")
}

func TestNotificationService_Settings(t *testing.T) {
	service := NewNotificationService(setupSeededStore(t))
	ctx := context.Background()

	settings, err := service.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultNotificationSettings(), settings)

	settings.SoundEnabled = false
	settings.QuietHours.Enabled = true
	require.NoError(t, service.SaveSettings(ctx, settings))

	reloaded, err := service.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, reloaded)
}
